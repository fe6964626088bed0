package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"rag-demo-be/internal/dto"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IPublisherService interface {
	// PublishIndexRequest queues a corpus indexing request and returns its
	// request id. The actual run happens in the consumer.
	PublishIndexRequest(ctx context.Context, requestedBy string) (string, error)
}

type publisherService struct {
	topicName string
	pubSub    *gochannel.GoChannel
}

func NewPublisherService(topicName string, pubSub *gochannel.GoChannel) IPublisherService {
	return &publisherService{
		topicName: topicName,
		pubSub:    pubSub,
	}
}

func (s *publisherService) PublishIndexRequest(ctx context.Context, requestedBy string) (string, error) {
	payload := dto.IndexCorpusMessage{
		RequestId:   uuid.New().String(),
		RequestedBy: requestedBy,
		RequestedAt: time.Now(),
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal index request: %w", err)
	}

	msg := message.NewMessage(watermill.NewUUID(), data)
	if err := s.pubSub.Publish(s.topicName, msg); err != nil {
		return "", fmt.Errorf("failed to publish index request: %w", err)
	}

	return payload.RequestId, nil
}
