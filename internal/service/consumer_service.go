package service

import (
	"context"
	"encoding/json"

	"rag-demo-be/internal/dto"
	"rag-demo-be/internal/pkg/logger"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub          *gochannel.GoChannel
	topicName       string
	indexingService IIndexingService
	logger          logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	indexingService IIndexingService,
	sysLogger logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:          pubSub,
		topicName:       topicName,
		indexingService: indexingService,
		logger:          sysLogger,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.IndexCorpusMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("consumer", "Failed to unmarshal index request", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	cs.logger.Info("consumer", "Processing async index request", map[string]interface{}{
		"request_id":   payload.RequestId,
		"requested_by": payload.RequestedBy,
	})

	res, err := cs.indexingService.IndexCorpus(ctx, "async")
	if err != nil {
		cs.logger.Error("consumer", "Async index run failed", map[string]interface{}{
			"request_id": payload.RequestId,
			"error":      err.Error(),
		})
		// Failures are recorded on the run itself; redelivery would re-embed
		// the whole corpus, so we ack either way.
		msg.Ack()
		return
	}

	cs.logger.Info("consumer", "Async index run finished", map[string]interface{}{
		"request_id":       payload.RequestId,
		"run_id":           res.RunId,
		"chunks_processed": res.ChunksProcessed,
		"chunks_failed":    res.ChunksFailed,
	})
	msg.Ack()
}
