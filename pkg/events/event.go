package events

import "time"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "RAG_INDEX_RUN_COMPLETED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is the standard Event implementation; constructors below fill it.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// NewIndexRunCompleted is emitted after an indexing run finishes, whether or
// not every record made it into the store.
func NewIndexRunCompleted(runID string, trigger string, chunksProcessed, chunksFailed, filesProcessed int) Event {
	return BaseEvent{
		Type: "RAG_INDEX_RUN_COMPLETED",
		Data: map[string]interface{}{
			"run_id":           runID,
			"trigger":          trigger,
			"chunks_processed": chunksProcessed,
			"chunks_failed":    chunksFailed,
			"files_processed":  filesProcessed,
		},
		OccurredAt: time.Now(),
	}
}
