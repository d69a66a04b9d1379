package events

import (
	"time"

	"github.com/google/uuid"
)

const (
	// TopicLabelComposed is published after a descriptor is assembled.
	TopicLabelComposed = "label.composed"

	// TopicLabelPrinted is published after a label sheet is printed to PDF.
	TopicLabelPrinted = "label.printed"
)

// LabelComposedEvent is published when a generation attempt succeeds.
// Consumers subscribe via EventBus.Subscribe(ctx, events.TopicLabelComposed).
type LabelComposedEvent struct {
	EventID    uuid.UUID `json:"event_id"` // Unique publish-time identifier for deduplication
	Version    int       `json:"version"`  // Schema version; increment on breaking changes
	LabelID    uuid.UUID `json:"label_id"`
	SKU        string    `json:"sku"`
	CodeType   string    `json:"code_type"`
	PriceShown bool      `json:"price_shown"`
	OccurredAt time.Time `json:"occurred_at"`
}

// LabelPrintedEvent is published after a print job for a label completes.
type LabelPrintedEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	Version    int       `json:"version"`
	LabelID    uuid.UUID `json:"label_id"`
	SKU        string    `json:"sku"`
	CodeType   string    `json:"code_type"`
	Format     string    `json:"format"` // "pdf"
	Bytes      int       `json:"bytes"`
	OccurredAt time.Time `json:"occurred_at"`
}
