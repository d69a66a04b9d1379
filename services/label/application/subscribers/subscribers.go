// Package subscribers reacts to label domain events published on the in-process bus.
package subscribers

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/ghuser/skulabel/pkg/app"
	"github.com/ghuser/skulabel/pkg/logger"
	appsvcs "github.com/ghuser/skulabel/services/label/application/services"
	"github.com/ghuser/skulabel/services/label/domain/events"
	"github.com/ghuser/skulabel/services/label/domain/models"
)

// ImageWarmer pre-renders the code images of a composed label.
type ImageWarmer interface {
	WarmImages(ctx context.Context, sku models.SKU, ct models.CodeType) error
}

// Register wires all label event handlers onto a.EventBus.
// Subscriptions end when ctx is cancelled or the bus is closed.
func Register(ctx context.Context, a *app.Application) error {
	var warmer ImageWarmer
	if a.Redis != nil {
		svcs, err := appsvcs.New(a)
		if err != nil {
			return fmt.Errorf("label services: %w", err)
		}
		warmer = svcs.Label
	}

	subs := map[string]func(context.Context, *message.Message) error{
		events.TopicLabelComposed: HandleLabelComposed(a.Logger, warmer),
		events.TopicLabelPrinted:  HandleLabelPrinted(a.Logger),
	}
	topics := make([]string, 0, len(subs))
	for topic, handler := range subs {
		errCh, err := a.EventBus.Subscribe(ctx, topic, handler)
		if err != nil {
			return fmt.Errorf("subscribe %s: %w", topic, err)
		}
		go drain(ctx, a.Logger, topic, errCh)
		topics = append(topics, topic)
	}

	a.Logger.Info("event subscribers registered", "topics", topics)
	return nil
}

// drain keeps the subscriber error channel from blocking.
func drain(ctx context.Context, log logger.Logger, topic string, errCh <-chan error) {
	for err := range errCh {
		log.ErrorContext(ctx, "subscriber error", "topic", topic, "error", err)
	}
}

// HandleLabelComposed logs each composed label and, when warmer is set,
// renders its code images ahead of the first request for them.
// Handlers must be idempotent: EventBus retries up to 3x on failure.
// Only an undecodable payload fails the handler.
func HandleLabelComposed(log logger.Logger, warmer ImageWarmer) func(context.Context, *message.Message) error {
	return func(ctx context.Context, msg *message.Message) error {
		var evt events.LabelComposedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return fmt.Errorf("decode %s: %w", events.TopicLabelComposed, err)
		}
		log.InfoContext(ctx, "label composed",
			"label_id", evt.LabelID,
			"sku", evt.SKU,
			"code_type", evt.CodeType,
			"price_shown", evt.PriceShown,
		)
		if warmer == nil {
			return nil
		}
		ct, err := models.ParseCodeType(evt.CodeType)
		if err != nil {
			log.WarnContext(ctx, "skipping image warm-up", "sku", evt.SKU, "error", err)
			return nil
		}
		if err := warmer.WarmImages(ctx, models.SKU(evt.SKU), ct); err != nil {
			// Warming is best-effort; the image is rendered on first request instead.
			log.WarnContext(ctx, "image warm-up failed", "sku", evt.SKU, "error", err)
		}
		return nil
	}
}

// HandleLabelPrinted records completed print jobs.
func HandleLabelPrinted(log logger.Logger) func(context.Context, *message.Message) error {
	return func(ctx context.Context, msg *message.Message) error {
		var evt events.LabelPrintedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return fmt.Errorf("decode %s: %w", events.TopicLabelPrinted, err)
		}
		log.InfoContext(ctx, "label printed successfully",
			"label_id", evt.LabelID,
			"sku", evt.SKU,
			"format", evt.Format,
			"bytes", evt.Bytes,
		)
		return nil
	}
}
