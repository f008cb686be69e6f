package character

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"
)

const entityTypeCharacter = "character"

// characterEntity implements core.Entity as the source of published events
type characterEntity struct {
	id string
}

var _ core.Entity = (*characterEntity)(nil)

func (e *characterEntity) GetID() string {
	return e.id
}

func (e *characterEntity) GetType() string {
	return entityTypeCharacter
}

// publish is best effort. A failed publish is logged and never fails the
// write that triggered it.
func (o *Orchestrator) publish(ctx context.Context, eventType, characterID string) {
	if o.eventBus == nil {
		return
	}

	source := &characterEntity{id: characterID}
	if err := o.eventBus.Publish(ctx, events.NewGameEvent(eventType, source, nil)); err != nil {
		slog.WarnContext(ctx, "failed to publish character event",
			"event_type", eventType,
			"character_id", characterID,
			"error", err.Error())
	}
}

// SubscribeLogger logs every character event at debug level and returns the
// subscription ids
func SubscribeLogger(bus events.EventBus, logger *slog.Logger) []string {
	handler := func(ctx context.Context, event events.Event) error {
		attrs := []any{"event_type", event.Type()}
		if source := event.Source(); source != nil {
			attrs = append(attrs, "character_id", source.GetID())
		}
		logger.DebugContext(ctx, "character event", attrs...)
		return nil
	}

	return []string{
		bus.SubscribeFunc(EventCharacterRecalculated, 0, handler),
		bus.SubscribeFunc(EventCharacterLeveledUp, 0, handler),
	}
}
