package we

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const tracerName = "wee-reducers"

// Snapshot is a combined state together with the revision of the last action
// folded into it.
type Snapshot struct {
	Revision Revision `json:"revision"`
	State    *Map     `json:"state"`
}

func (s Snapshot) Initialized() bool {
	return s.Revision != InitialRevision && s.Revision != ""
}

// Renderer replays a history through a combined reducer.
type Renderer struct {
	Reducer  CombinedReducer
	Decoders Decoders
}

func (r *Renderer) Render(ctx context.Context, history History) (Snapshot, error) {
	return r.Apply(ctx, Snapshot{Revision: InitialRevision}, history)
}

// Apply folds the actions of history recorded after snapshot into it. Actions
// whose type has no decoder and no in process value are skipped.
func (r *Renderer) Apply(ctx context.Context, snapshot Snapshot, history History) (Snapshot, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "render")
	defer span.End()

	log := zerolog.Ctx(ctx)
	state := snapshot.State
	revision := snapshot.Revision
	if state == nil {
		state = r.Reducer(nil, nil)
	}

	applied := 0
	for _, recorded := range history {
		if recorded.Revision != "" && !recorded.Revision.After(revision) {
			continue
		}

		action, ok, err := r.decode(ctx, recorded)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return Snapshot{}, errors.Wrap(err, fmt.Sprintf("failed to decode %s", recorded.Type))
		}
		if !ok {
			log.Debug().Str("type", recorded.Type.String()).Msg("no decoder for action, skipping")
			continue
		}

		state = r.Reducer(state, action)
		if recorded.Revision != "" {
			revision = recorded.Revision
		}
		applied++
	}

	span.SetAttributes(
		attribute.Int("actions.recorded", len(history)),
		attribute.Int("actions.applied", applied),
		attribute.String("revision", revision.String()),
	)

	return Snapshot{Revision: revision, State: state}, nil
}

func (r *Renderer) decode(ctx context.Context, recorded RecordedAction) (Action, bool, error) {
	if recorded.Action != nil {
		return recorded.Action, true, nil
	}

	decoder := r.Decoders[recorded.Type]
	if decoder == nil {
		return nil, false, nil
	}

	action, err := decoder(ctx, recorded.Data)
	if err != nil {
		return nil, false, err
	}

	return action, true, nil
}
