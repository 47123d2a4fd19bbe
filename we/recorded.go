package we

import (
	"context"
	"time"
)

// RecordedAction is an action captured in a history. Action holds the original
// value when the history was recorded in process; otherwise it is decoded from
// Data by type.
type RecordedAction struct {
	Revision  Revision   `json:"revision"`
	Type      ActionType `json:"type"`
	Timestamp Timestamp  `json:"timestamp"`
	Data      Data       `json:"data"`
	Action    Action     `json:"-"`
}

type History []RecordedAction

type Decoder func(ctx context.Context, data Data) (Action, error)

type Decoders map[ActionType]Decoder

// DecodeAs decodes recorded data into a value of type E.
func DecodeAs[E any]() Decoder {
	return func(ctx context.Context, data Data) (Action, error) {
		var action E
		if err := data.DecodeInto(ctx, &action); err != nil {
			return nil, err
		}

		return action, nil
	}
}

type Recorder struct {
	revisions *RevisionGenerator
	now       func() time.Time
}

func NewRecorder() *Recorder {
	return &Recorder{
		revisions: NewRevisionGenerator(),
		now:       time.Now,
	}
}

func (r *Recorder) Record(actions ...Action) (History, error) {
	history := make(History, 0, len(actions))
	for _, action := range actions {
		data, err := EncodeAction(action)
		if err != nil {
			return nil, err
		}

		now := r.now()
		history = append(history, RecordedAction{
			Revision:  r.revisions.NewRevision(now),
			Type:      ActionTypeOf(action),
			Timestamp: TimestampFromTime(now),
			Data:      data,
			Action:    action,
		})
	}

	return history, nil
}

// Detached returns a copy of the history without the in process actions, as it
// would look after a round trip through storage.
func (h History) Detached() History {
	detached := make(History, len(h))
	for i, recorded := range h {
		recorded.Action = nil
		detached[i] = recorded
	}

	return detached
}
