package counter

import (
	"github.com/weegigs/wee-reducers-go/we"
)

const (
	CurrentKey = "current"
	ChangesKey = "changes"
)

// Counter reads the counter slices of a combined state.
type Counter struct {
	state *we.Map
}

func New(state *we.Map) Counter {
	return Counter{state: state}
}

func (c Counter) Value() int {
	return c.read(CurrentKey)
}

func (c Counter) Changes() int {
	return c.read(ChangesKey)
}

func (c Counter) read(key string) int {
	value, ok := c.state.Get(key)
	if !ok {
		return 0
	}

	return value.(int)
}

func Renderer() (*we.Renderer, error) {
	reducer, err := we.CombineReducers(Reducers())
	if err != nil {
		return nil, err
	}

	return &we.Renderer{Reducer: reducer, Decoders: Decoders()}, nil
}
