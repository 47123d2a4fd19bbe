package we

import (
	"reflect"
	"sort"
)

// CombinedReducer folds an action over every slice of a combined state. A nil
// state is treated as an empty map.
type CombinedReducer func(state *Map, action Action) *Map

// Reducer adapts c so that it can own a slice of an outer combined state.
func (c CombinedReducer) Reducer() Reducer {
	return func(state any, action Action) any {
		if state == nil {
			return c(nil, action)
		}

		return c(state.(*Map), action)
	}
}

type slice struct {
	key    string
	reduce Reducer
}

type combination struct {
	slices []slice
	options
}

// CombineReducers composes the reducers into a single reducer producing a Map
// with one entry per key. Every reducer must be non-nil.
func CombineReducers(reducers Reducers, opts ...Option) (CombinedReducer, error) {
	keys := make([]string, 0, len(reducers))
	for key := range reducers {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	slices := make([]slice, 0, len(keys))
	for _, key := range keys {
		reduce := reducers[key]
		if reduce == nil {
			return nil, NotAReducer(ShapeObject, key, reduce)
		}
		slices = append(slices, slice{key: key, reduce: reduce})
	}

	return combine(slices, opts), nil
}

// CombineReducerMap composes the reducers held by a Map. Every entry must hold a
// reducer function; a nil Map is not a reducer source.
func CombineReducerMap(reducers *Map, opts ...Option) (CombinedReducer, error) {
	if reducers == nil {
		return nil, UnexpectedSource(reducers)
	}

	slices := make([]slice, 0, reducers.Len())

	var err error
	reducers.Range(func(key string, value any) bool {
		reduce, ok := reducerOf(value)
		if !ok {
			err = NotAReducer(ShapeImmutableMap, key, value)
			return false
		}

		slices = append(slices, slice{key: key, reduce: reduce})
		return true
	})
	if err != nil {
		return nil, err
	}

	return combine(slices, opts), nil
}

// Combine classifies source with ShapeOf and composes it. Any string keyed Go
// map whose values are all reducer functions is accepted, as is a *Map of
// reducers.
func Combine(source any, opts ...Option) (CombinedReducer, error) {
	switch ShapeOf(source) {
	case ShapeObject:
		reducers, err := objectReducers(source)
		if err != nil {
			return nil, err
		}
		return CombineReducers(reducers, opts...)
	case ShapeImmutableMap:
		return CombineReducerMap(source.(*Map), opts...)
	default:
		return nil, UnexpectedSource(source)
	}
}

// MustCombine is like Combine but panics if source cannot be combined.
func MustCombine(source any, opts ...Option) CombinedReducer {
	reducer, err := Combine(source, opts...)
	if err != nil {
		panic(err)
	}

	return reducer
}

func objectReducers(source any) (Reducers, error) {
	if reducers, ok := source.(Reducers); ok {
		return reducers, nil
	}

	v := reflect.ValueOf(source)
	keys := make([]string, 0, v.Len())
	for _, key := range v.MapKeys() {
		keys = append(keys, key.String())
	}
	sort.Strings(keys)

	reducers := make(Reducers, len(keys))
	for _, key := range keys {
		value := v.MapIndex(reflect.ValueOf(key).Convert(v.Type().Key())).Interface()
		reduce, ok := reducerOf(value)
		if !ok {
			return nil, NotAReducer(ShapeObject, key, value)
		}
		reducers[key] = reduce
	}

	return reducers, nil
}

func combine(slices []slice, opts []Option) CombinedReducer {
	c := &combination{slices: slices, options: newOptions(opts)}
	return c.reduce
}

func (c *combination) reduce(state *Map, action Action) *Map {
	if state == nil {
		state = NewMap()
	}

	next := state
	for _, s := range c.slices {
		current, _ := state.Get(s.key)
		next = next.Set(s.key, s.reduce(current, action))
	}

	if next != state {
		c.logChanges(state, next, action)
	}

	return next
}

func (c *combination) logChanges(prev, next *Map, action Action) {
	event := c.log.Debug()
	if !event.Enabled() {
		return
	}

	changed := make([]string, 0, len(c.slices))
	for _, s := range c.slices {
		before, existed := prev.Get(s.key)
		after, _ := next.Get(s.key)
		if !existed || !Same(before, after) {
			changed = append(changed, s.key)
		}
	}

	event.
		Str("action", ActionTypeOf(action).String()).
		Strs("changed", changed).
		Msg("state changed")
}
