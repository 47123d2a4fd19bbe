package we

// Reducer owns one slice of a combined state. A nil state means the slice is
// unset and the reducer must return its initial value.
type Reducer func(state any, action Action) any

// Reducers is the plain form of a reducer mapping, keyed by slice name.
type Reducers map[string]Reducer

// Slice adapts a typed reducer. An unset slice is replaced with initial before
// fn runs; a slice holding any other type than T panics.
func Slice[T any](initial T, fn func(state T, action Action) T) Reducer {
	return func(state any, action Action) any {
		if state == nil {
			return fn(initial, action)
		}

		return fn(state.(T), action)
	}
}

func reducerOf(value any) (Reducer, bool) {
	switch fn := value.(type) {
	case Reducer:
		return fn, fn != nil
	case func(any, Action) any:
		return fn, fn != nil
	case CombinedReducer:
		if fn == nil {
			return nil, false
		}
		return fn.Reducer(), true
	case func(*Map, Action) *Map:
		if fn == nil {
			return nil, false
		}
		return CombinedReducer(fn).Reducer(), true
	default:
		return nil, false
	}
}
