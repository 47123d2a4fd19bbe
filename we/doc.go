// Package we composes named slice reducers into a single reducer over a
// persistent Map.
//
//	reducer, err := we.CombineReducers(we.Reducers{
//		"count": we.Slice(0, func(count int, action we.Action) int {
//			if _, ok := action.(Incremented); ok {
//				return count + 1
//			}
//			return count
//		}),
//	})
//
// Calling reducer(nil, action) starts from an empty Map. When no slice changes,
// the reducer returns the state it was given.
package we
