package counter

import "github.com/weegigs/wee-reducers-go/we"

func current() we.Reducer {
	return we.Slice(0, func(current int, action we.Action) int {
		switch evt := action.(type) {
		case Incremented:
			return current + evt.Amount
		case Decremented:
			return current - evt.Amount
		case Randomized:
			return evt.Value
		default:
			return current
		}
	})
}

func changes() we.Reducer {
	return we.Slice(0, func(changes int, action we.Action) int {
		switch action.(type) {
		case Incremented, Decremented, Randomized:
			return changes + 1
		default:
			return changes
		}
	})
}

func Reducers() we.Reducers {
	return we.Reducers{
		"current": current(),
		"changes": changes(),
	}
}
