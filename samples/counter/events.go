package counter

import "github.com/weegigs/wee-reducers-go/we"

type Incremented struct {
	Amount int `json:"amount"`
}

type Decremented struct {
	Amount int `json:"amount"`
}

var RandomizedAction = we.ActionType("counter:randomized")

type Randomized struct {
	Value int `json:"value"`
}

func (Randomized) ActionType() we.ActionType {
	return RandomizedAction
}

func Decoders() we.Decoders {
	return we.Decoders{
		we.ActionTypeOf(Incremented{}): we.DecodeAs[Incremented](),
		we.ActionTypeOf(Decremented{}): we.DecodeAs[Decremented](),
		RandomizedAction:               we.DecodeAs[Randomized](),
	}
}
