package we

// Action describes something that happened. The combinator never inspects it;
// it is handed unchanged to every slice reducer.
type Action any

type ActionType string

func (at ActionType) String() string {
	return string(at)
}

type Typed interface {
	ActionType() ActionType
}

// ActionTypeOf names an action for logs and recorded histories. Typed actions
// name themselves, map actions use their "type" entry and anything else falls
// back to NameOf.
func ActionTypeOf(action Action) ActionType {
	switch a := action.(type) {
	case nil:
		return ""
	case Typed:
		return a.ActionType()
	case map[string]any:
		if t, ok := a["type"].(string); ok {
			return ActionType(t)
		}
	case *Map:
		if t, ok := a.Get("type"); ok {
			if s, ok := t.(string); ok {
				return ActionType(s)
			}
		}
	}

	return ActionType(NameOf(action))
}
