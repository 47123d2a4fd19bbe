package we

import "reflect"

// Shape classifies a reducer source handed to Combine.
type Shape int

const (
	ShapeUnrecognized Shape = iota
	ShapeObject
	ShapeImmutableMap
)

func (s Shape) String() string {
	switch s {
	case ShapeObject:
		return "object"
	case ShapeImmutableMap:
		return "immutable map"
	default:
		return "unrecognized"
	}
}

// ShapeOf reports ShapeObject for any Go map keyed by strings, ShapeImmutableMap
// for a non-nil *Map and ShapeUnrecognized for everything else, nil included.
func ShapeOf(source any) Shape {
	if source == nil {
		return ShapeUnrecognized
	}

	if m, ok := source.(*Map); ok {
		if m == nil {
			return ShapeUnrecognized
		}
		return ShapeImmutableMap
	}

	t := reflect.TypeOf(source)
	if t.Kind() == reflect.Map && t.Key().Kind() == reflect.String {
		return ShapeObject
	}

	return ShapeUnrecognized
}
