package we

import (
	"fmt"
	"reflect"

	"github.com/pkg/errors"
)

// ValidationError reports a reducer source of a recognised shape holding a
// value that is not a reducer.
type ValidationError struct {
	Shape Shape
	Key   string
	Type  string
}

func (e *ValidationError) Error() string {
	switch e.Shape {
	case ShapeImmutableMap:
		return fmt.Sprintf("Expected an Immutable.Map with all entries being functions: entry %q holds %s", e.Key, e.Type)
	default:
		return fmt.Sprintf("Expected an object with all keys being functions: key %q holds %s", e.Key, e.Type)
	}
}

func NotAReducer(shape Shape, key string, value any) error {
	return errors.WithStack(&ValidationError{
		Shape: shape,
		Key:   key,
		Type:  typeName(value),
	})
}

// TypeMismatchError reports a reducer source that is neither a string keyed
// map nor a *Map.
type TypeMismatchError struct {
	Type string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("Expected an object or Immutable Map, got %s", e.Type)
}

func UnexpectedSource(source any) error {
	return errors.WithStack(&TypeMismatchError{Type: typeName(source)})
}

func typeName(value any) string {
	if value == nil {
		return "nil"
	}

	if v := reflect.ValueOf(value); v.Kind() == reflect.Func && v.IsNil() {
		return fmt.Sprintf("nil %T", value)
	}

	return fmt.Sprintf("%T", value)
}
