package we

import (
	"reflect"
	"strings"

	"github.com/iancoleman/strcase"
)

type Named interface {
	TypeName() string
}

// NameOf returns the explicit name of a Named value, otherwise its reflected
// type name in kebab case, qualified by package: "counter:set-label".
func NameOf(value any) string {
	if value == nil {
		return ""
	}

	if typed, ok := value.(Named); ok {
		return typed.TypeName()
	}

	split := strings.Split(reflect.TypeOf(value).String(), ".")
	segments := make([]string, len(split))
	for i, segment := range split {
		s := strings.TrimLeft(segment, "*[]")
		segments[i] = strcase.ToKebab(s)
	}

	if len(segments) == 1 {
		return segments[0]
	}

	namespace := segments[0]
	name := strings.Join(segments[1:], "-")

	return namespace + ":" + name
}
