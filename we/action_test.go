package we

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type namedAction struct{}

func (namedAction) TypeName() string {
	return "test:named"
}

type typedAction struct{}

func (typedAction) ActionType() ActionType {
	return "test:typed"
}

type resetAllCounters struct{}

func resolvesExplicitName(t *testing.T) {
	assert.Equal(t, ActionType("test:named"), ActionTypeOf(namedAction{}))
	assert.Equal(t, ActionType("test:typed"), ActionTypeOf(typedAction{}))
}

func resolvesImplicitName(t *testing.T) {
	assert.Equal(t, ActionType("we:reset-all-counters"), ActionTypeOf(resetAllCounters{}))
	assert.Equal(t, ActionType("we:reset-all-counters"), ActionTypeOf(&resetAllCounters{}))
}

func resolvesTypeEntry(t *testing.T) {
	assert.Equal(t, ActionType("INC"), ActionTypeOf(map[string]any{"type": "INC"}))
	assert.Equal(t, ActionType("SET"), ActionTypeOf(MapOf(map[string]any{"type": "SET"})))
}

func resolvesNothingForNil(t *testing.T) {
	assert.Equal(t, ActionType(""), ActionTypeOf(nil))
}

func TestActionTypes(t *testing.T) {
	t.Run("resolves explicit name", resolvesExplicitName)
	t.Run("resolves implicit name", resolvesImplicitName)
	t.Run("resolves type entry", resolvesTypeEntry)
	t.Run("resolves nothing for nil", resolvesNothingForNil)
}
