package we

import (
	"strings"

	"github.com/benbjohnson/immutable"
	"github.com/goccy/go-json"
)

type keyComparer struct{}

func (keyComparer) Compare(a, b string) int {
	return strings.Compare(a, b)
}

// Map is a persistent string keyed map. Every update returns a new *Map that
// shares structure with the receiver, or the receiver itself when the update
// does not change anything. A nil *Map reads as empty.
type Map struct {
	entries *immutable.SortedMap[string, any]
}

func NewMap() *Map {
	return &Map{entries: immutable.NewSortedMap[string, any](keyComparer{})}
}

func MapOf(values map[string]any) *Map {
	m := NewMap()
	for key, value := range values {
		m = m.Set(key, value)
	}

	return m
}

func IsMap(value any) bool {
	_, ok := value.(*Map)
	return ok
}

func (m *Map) empty() bool {
	return m == nil || m.entries == nil
}

func (m *Map) Len() int {
	if m.empty() {
		return 0
	}

	return m.entries.Len()
}

func (m *Map) Get(key string) (any, bool) {
	if m.empty() {
		return nil, false
	}

	return m.entries.Get(key)
}

func (m *Map) Has(key string) bool {
	_, ok := m.Get(key)
	return ok
}

// Set returns a map holding value at key. When key already holds a value that
// is the Same as value, the receiver is returned unchanged.
func (m *Map) Set(key string, value any) *Map {
	if current, ok := m.Get(key); ok && Same(current, value) {
		return m
	}

	entries := m.entriesOrEmpty()
	return &Map{entries: entries.Set(key, value)}
}

func (m *Map) Delete(key string) *Map {
	if !m.Has(key) {
		return m
	}

	return &Map{entries: m.entries.Delete(key)}
}

// Range calls fn for every entry in key order until fn returns false.
func (m *Map) Range(fn func(key string, value any) bool) {
	if m.empty() {
		return
	}

	itr := m.entries.Iterator()
	for !itr.Done() {
		key, value, _ := itr.Next()
		if !fn(key, value) {
			return
		}
	}
}

func (m *Map) Keys() []string {
	keys := make([]string, 0, m.Len())
	m.Range(func(key string, _ any) bool {
		keys = append(keys, key)
		return true
	})

	return keys
}

// Equal reports whether both maps hold the same keys with Same values. Nested
// maps are compared by value.
func (m *Map) Equal(other *Map) bool {
	if m == other {
		return true
	}
	if m.Len() != other.Len() {
		return false
	}

	equal := true
	m.Range(func(key string, value any) bool {
		theirs, ok := other.Get(key)
		if !ok {
			equal = false
			return false
		}

		mine, nested := value.(*Map)
		if nested {
			if their, ok := theirs.(*Map); ok {
				equal = mine.Equal(their)
				return equal
			}
		}

		equal = Same(value, theirs)
		return equal
	})

	return equal
}

// ToNative copies the map into a Go map. Nested maps are converted as well.
func (m *Map) ToNative() map[string]any {
	native := make(map[string]any, m.Len())
	m.Range(func(key string, value any) bool {
		if nested, ok := value.(*Map); ok {
			native[key] = nested.ToNative()
			return true
		}

		native[key] = value
		return true
	})

	return native
}

func (m *Map) String() string {
	data, err := m.MarshalJSON()
	if err != nil {
		return "Map{}"
	}

	return "Map" + string(data)
}

func (m *Map) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.ToNative())
}

// UnmarshalJSON decodes a JSON object into a zero Map. Objects nested inside
// the document become nested maps.
func (m *Map) UnmarshalJSON(data []byte) error {
	var native map[string]any
	if err := json.Unmarshal(data, &native); err != nil {
		return err
	}

	m.entries = fromNative(native).entries
	return nil
}

func ParseMap(data []byte) (*Map, error) {
	m := &Map{}
	if err := m.UnmarshalJSON(data); err != nil {
		return nil, err
	}

	return m, nil
}

func (m *Map) entriesOrEmpty() *immutable.SortedMap[string, any] {
	if m.empty() {
		return immutable.NewSortedMap[string, any](keyComparer{})
	}

	return m.entries
}

func fromNative(native map[string]any) *Map {
	m := NewMap()
	for key, value := range native {
		if nested, ok := value.(map[string]any); ok {
			m = m.Set(key, fromNative(nested))
			continue
		}

		m = m.Set(key, value)
	}

	return m
}
