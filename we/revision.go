package we

import (
	"math/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// Revision identifies a recorded action within a history. Revisions are ULIDs
// issued by a RevisionGenerator, so their string order is the order in which
// the actions were recorded.
type Revision string

// InitialRevision is the revision of a snapshot no action has been folded into.
const InitialRevision = Revision("00000000000000000000000000")

// RevisionGenerator issues strictly increasing revisions, even for actions
// recorded within the same millisecond.
type RevisionGenerator struct {
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

func NewRevisionGenerator() *RevisionGenerator {
	seed := rand.NewSource(time.Now().UnixNano())
	return &RevisionGenerator{entropy: ulid.Monotonic(rand.New(seed), 0)}
}

func (g *RevisionGenerator) NewRevision(recordedAt time.Time) Revision {
	g.mu.Lock()
	defer g.mu.Unlock()

	return Revision(ulid.MustNew(ulid.Timestamp(recordedAt), g.entropy).String())
}

// After reports whether revision was recorded after other. An unset revision
// is never after anything.
func (revision Revision) After(other Revision) bool {
	if revision == "" {
		return false
	}

	return revision > other
}

// Timestamp returns the time the revision was recorded at.
func (revision Revision) Timestamp() Timestamp {
	id := ulid.MustParse(string(revision))
	return TimestampFromTime(ulid.Time(id.Time()))
}

func (revision Revision) String() string {
	return string(revision)
}
