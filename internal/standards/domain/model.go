package domain

import (
	"fmt"
	"strings"
	"time"
)

// QualifyingStandard is one reference minimum time row, keyed by the
// deterministic composite id so re-imports overwrite rather than duplicate.
type QualifyingStandard struct {
	SeasonYear int       `firestore:"seasonYear" json:"seasonYear"`
	Category   string    `firestore:"category" json:"category"`
	Gender     string    `firestore:"gender" json:"gender"` // single-letter code
	Distance   int       `firestore:"distance" json:"distance"`
	Style      string    `firestore:"style" json:"style"`
	TimeMs     *int64    `firestore:"timeMs" json:"timeMs"` // nil: no minimum mark (S/MM)
	Display    string    `firestore:"display,omitempty" json:"display,omitempty"`
	PoolLength int       `firestore:"poolLength,omitempty" json:"poolLength,omitempty"`
	UpdatedAt  time.Time `firestore:"updatedAt" json:"updatedAt"`
}

// DocID is "{seasonYear}-{category}-{genderCode}-{distance}-{style}" with all
// whitespace stripped.
func (q *QualifyingStandard) DocID() string {
	id := fmt.Sprintf("%d-%s-%s-%d-%s", q.SeasonYear, q.Category, q.Gender, q.Distance, q.Style)
	return strings.Join(strings.Fields(id), "")
}
