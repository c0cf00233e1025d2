// Package consensus classifies the responses recorded for a single time
// slot into a color-coded category for the results view.
package consensus

import "github.com/StudioAP/kaigi-scheduler/internal/model"

type Category string

const (
	Unanswered    Category = "unanswered"
	FullConsensus Category = "full-consensus"
	Adjustable    Category = "adjustable"
	MinorConflict Category = "minor-conflict"
	MajorConflict Category = "major-conflict"
)

// Tally holds per-availability response counts for one slot.
type Tally struct {
	Available   int `json:"available"`
	Tentative   int `json:"tentative"`
	Unavailable int `json:"unavailable"`
}

func (t Tally) total() int {
	return t.Available + t.Tentative + t.Unavailable
}

// Count tallies a slot's responses.
func Count(responses []model.Response) Tally {
	var t Tally
	for _, r := range responses {
		switch r.Availability {
		case model.Available:
			t.Available++
		case model.Tentative:
			t.Tentative++
		case model.Unavailable:
			t.Unavailable++
		}
	}
	return t
}

// Classify maps a slot's tally and the meeting's participant count to a
// category. Rules apply in order: no responses at all, everyone available,
// nobody unavailable, then the share of unavailable answers. The boundary
// "unavailable <= total/3" is exact, no rounding.
func Classify(t Tally, totalParticipants int) Category {
	switch {
	case t.total() == 0:
		return Unanswered
	case t.Available == totalParticipants:
		return FullConsensus
	case t.Unavailable == 0:
		return Adjustable
	case 3*t.Unavailable <= totalParticipants:
		return MinorConflict
	default:
		return MajorConflict
	}
}
