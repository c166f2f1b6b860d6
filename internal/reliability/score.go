package reliability

import (
	"math"

	"github.com/popeskul/pnba-gateway/internal/models"
)

// Score returns the share of terminal tests that reached the receiving side, rounded
// to two decimals, and the number of terminal tests it was computed over. Tests that
// may still move (pending, sent, delivered) are ignored.
func Score(tests []*models.ReliabilityTest) (float64, int) {
	var settled, succeeded int
	for _, t := range tests {
		if !t.Status.IsTerminal() {
			continue
		}
		settled++
		if t.Reached() {
			succeeded++
		}
	}

	if settled == 0 {
		return 0, 0
	}

	return math.Round(float64(succeeded)/float64(settled)*100) / 100, settled
}
