// Package street derives the betting street from a game state.
package street

import (
	"strconv"

	"github.com/real-donkey-killers/railbird/internal/model"
)

// FromState names the street implied by the number of visible community
// cards. Unknown counts fall through to the count itself so malformed states
// stay visible in the table instead of aborting the run.
func FromState(gs model.GameState) string {
	switch n := len(gs.CommunityCards); n {
	case 0:
		return "PRE"
	case 3:
		return "FLOP"
	case 4:
		return "TURN"
	case 5:
		return "RIVER"
	default:
		return strconv.Itoa(n)
	}
}
