// Package showdown evaluates the team's hand when a winner announcement
// reveals a complete board.
package showdown

import (
	"strconv"

	poker "github.com/paulhankin/poker"

	"github.com/real-donkey-killers/railbird/internal/model"
)

// Describe names the team's best five-card hand at showdown. It reports ok
// only when the board is complete and the game state shows exactly two hole
// cards for a player named after the team. Unknown card encodings skip the
// annotation rather than fail the run.
func Describe(gs model.GameState, team string) (string, bool) {
	if len(gs.CommunityCards) != 5 {
		return "", false
	}
	var hole []model.Card
	for _, p := range gs.Players {
		if p.Name == team {
			hole = p.HoleCards
			break
		}
	}
	if len(hole) != 2 {
		return "", false
	}

	cards := make([]poker.Card, 0, 7)
	for _, c := range append(append([]model.Card{}, hole...), gs.CommunityCards...) {
		pc, ok := toCard(c)
		if !ok {
			return "", false
		}
		cards = append(cards, pc)
	}
	desc, err := poker.Describe(cards)
	if err != nil {
		return "", false
	}
	return desc, true
}

// toCard maps the platform card record onto the evaluator's encoding.
// The evaluator counts ranks 1..13 with the ace at 1.
func toCard(c model.Card) (poker.Card, bool) {
	var zero poker.Card

	var s poker.Suit
	switch c.Suit {
	case "clubs":
		s = poker.Club
	case "diamonds":
		s = poker.Diamond
	case "hearts":
		s = poker.Heart
	case "spades":
		s = poker.Spade
	default:
		return zero, false
	}

	var r poker.Rank
	switch c.Rank {
	case "A":
		r = 1
	case "K":
		r = 13
	case "Q":
		r = 12
	case "J":
		r = 11
	default:
		n, err := strconv.Atoi(c.Rank)
		if err != nil || n < 2 || n > 10 {
			return zero, false
		}
		r = poker.Rank(n)
	}

	card, err := poker.MakeCard(s, r)
	if err != nil {
		return zero, false
	}
	return card, true
}
