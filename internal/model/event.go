package model

import "encoding/json"

// Event types the summarizer acts on. Every other type is skipped.
const (
	TypeBet    = "bet"
	TypeWinner = "winner_announcement"
)

// Event is one platform log record. Only the fields the summarizer reads are
// declared; anything else in the record is ignored by the decoder. Missing
// fields decode to their zero values, so downstream access never needs a
// presence check.
type Event struct {
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	GameState GameState `json:"game_state"`
}

// GameState is the nested table snapshot carried by most platform events.
type GameState struct {
	Round          Scalar   `json:"round"`
	CommunityCards []Card   `json:"community_cards"`
	Pot            Scalar   `json:"pot"`
	CurrentBuyIn   Scalar   `json:"current_buy_in"`
	Players        []Player `json:"players"`
}

// Player is a seat entry in the game state. The platform includes hole cards
// only for the team's own seat, and for everyone once a hand reaches showdown.
type Player struct {
	Name      string `json:"name"`
	HoleCards []Card `json:"hole_cards"`
}

// Card is the platform card record, e.g. {"rank":"A","suit":"hearts"}.
// Ten is "10", not "T".
type Card struct {
	Rank string `json:"rank"`
	Suit string `json:"suit"`
}

// Scalar holds the textual form of a loosely-typed JSON value. The platform
// reports round numbers and amounts as numbers or strings depending on
// version; Scalar resolves both to the text the summary table prints.
// Absent and null values become "".
type Scalar string

// UnmarshalJSON keeps strings as-is and any other value as its input literal,
// so 40 renders as "40" and 40.5 as "40.5" without float round-tripping.
func (s *Scalar) UnmarshalJSON(b []byte) error {
	if len(b) == 0 || string(b) == "null" {
		*s = ""
		return nil
	}
	if b[0] == '"' {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		*s = Scalar(str)
		return nil
	}
	*s = Scalar(b)
	return nil
}
