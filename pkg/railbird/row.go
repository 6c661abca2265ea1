package railbird

import "github.com/real-donkey-killers/railbird/internal/model"

// Row is one line of the summary table.
// This is the stable public type; internal representations may evolve
// independently without breaking consumers.
type Row struct {
	Round   string `json:"round"`   // Round identifier as reported by the platform
	Street  string `json:"street"`  // PRE, FLOP, TURN, RIVER, or the raw card count
	Action  string `json:"action"`  // call, raise, check, bet, fold, won, or ?
	Amount  string `json:"amount"`  // Wagered chips; empty on won rows
	Pot     string `json:"pot"`     // Pot size at the time of the event
	BuyIn   string `json:"buyin"`   // Current buy-in at the time of the event
	Message string `json:"message"` // Original free-text platform message
}

// rowFromInternal converts the internal row to the public Row type.
func rowFromInternal(r model.Row) Row {
	return Row{
		Round:   r.Round,
		Street:  r.Street,
		Action:  r.Action,
		Amount:  r.Amount,
		Pot:     r.Pot,
		BuyIn:   r.BuyIn,
		Message: r.Message,
	}
}
