package engine

import (
	"log/slog"
	"strings"

	"github.com/real-donkey-killers/railbird/internal/engine/action"
	"github.com/real-donkey-killers/railbird/internal/engine/showdown"
	"github.com/real-donkey-killers/railbird/internal/engine/street"
	"github.com/real-donkey-killers/railbird/internal/model"
)

// Engine classifies game events on behalf of a single team.
type Engine struct {
	team string
}

// New creates an Engine that matches events mentioning team.
func New(team string) *Engine {
	return &Engine{team: team}
}

// Team returns the team name the engine filters on.
func (e *Engine) Team() string {
	return e.team
}

// Process derives the summary row for one event. The boolean is false when
// the event is not attributable to the team: wrong type, or the team name
// does not occur in the message.
func (e *Engine) Process(ev model.Event) (model.Row, bool) {
	if !strings.Contains(ev.Message, e.team) {
		return model.Row{}, false
	}

	switch ev.Type {
	case model.TypeBet:
		return e.betRow(ev), true
	case model.TypeWinner:
		return e.winnerRow(ev), true
	default:
		return model.Row{}, false
	}
}

// ProcessBatch derives rows for a slice of events, preserving input order.
func (e *Engine) ProcessBatch(events []model.Event) []model.Row {
	rows := make([]model.Row, 0, len(events))
	for _, ev := range events {
		if row, ok := e.Process(ev); ok {
			rows = append(rows, row)
		}
	}
	return rows
}

func (e *Engine) betRow(ev model.Event) model.Row {
	gs := ev.GameState
	amount := action.Amount(ev.Message)
	return model.Row{
		Round:   string(gs.Round),
		Street:  street.FromState(gs),
		Action:  action.Classify(ev.Message, amount),
		Amount:  amount,
		Pot:     string(gs.Pot),
		BuyIn:   string(gs.CurrentBuyIn),
		Message: ev.Message,
	}
}

// winnerRow leaves the amount column blank: the pot line already carries the
// size of the win.
func (e *Engine) winnerRow(ev model.Event) model.Row {
	gs := ev.GameState
	if hand, ok := showdown.Describe(gs, e.team); ok {
		slog.Debug("showdown hand", "team", e.team, "hand", hand)
	}
	return model.Row{
		Round:   string(gs.Round),
		Street:  street.FromState(gs),
		Action:  action.Won,
		Pot:     string(gs.Pot),
		BuyIn:   string(gs.CurrentBuyIn),
		Message: ev.Message,
	}
}
