package model

// Row is the summarizer's output type: one line of the summary table.
// Every field is already rendered text; the writer only joins them.
// A winner row carries Action "won" and an empty Amount.
type Row struct {
	Round   string
	Street  string
	Action  string
	Amount  string
	Pot     string
	BuyIn   string
	Message string
}
