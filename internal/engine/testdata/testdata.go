package testdata

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

//go:embed corpus.json
var corpusJSON []byte

// CorpusEntry is a labeled platform event for classification validation.
// Entries with ExpectedMatch false must produce no row; for the rest the
// expected fields pin down the action, amount, and street.
type CorpusEntry struct {
	Type           string `json:"type"`
	Message        string `json:"message"`
	BoardCards     int    `json:"board_cards"`
	ExpectedMatch  bool   `json:"expected_match"`
	ExpectedAction string `json:"expected_action,omitempty"`
	ExpectedAmount string `json:"expected_amount,omitempty"`
	ExpectedStreet string `json:"expected_street,omitempty"`
	Description    string `json:"description"`
}

// LoadCorpus parses the embedded corpus.json and returns all entries.
func LoadCorpus() ([]CorpusEntry, error) {
	var entries []CorpusEntry
	if err := json.Unmarshal(corpusJSON, &entries); err != nil {
		return nil, fmt.Errorf("parse corpus.json: %w", err)
	}
	return entries, nil
}
