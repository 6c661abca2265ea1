package model

import (
	"encoding/json"
	"testing"
)

func TestScalarForms(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want Scalar
	}{
		{"integer", `3`, "3"},
		{"float keeps literal", `40.5`, "40.5"},
		{"trailing zero kept", `40.50`, "40.50"},
		{"string", `"final"`, "final"},
		{"null", `null`, ""},
		{"bool", `true`, "true"},
		{"negative", `-12`, "-12"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var s Scalar
			if err := json.Unmarshal([]byte(tc.in), &s); err != nil {
				t.Fatalf("unmarshal %s: %v", tc.in, err)
			}
			if s != tc.want {
				t.Fatalf("got %q, want %q", s, tc.want)
			}
		})
	}
}

func TestScalarEscapedString(t *testing.T) {
	var s Scalar
	if err := json.Unmarshal([]byte(`"a\tb"`), &s); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if s != "a\tb" {
		t.Fatalf("got %q, want unescaped tab", s)
	}
}

func TestEventMissingFieldsDecodeToZero(t *testing.T) {
	var ev Event
	if err := json.Unmarshal([]byte(`{}`), &ev); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if ev.Type != "" || ev.Message != "" {
		t.Fatalf("expected zero strings, got type=%q message=%q", ev.Type, ev.Message)
	}
	if ev.GameState.Round != "" || ev.GameState.Pot != "" || ev.GameState.CurrentBuyIn != "" {
		t.Fatalf("expected empty scalars, got %+v", ev.GameState)
	}
	if len(ev.GameState.CommunityCards) != 0 {
		t.Fatalf("expected no community cards, got %d", len(ev.GameState.CommunityCards))
	}
}

func TestGameStatePartialDecode(t *testing.T) {
	in := `{"type":"bet","game_state":{"round":7,"community_cards":[{"rank":"A","suit":"spades"}],"pot":"120"}}`
	var ev Event
	if err := json.Unmarshal([]byte(in), &ev); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	gs := ev.GameState
	if gs.Round != "7" {
		t.Fatalf("round = %q, want 7", gs.Round)
	}
	if gs.Pot != "120" {
		t.Fatalf("pot = %q, want 120", gs.Pot)
	}
	if gs.CurrentBuyIn != "" {
		t.Fatalf("buy-in = %q, want empty", gs.CurrentBuyIn)
	}
	if len(gs.CommunityCards) != 1 || gs.CommunityCards[0].Rank != "A" || gs.CommunityCards[0].Suit != "spades" {
		t.Fatalf("community cards = %+v", gs.CommunityCards)
	}
}
