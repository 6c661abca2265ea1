// Package action extracts the wagered amount and action name from platform
// bet messages. The platform phrases these as free text ("TeamX: bet of 40
// (raise)"), so extraction is a regular-expression scan plus marker lookup.
// Scan order and capture-group handling are load-bearing: downstream
// consumers depend on the exact tie-break order.
package action

import (
	"regexp"
	"strings"
)

// Won labels a winner-announcement row; it never results from Classify.
const Won = "won"

var betAmount = regexp.MustCompile(`bet of (\d+)|bet of 0 \((\w+)\)`)

// Amount returns the digits wagered according to msg, or "0" when the
// message matches no known phrasing or phrases a zero bet.
func Amount(msg string) string {
	m := betAmount.FindStringSubmatch(msg)
	if m == nil || m[1] == "" {
		return "0"
	}
	return m[1]
}

// Classify names the action described by msg. Explicit markers win over the
// parsed amount: a "(call)" suffix names a call even when chips moved. A
// non-zero amount with no marker is a plain bet; an unrecognized message is
// tagged "?" rather than dropped.
func Classify(msg, amount string) string {
	switch {
	case strings.Contains(msg, "(call)"):
		return "call"
	case strings.Contains(msg, "(raise)"):
		return "raise"
	case strings.Contains(msg, "(check)"):
		return "check"
	case amount != "0":
		return "bet"
	case strings.Contains(msg, "(fold)"):
		return "fold"
	default:
		return "?"
	}
}
