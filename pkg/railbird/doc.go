// Package railbird summarizes poker platform game logs: it reads a JSON
// array (or JSON lines) of game events and reduces it to a tab-separated
// table of one team's betting actions and wins.
//
// Quick start:
//
//	s := railbird.New(railbird.WithTeam("The Real Donkey Killers"))
//	if err := s.Summarize(os.Stdin, os.Stdout); err != nil {
//	    log.Fatal(err)
//	}
//
// A Summarizer carries no state between calls and is safe for concurrent
// use.
package railbird
