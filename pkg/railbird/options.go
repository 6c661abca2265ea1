package railbird

import "github.com/real-donkey-killers/railbird/internal/config"

type options struct {
	team string
}

// Option configures a Summarizer.
type Option func(*options)

// WithTeam sets the team whose actions are summarized. The name is matched
// as a literal substring of event messages.
// Default: "The Real Donkey Killers".
func WithTeam(name string) Option {
	return func(o *options) {
		o.team = name
	}
}

func defaultOptions() options {
	return options{team: config.DefaultTeam}
}
