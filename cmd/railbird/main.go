package main

import (
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/real-donkey-killers/railbird/internal/config"
	"github.com/real-donkey-killers/railbird/internal/engine"
	"github.com/real-donkey-killers/railbird/internal/logging"
	"github.com/real-donkey-killers/railbird/internal/output/tsv"
	"github.com/real-donkey-killers/railbird/internal/pipeline"
	"github.com/real-donkey-killers/railbird/internal/source"
)

func newApp(cfg config.Config, stdin io.Reader, stdout io.Writer) *cli.App {
	return &cli.App{
		Name:      "railbird",
		Usage:     "summarize poker platform game logs for one team",
		ArgsUsage: "[team-name]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "log verbosity: debug, info, warn, error",
				Value: cfg.LogLevel,
			},
			&cli.StringFlag{
				Name:  "log-format",
				Usage: "log format: text or json",
				Value: cfg.LogFormat,
			},
		},
		Action: func(c *cli.Context) error {
			logging.Init(c.String("log-format"), logging.ParseLevel(c.String("log-level")))

			team := cfg.Team
			if c.Args().Present() {
				team = c.Args().First()
			}

			p := pipeline.New(source.NewReader(stdin), engine.New(team), tsv.New(stdout))
			if err := p.Run(c.Context); err != nil {
				p.Close()
				return err
			}
			return p.Close()
		},
	}
}

func main() {
	// A .env file is optional; absence is not an error.
	_ = godotenv.Load()
	cfg := config.Load()

	if err := newApp(cfg, os.Stdin, os.Stdout).Run(os.Args); err != nil {
		// Printed directly so the diagnostic survives any --log-level setting.
		fmt.Fprintln(os.Stderr, "railbird:", err)
		os.Exit(1)
	}
}
