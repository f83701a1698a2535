// Command pgn-notation parses, lists and replays chess games written in
// PGN-like notation.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/lgbarn/pgn-notation-go/internal/config"
	"github.com/lgbarn/pgn-notation-go/internal/logging"
)

// Version is populated at build time.
var Version = "dev"

const envKey = "env"

// env is the state shared by every command.
type env struct {
	cfg    *config.Config
	logger *zap.Logger
}

var globalFlags = []cli.Flag{
	&cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Read settings from `FILE` (YAML, TOML or JSON)",
		EnvVars: []string{"PGN_CONFIG"},
	},
	&cli.StringFlag{
		Name:  "log-level",
		Usage: "Log level: debug, info, warn or error",
	},
}

func newApp(stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "pgn-notation",
		Usage:     "Parse and inspect chess games in PGN notation",
		Version:   Version,
		Writer:    stdout,
		ErrWriter: stderr,
		Metadata:  map[string]interface{}{},
		Flags:     globalFlags,
		Before: func(c *cli.Context) error {
			cfg, err := config.Load(c.String("config"))
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			if c.IsSet("log-level") {
				cfg.Log.Level = c.String("log-level")
				if err := cfg.Validate(); err != nil {
					return err
				}
			}

			opts := logging.FromConfig(cfg.Log)
			opts.Output = c.App.ErrWriter
			c.App.Metadata[envKey] = &env{cfg: cfg, logger: logging.New(opts)}
			return nil
		},
		After: func(c *cli.Context) error {
			if e, ok := c.App.Metadata[envKey].(*env); ok {
				_ = e.logger.Sync()
			}
			return nil
		},
		Commands: []*cli.Command{
			parseCommand(),
			listCommand(),
			replayCommand(),
		},
	}
}

func getEnv(c *cli.Context) *env {
	return c.App.Metadata[envKey].(*env)
}

func main() {
	if err := newApp(os.Stdout, os.Stderr).Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
