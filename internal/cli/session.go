package cli

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/critic/internal/config"
	"github.com/roach88/critic/internal/engine"
	"github.com/roach88/critic/internal/lexicon"
	"github.com/roach88/critic/internal/logging"
	"github.com/roach88/critic/internal/persist"
)

// session is one CLI invocation: configuration and an engine whose store
// has been reloaded from the database.
type session struct {
	cfg       config.Config
	eng       *engine.Engine
	formatter *OutputFormatter
}

// newFormatter builds the output formatter for cmd.
func newFormatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // Verbose logs go to stderr to avoid corrupting JSON
		Verbose:   opts.Verbose,
	}
}

// openSession loads configuration and the lexicon, configures logging and
// reloads the database. Every failure here is a command error (exit 2).
func openSession(opts *RootOptions, cmd *cobra.Command) (*session, error) {
	formatter := newFormatter(opts, cmd)

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, formatter.Fail(ExitCommandError, "invalid configuration", err)
	}

	level, _ := logging.ParseLevel(cfg.Log.Level) // validated by config.Load
	if opts.Verbose {
		level = slog.LevelDebug
	}
	logger := logging.Init(cmd.ErrOrStderr(), level, cfg.Log.Format)

	lex, err := lexicon.Load(cfg.Lexicon.Positive, cfg.Lexicon.Negative)
	if err != nil {
		return nil, formatter.Fail(ExitCommandError, "failed to load lexicon", err)
	}
	pos, neg := lex.Sizes()
	logger.Debug("lexicon loaded", "positive", pos, "negative", neg)

	codec, err := persist.New(cfg.Database.Format)
	if err != nil {
		return nil, formatter.Fail(ExitCommandError, "invalid configuration", err)
	}

	eng := engine.New(lex, engine.Options{
		Extension: cfg.Ingest.Extension,
		Pool: engine.PoolConfig{
			MinWorkers:  cfg.Ingest.MinWorkers,
			MaxWorkers:  cfg.Ingest.MaxWorkers,
			QueueSize:   cfg.Ingest.QueueSize,
			IdleTimeout: cfg.Ingest.IdleTimeout,
		},
		DatabasePath: cfg.Database.Path,
		Codec:        codec,
		BatchIDs:     opts.BatchIDs,
		Logger:       logger,
	})

	reload, err := eng.ReloadDatabase(commandContext(cmd))
	if err != nil {
		return nil, formatter.Fail(ExitCommandError, "failed to load database", err)
	}
	formatter.VerboseLog("Database %s: %d review(s), next id %d", reload.Path, reload.Loaded, reload.NextID)

	return &session{cfg: cfg, eng: eng, formatter: formatter}, nil
}

// save persists the store after a mutating command.
func (s *session) save(cmd *cobra.Command) error {
	if err := s.eng.SaveDatabase(commandContext(cmd)); err != nil {
		return s.formatter.Fail(ExitCommandError, "failed to save database", err)
	}
	return nil
}

// commandContext returns the command's context, or Background when the
// command was executed without one (e.g. from a test).
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
