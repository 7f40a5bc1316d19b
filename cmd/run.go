package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/quizdeck/internal/app"
	"github.com/abhisek/quizdeck/internal/dataset"
	"github.com/abhisek/quizdeck/internal/screen"
	"github.com/abhisek/quizdeck/internal/speech"
)

// startScreen builds the first screen from the assembled options; nil opens
// the home menu.
type startScreen func(app.Options) (screen.Screen, error)

// runApp loads config, opens the store, builds dependencies, and launches
// the TUI.
func runApp(cmd *cobra.Command, start startScreen) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg, false)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	opts := app.Options{
		Config:   cfg,
		Logger:   logger,
		Datasets: dataset.Dir(cfg.Datasets.Dir),
		Rand:     newRand(cfg),
	}

	st, err := openStore(cfg)
	if err != nil {
		// Quizzes still work without a database; only history is lost.
		logger.Warn("results will not be saved", zap.Error(err))
	} else {
		defer st.Close()
		opts.Results = st.Results()
	}

	spk := speech.Detect(cfg.Speech, logger)
	if c, ok := spk.(*speech.Command); ok {
		defer c.Close()
	}
	opts.Speaker = spk

	if start != nil {
		s, err := start(opts)
		if err != nil {
			return err
		}
		opts.Start = s
	}

	logger.Info("starting", zap.String("version", version), zap.Bool("results", opts.Results != nil))
	if err := app.Run(opts); err != nil {
		return fmt.Errorf("quizdeck: %w", err)
	}
	return nil
}
