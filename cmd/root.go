package cmd

import (
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/quizdeck/internal/config"
	"github.com/abhisek/quizdeck/internal/logging"
	"github.com/abhisek/quizdeck/internal/store"
)

// v holds defaults, environment and the persistent flags bound below.
var v = config.New()

var rootCmd = &cobra.Command{
	Use:   "quizdeck",
	Short: "Geography and chemistry practice in the terminal",
	Long:  "Quizdeck: multiple-choice quizzes and flashcards on cities, rivers, flags and the periodic table.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, nil)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("db", "", "Path to SQLite database file (overrides QUIZDECK_DB env var)")
	pf.String("config", "", "Path to a YAML config file")
	pf.Uint64("seed", 0, "Random seed for question order (0 = random)")
	mustBind("db")
	mustBind("seed")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(cardsCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(versionCmd)
}

// mustBind makes a persistent flag override the config key of the same name.
func mustBind(name string) {
	if err := v.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name)); err != nil {
		panic(err)
	}
}

// loadConfig reads configuration honouring --config.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	file, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(v, config.Options{ConfigFile: file})
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// resolveDBPath returns the database path using --db flag or the db config
// key (highest priority), then QUIZDECK_DB env var, then the default XDG path.
func resolveDBPath(cfg *config.Config) (string, error) {
	if cfg.DB != "" {
		return cfg.DB, store.EnsureDir(cfg.DB)
	}
	return store.DefaultDBPath()
}

// openStore resolves the database path and opens it.
func openStore(cfg *config.Config) (*store.Store, error) {
	dbPath, err := resolveDBPath(cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return st, nil
}

// newLogger builds the logger for a command. Non-interactive commands pass
// toStderr so warnings land next to their output.
func newLogger(cfg *config.Config, toStderr bool) (*zap.Logger, error) {
	if toStderr {
		c := *cfg
		c.Log.File = logging.Stderr
		cfg = &c
	}
	logger, err := logging.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}
	return logger, nil
}

// newRand returns a source seeded from cfg.Seed, or nil for the global one.
func newRand(cfg *config.Config) *rand.Rand {
	if cfg.Seed == 0 {
		return nil
	}
	return rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15))
}
