package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizdeck/internal/app"
	"github.com/abhisek/quizdeck/internal/dataset"
	"github.com/abhisek/quizdeck/internal/screen"
)

var playCmd = &cobra.Command{
	Use:       "play <quiz>",
	Short:     "Start a multiple-choice quiz",
	Long:      "Start a multiple-choice quiz. Quizzes: " + kindList() + ".",
	Args:      cobra.ExactArgs(1),
	ValidArgs: kindNames(),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := parseQuiz(args[0])
		if err != nil {
			return err
		}
		return runApp(cmd, func(opts app.Options) (screen.Screen, error) {
			return app.QuizScreen(kind, opts)
		})
	},
}

var cardsCmd = &cobra.Command{
	Use:       "cards <deck>",
	Short:     "Browse a flashcard deck",
	Long:      "Browse a flashcard deck. Decks: " + kindList() + ".",
	Args:      cobra.ExactArgs(1),
	ValidArgs: kindNames(),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := parseQuiz(args[0])
		if err != nil {
			return err
		}
		return runApp(cmd, func(opts app.Options) (screen.Screen, error) {
			return app.DeckScreen(kind, opts)
		})
	},
}

// parseQuiz resolves a quiz name, reporting ErrUnknownQuiz for bad input.
func parseQuiz(name string) (dataset.Kind, error) {
	kind, err := dataset.ParseKind(name)
	if errors.Is(err, dataset.ErrUnknownKind) {
		return "", fmt.Errorf("%w %q (choose from %s)", app.ErrUnknownQuiz, name, kindList())
	}
	return kind, err
}

func kindNames() []string {
	kinds := dataset.AllKinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	return names
}

func kindList() string {
	return strings.Join(kindNames(), ", ")
}
