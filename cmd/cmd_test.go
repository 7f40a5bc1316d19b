package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/quizdeck/internal/app"
	"github.com/abhisek/quizdeck/internal/store"
)

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	var out, errOut bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetIn(strings.NewReader(stdin))
	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "quizdeck (devel)\n", out)
}

func TestStatsAndReset(t *testing.T) {
	db := filepath.Join(t.TempDir(), "quizdeck.db")

	out, _, err := execute(t, "", "stats", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "No quizzes finished yet.")

	st, err := store.Open(db)
	require.NoError(t, err)
	now := time.Now()
	require.NoError(t, st.Results().Save(context.Background(), &store.RunRecord{
		Quiz: "rivers", Correct: 8, Incorrect: 2, Total: 10,
		StartedAt: now.Add(-time.Minute), FinishedAt: now,
	}))
	require.NoError(t, st.Close())

	out, _, err = execute(t, "", "stats", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "Longest Rivers")
	assert.Contains(t, out, "80%")
	assert.Contains(t, out, "Recent runs")

	out, _, err = execute(t, "n\n", "reset", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "Aborted.")

	out, _, err = execute(t, "", "reset", "--db", db, "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "All quiz results deleted.")

	out, _, err = execute(t, "", "stats", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "No quizzes finished yet.")
}

const report = `|  101|01/04/2024 | ACC | BK1 | 5001 | 0 |02/04/2024 | 1,250.50 | 0.00 |
| Name : John Smith  Sr/Ag/Pol No : P12345 |
|PREMIUM PAYMENT RECEIVED    |
`

func TestConvertToFile(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "report.txt")
	require.NoError(t, os.WriteFile(input, []byte(report), 0o644))

	_, errOut, err := execute(t, "", "convert", input, "-o", "", "--format", "")
	require.NoError(t, err)
	assert.Contains(t, errOut, "Converted 1 transactions to "+filepath.Join(dir, "report.csv"))

	data, err := os.ReadFile(filepath.Join(dir, "report.csv"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "John Smith")
	assert.Contains(t, string(data), "1250.50")
}

func TestConvertKeepsInputWithTargetExtension(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "ledger.csv")
	require.NoError(t, os.WriteFile(input, []byte(report), 0o644))

	_, errOut, err := execute(t, "", "convert", input, "-o", "", "--format", "")
	require.NoError(t, err)
	converted := filepath.Join(dir, "ledger.converted.csv")
	assert.Contains(t, errOut, "to "+converted)

	data, err := os.ReadFile(input)
	require.NoError(t, err)
	assert.Equal(t, report, string(data))

	data, err = os.ReadFile(converted)
	require.NoError(t, err)
	assert.Contains(t, string(data), "John Smith")
}

func TestConvertRefusesOutputOverInput(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "report.txt")
	require.NoError(t, os.WriteFile(input, []byte(report), 0o644))

	_, _, err := execute(t, "", "convert", input, "-o", filepath.Join(dir, ".", "report.txt"), "--format", "csv")
	assert.ErrorContains(t, err, "would overwrite the input")

	data, err := os.ReadFile(input)
	require.NoError(t, err)
	assert.Equal(t, report, string(data))
}

func TestConvertStdinToStdout(t *testing.T) {
	out, _, err := execute(t, report, "convert", "-", "-o", "-", "--format", "csv")
	require.NoError(t, err)
	assert.Contains(t, out, "PREMIUM PAYMENT RECEIVED")
}

func TestConvertRejectsFormat(t *testing.T) {
	_, _, err := execute(t, report, "convert", "-", "-o", "-", "--format", "pdf")
	assert.ErrorContains(t, err, "unsupported format")
}

func TestPlayUnknownQuiz(t *testing.T) {
	_, _, err := execute(t, "", "play", "oceans")
	assert.ErrorIs(t, err, app.ErrUnknownQuiz)
}

func TestParseQuiz(t *testing.T) {
	kind, err := parseQuiz("Periodic")
	require.NoError(t, err)
	assert.Equal(t, "elements", string(kind))
	assert.Equal(t, "cities, rivers, flags, elements", kindList())
}
