package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/quizdeck/internal/converter"
)

var convertCmd = &cobra.Command{
	Use:   "convert <input>",
	Short: "Convert a transaction report to CSV or XLSX",
	Long: `Convert a fixed-layout transaction report into a spreadsheet.

Input "-" reads standard input. Without -o the result is written next to the
input with the new extension, or to standard output when reading stdin. An
input that already carries the target extension is converted to
<name>.converted.<ext> so it is never overwritten.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		logger, err := newLogger(cfg, true)
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		input := args[0]
		output, _ := cmd.Flags().GetString("output")
		formatFlag, _ := cmd.Flags().GetString("format")

		format := converter.FormatFor(output)
		if formatFlag != "" {
			if format, err = converter.ParseFormat(formatFlag); err != nil {
				return err
			}
		}
		if output == "" && input != "-" {
			stem := strings.TrimSuffix(input, filepath.Ext(input))
			output = stem + "." + string(format)
			if sameFile(input, output) {
				output = stem + ".converted." + string(format)
			}
		} else if input != "-" && sameFile(input, output) {
			return fmt.Errorf("output %s would overwrite the input", output)
		}

		in, closeIn, err := openInput(cmd, input)
		if err != nil {
			return err
		}
		defer closeIn()

		txs, err := converter.Parse(in)
		if err != nil {
			return fmt.Errorf("parse %s: %w", input, err)
		}
		if len(txs) == 0 {
			logger.Warn("no transactions found", zap.String("input", input))
		}

		if output == "" || output == "-" {
			return converter.Write(cmd.OutOrStdout(), format, txs)
		}

		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("create %s: %w", output, err)
		}
		if err := converter.Write(f, format, txs); err != nil {
			f.Close()
			return fmt.Errorf("write %s: %w", output, err)
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("close %s: %w", output, err)
		}

		fmt.Fprintf(cmd.ErrOrStderr(), "Converted %d transactions to %s\n", len(txs), output)
		return nil
	},
}

func init() {
	convertCmd.Flags().StringP("output", "o", "", "Output file (.csv or .xlsx); - for stdout")
	convertCmd.Flags().String("format", "", "Output format: csv or xlsx (default from the output extension)")
}

// sameFile reports whether a and b name the same file, either by path or,
// when both exist, by identity.
func sameFile(a, b string) bool {
	if filepath.Clean(a) == filepath.Clean(b) {
		return true
	}
	fa, err := os.Stat(a)
	if err != nil {
		return false
	}
	fb, err := os.Stat(b)
	if err != nil {
		return false
	}
	return os.SameFile(fa, fb)
}

func openInput(cmd *cobra.Command, path string) (io.Reader, func(), error) {
	if path == "-" {
		return cmd.InOrStdin(), func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", path, err)
	}
	return f, func() { f.Close() }, nil
}
