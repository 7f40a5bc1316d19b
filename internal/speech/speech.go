package speech

import (
	"context"
	"os/exec"
	"path/filepath"
	"strconv"
	"sync"

	"go.uber.org/zap"
)

// Speaker pronounces text. Implementations must not block the caller and
// never report failures; an unsupported environment simply stays silent.
type Speaker interface {
	Speak(text string)
}

// Nop is a Speaker that does nothing.
type Nop struct{}

func (Nop) Speak(string) {}

// Config configures the command-backed speaker.
type Config struct {
	Enabled bool   `mapstructure:"enabled"`
	Command string `mapstructure:"command"` // e.g. "espeak", "say", "spd-say"
	Rate    int    `mapstructure:"rate"`    // words per minute, 0 = command default
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Enabled: true,
		Command: "espeak",
		Rate:    140,
	}
}

// Command speaks text by running an external text-to-speech program.
// Starting a new utterance cancels the one still playing.
type Command struct {
	path   string
	rate   int
	logger *zap.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewCommand creates a Command speaker for the program at path.
func NewCommand(path string, rate int, logger *zap.Logger) *Command {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Command{path: path, rate: rate, logger: logger}
}

// Speak starts the TTS program in the background.
func (c *Command) Speak(text string) {
	if text == "" {
		return
	}

	c.mu.Lock()
	if c.cancel != nil {
		c.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	c.mu.Unlock()

	cmd := exec.CommandContext(ctx, c.path, c.args(text)...)
	if err := cmd.Start(); err != nil {
		c.logger.Debug("speech unavailable", zap.String("command", c.path), zap.Error(err))
		cancel()
		return
	}

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		if err := cmd.Wait(); err != nil && ctx.Err() == nil {
			c.logger.Debug("speech command failed", zap.String("command", c.path), zap.Error(err))
		}
		cancel()
	}()
}

// Close stops any utterance in progress and waits for it to exit.
func (c *Command) Close() {
	c.mu.Lock()
	if c.cancel != nil {
		c.cancel()
	}
	c.mu.Unlock()
	c.wg.Wait()
}

// args builds the argument list for the known TTS programs.
func (c *Command) args(text string) []string {
	if c.rate <= 0 {
		return []string{text}
	}
	switch filepath.Base(c.path) {
	case "say":
		return []string{"-r", strconv.Itoa(c.rate), text}
	case "spd-say":
		// spd-say takes a relative rate in [-100, 100].
		return []string{"-r", strconv.Itoa(c.rate - 180), text}
	default:
		return []string{"-s", strconv.Itoa(c.rate), text}
	}
}

// Detect returns a Command speaker when speech is enabled and the configured
// program is installed, and Nop otherwise.
func Detect(cfg Config, logger *zap.Logger) Speaker {
	if logger == nil {
		logger = zap.NewNop()
	}
	if !cfg.Enabled || cfg.Command == "" {
		return Nop{}
	}
	path, err := exec.LookPath(cfg.Command)
	if err != nil {
		logger.Info("speech disabled: command not found", zap.String("command", cfg.Command))
		return Nop{}
	}
	return NewCommand(path, cfg.Rate, logger)
}

// Recorder is a Speaker that remembers what it was asked to say.
type Recorder struct {
	mu    sync.Mutex
	texts []string
}

func (r *Recorder) Speak(text string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.texts = append(r.texts, text)
}

// Texts returns a copy of everything spoken so far.
func (r *Recorder) Texts() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.texts))
	copy(out, r.texts)
	return out
}
