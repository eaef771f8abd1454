// Package main provides the CLI entrypoint for neontype.
package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/verte-zerg/neontype/internal/config"
	"github.com/verte-zerg/neontype/internal/generator"
	"github.com/verte-zerg/neontype/internal/logging"
	"github.com/verte-zerg/neontype/internal/model"
	"github.com/verte-zerg/neontype/internal/run"
	"github.com/verte-zerg/neontype/internal/settings"
	"github.com/verte-zerg/neontype/internal/stats"
	"github.com/verte-zerg/neontype/internal/store"
	"github.com/verte-zerg/neontype/internal/tui"
	"github.com/verte-zerg/neontype/internal/wordlist"
)

const (
	defaultDuration = 60
	defaultMode     = string(model.ModeTime)
	defaultWords    = 25
	defaultLogLevel = "info"
	defaultWidth    = 40
)

// practiceOptions holds the root command's flag values.
type practiceOptions struct {
	duration  int
	mode      string
	words     int
	text      string
	textFile  string
	wordsFile string
	accent    string
	logLevel  string
}

var practice practiceOptions

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "neontype",
		Short:         "Timed typing test in the terminal",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPracticeCmd,
	}

	rootCmd.Flags().IntVar(&practice.duration, "duration", defaultDuration, "test length in seconds")
	rootCmd.Flags().StringVar(&practice.mode, "mode", defaultMode, "text mode: "+modeNames())
	rootCmd.Flags().IntVar(&practice.words, "words", defaultWords, "words per text in words mode")
	rootCmd.Flags().StringVar(&practice.text, "text", "", "text for custom mode")
	rootCmd.Flags().StringVar(&practice.textFile, "text-file", "", "file with text for custom mode")
	rootCmd.Flags().StringVar(&practice.wordsFile, "words-file", "", "word list file, one word per line")
	rootCmd.Flags().StringVar(&practice.accent, "accent", "", "accent color for this session (#RRGGBB)")
	rootCmd.Flags().StringVar(&practice.logLevel, "log-level", defaultLogLevel, "log level (debug, info, warn, error)")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newModesCmd())
	rootCmd.AddCommand(newSettingsCmd())

	return rootCmd
}

func runPracticeCmd(cmd *cobra.Command, _ []string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("neontype needs an interactive terminal")
	}
	configPath := config.DefaultConfigPath()
	fileCfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	opts := practice.withFile(cmd, fileCfg)
	cfg, err := opts.testConfig()
	if err != nil {
		return err
	}

	log, err := logging.Init(config.DefaultLogDir(), opts.logLevel)
	if err != nil {
		return fmt.Errorf("failed to init logging: %w", err)
	}
	defer func() { _ = log.Sync() }()

	var words []string
	if opts.wordsFile != "" {
		words, err = wordlist.LoadWords(opts.wordsFile, wordlist.Typeable)
		if err != nil {
			return fmt.Errorf("failed to load word list: %w", err)
		}
	}
	gen := generator.New(generator.WithWords(words))

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()
	prefs := settings.New(st)
	if err := prefs.Load(cmd.Context()); err != nil {
		log.Warn("failed to load settings", zap.Error(err))
	}

	ctrl, err := run.New(cfg, gen, run.WithLogger(log))
	if err != nil {
		return err
	}
	var last *model.Result
	var lastTrace []float64
	ctrl.OnComplete(func(res model.Result) {
		last = &res
		lastTrace = ctrl.Trace()
	})

	m := tui.NewModel(ctrl, gen, prefs, tui.WithLogger(log), tui.WithBell(os.Stderr))
	program := tea.NewProgram(m, tea.WithAltScreen())

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	_, err = config.Watch(ctx, configPath, func(fc config.FileConfig) {
		next, err := practice.withFile(cmd, fc).testConfig()
		if err != nil {
			log.Warn("ignored config reload", zap.Error(err))
			return
		}
		program.Send(tui.ConfigMsg{Config: next})
	}, func(err error) {
		log.Warn("config watch error", zap.Error(err))
	})
	if err != nil {
		log.Info("config hot reload disabled", zap.Error(err))
	}

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	if last == nil {
		return nil
	}
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		width = defaultWidth
	}
	if width > 80 {
		width = 80
	}
	if err := stats.RenderResult(cmd.OutOrStdout(), *last, lastTrace, width-8); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	return nil
}

// withFile returns a copy of o with file values applied to every flag the
// user did not set.
func (o practiceOptions) withFile(cmd *cobra.Command, fc config.FileConfig) practiceOptions {
	applyIntConfig(cmd, "duration", &o.duration, fc.Test.Duration)
	applyStringConfig(cmd, "mode", &o.mode, fc.Test.Mode)
	applyIntConfig(cmd, "words", &o.words, fc.Test.Words)
	applyStringConfig(cmd, "text", &o.text, fc.Test.Text)
	applyStringConfig(cmd, "text-file", &o.textFile, fc.Test.TextFile)
	applyStringConfig(cmd, "words-file", &o.wordsFile, fc.Test.WordsFile)
	applyStringConfig(cmd, "log-level", &o.logLevel, fc.Log.Level)
	return o
}

// testConfig validates the options and builds the test configuration.
func (o practiceOptions) testConfig() (model.TestConfig, error) {
	mode, err := model.ParseMode(o.mode)
	if err != nil {
		return model.TestConfig{}, err
	}
	if o.duration < 0 {
		return model.TestConfig{}, fmt.Errorf("--duration must be >= 0")
	}
	text := o.text
	if o.textFile != "" {
		text, err = wordlist.LoadText(o.textFile)
		if err != nil {
			return model.TestConfig{}, fmt.Errorf("failed to load text: %w", err)
		}
	}
	accent := ""
	if o.accent != "" {
		check := settings.New(nil)
		if err := check.SetAccent(context.Background(), o.accent); err != nil {
			return model.TestConfig{}, err
		}
		accent = check.Accent()
	}
	cfg := model.TestConfig{
		Duration: time.Duration(o.duration) * time.Second,
		Mode:     mode,
		Words:    o.words,
		Text:     text,
		Accent:   accent,
	}
	if err := cfg.Validate(); err != nil {
		return model.TestConfig{}, err
	}
	return cfg, nil
}

func modeNames() string {
	names := make([]string, 0, len(model.Modes))
	for _, m := range model.Modes {
		names = append(names, string(m))
	}
	return strings.Join(names, ", ")
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := ensureConfigFile(path); err != nil {
		return err
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

// ensureConfigFile writes the commented template when path does not exist.
func ensureConfigFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}
	return nil
}

var modeDescriptions = map[model.Mode]string{
	model.ModeTime:    "random words until the countdown ends",
	model.ModeWords:   "a fixed number of words",
	model.ModeQuote:   "a short quote",
	model.ModeNumbers: "numbers only",
	model.ModeCustom:  "your own text (--text or --text-file)",
}

func newModesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "modes",
		Short: "List text modes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, m := range model.Modes {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%-8s %s\n", m, modeDescriptions[m]); err != nil {
					return fmt.Errorf("failed to write output: %w", err)
				}
			}
			return nil
		},
	}
}

func newSettingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show saved preferences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withSettings(cmd.Context(), func(prefs *settings.Settings) error {
				for _, key := range settings.Keys {
					value, err := prefs.Get(key)
					if err != nil {
						return err
					}
					if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%-9s %s\n", key, value); err != nil {
						return fmt.Errorf("failed to write output: %w", err)
					}
				}
				return nil
			})
		},
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "get <key>",
		Short: "Print one preference",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSettings(cmd.Context(), func(prefs *settings.Settings) error {
				value, err := prefs.Get(args[0])
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), value)
				return err
			})
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "set <key> <value>",
		Short: "Change one preference",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSettings(cmd.Context(), func(prefs *settings.Settings) error {
				return prefs.Set(cmd.Context(), args[0], args[1])
			})
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "reset",
		Short: "Restore default preferences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withSettings(cmd.Context(), func(prefs *settings.Settings) error {
				return prefs.Reset(cmd.Context())
			})
		},
	})
	return cmd
}

// settingsDBPath is replaced in tests.
var settingsDBPath = config.DefaultDBPath

func withSettings(ctx context.Context, fn func(*settings.Settings) error) error {
	st, err := store.Open(settingsDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()
	prefs := settings.New(st)
	if err := prefs.Load(ctx); err != nil {
		logErrf("%v\n", err)
	}
	return fn(prefs)
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# neontype configuration
# Uncomment a value to enable it. CLI flags override config values.
# Changes are picked up while neontype runs and apply at the next reset.

[test]
# duration = %d            # Test length in seconds
# mode = %q            # One of: %s
# words = %d               # Words per text in words mode
# text = ""                # Text for custom mode
# text-file = ""           # File with text for custom mode
# words-file = ""          # Word list, one word per line (read at startup)

[log]
# level = %q           # debug, info, warn or error
`,
		defaultDuration,
		defaultMode,
		modeNames(),
		defaultWords,
		defaultLogLevel,
	)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
