// Package cmd implements the robocheck command line.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"runtime"
	"slices"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/chazu/robocheck/pkg/check"
	"github.com/chazu/robocheck/pkg/config"
	"github.com/chazu/robocheck/pkg/lexer"
	"github.com/chazu/robocheck/pkg/parser"
)

var (
	Version   = "0.1.0"
	GitCommit = "development"
	BuildDate = "unknown"
)

// ErrInvalid is returned when a program has at least one invalid line.
var ErrInvalid = errors.New("program has syntax errors")

func newLogger(w io.Writer, debug bool) *logrus.Logger {
	log := logrus.New()
	log.Out = w
	log.Formatter = &logrus.TextFormatter{DisableTimestamp: true}
	log.Level = logrus.WarnLevel
	if debug {
		log.Level = logrus.DebugLevel
	}
	return log
}

// loadConfig merges the config file, the environment and any flags the
// user set explicitly.
func loadConfig(cmd *cobra.Command) (config.Config, *logrus.Logger, error) {
	flags := cmd.Flags()
	verbose, _ := flags.GetBool("verbose")
	path, _ := flags.GetString("config")

	log := newLogger(cmd.ErrOrStderr(), verbose)
	cfg, err := config.Load(path, log)
	if err != nil {
		return cfg, log, err
	}

	if flags.Changed("color") {
		cfg.Color, _ = flags.GetBool("color")
	}
	if flags.Changed("json") {
		cfg.JSON, _ = flags.GetBool("json")
	}
	if flags.Changed("jobs") {
		cfg.Jobs, _ = flags.GetInt("jobs")
	}
	if flags.Changed("history") {
		cfg.History, _ = flags.GetString("history")
	}
	if verbose || cfg.Debug {
		log.Level = logrus.DebugLevel
	}
	if err := cfg.Validate(); err != nil {
		return cfg, log, err
	}
	log.WithField("config", fmt.Sprintf("%+v", cfg)).Debug("loaded configuration")
	return cfg, log, nil
}

func CheckHandler(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	sum, err := check.RunFile(cmd.Context(), args[0], cmd.OutOrStdout(), check.Options{
		Jobs:         cfg.Jobs,
		MaxLineBytes: cfg.MaxLineBytes,
		MaxSentence:  cfg.MaxSentence,
		Color:        cfg.Color,
		JSON:         cfg.JSON,
		Logger:       log,
	})
	if sum != nil && cfg.History != "" {
		if id, herr := recordRun(cfg.History, sum); herr != nil {
			log.WithError(herr).Warn("failed to record run")
		} else {
			log.WithField("run", id).Debug("recorded run")
		}
	}
	if err != nil {
		return err
	}
	if !sum.OK() {
		return fmt.Errorf("%s: %d of %d lines invalid: %w", sum.File, sum.Invalid, sum.Lines, ErrInvalid)
	}
	return nil
}

func TokensHandler(cmd *cobra.Command, args []string) error {
	line := args[0]
	out := cmd.OutOrStdout()

	tokens, err := lexer.New(line).TokenizeJSON()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "tokens:   %s\n", tokens)

	sentence, err := parser.NewChecker().Sentence(line)
	if err != nil {
		return err
	}
	grouped := parser.Group(sentence)
	fmt.Fprintf(out, "sentence: %s\n", sentence)
	fmt.Fprintf(out, "grouped:  %s\n", grouped)
	return parser.Match(grouped)
}

func VersionHandler(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "robocheck v%s\n", Version)
	fmt.Fprintf(out, "  Git Commit: %s\n", GitCommit)
	fmt.Fprintf(out, "  Build Date: %s\n", BuildDate)
	fmt.Fprintf(out, "  Go Version: %s\n", runtime.Version())
	fmt.Fprintf(out, "  OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
}

// envHelp lists the environment variables the configuration reads.
func envHelp() string {
	vars := config.Default().AsMap()
	names := slices.Sorted(maps.Keys(vars))

	var sb strings.Builder
	sb.WriteString("Environment:")
	for _, name := range names {
		fmt.Fprintf(&sb, "\n  %-26s%s", name, vars[name].Description)
	}
	return sb.String()
}

func NewCLI() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "robocheck FILE",
		Short: "Check a robot program line by line",
		Long: fmt.Sprintf(`robocheck v%s

Checks every line of a robot program and reports the first syntax error on
each invalid line, marked with ***.

%s`, Version, envHelp()),
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Disable usage printing on errors
			cmd.SilenceUsage = true
		},
		RunE: CheckHandler,
	}

	rootCmd.PersistentFlags().String("config", "", "TOML config file")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Show debug logging")
	rootCmd.PersistentFlags().String("history", "", "Record runs in this SQLite database")
	rootCmd.Flags().Bool("color", false, "Colour the error marker")
	rootCmd.Flags().Bool("json", false, "Print a JSON report instead of text")
	rootCmd.Flags().IntP("jobs", "j", 0, "Lines validated in parallel (default GOMAXPROCS)")

	rootCmd.Version = Version
	rootCmd.SetUsageTemplate(fmt.Sprintf("robocheck v%s\n\n", Version) + rootCmd.UsageTemplate())

	cobra.EnableCommandSorting = false

	tokensCmd := &cobra.Command{
		Use:   "tokens LINE",
		Short: "Show how a line is tokenized and classified",
		Args:  cobra.ExactArgs(1),
		RunE:  TokensHandler,
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Show the version",
		Args:  cobra.NoArgs,
		Run:   VersionHandler,
	}

	rootCmd.AddCommand(tokensCmd, NewHistoryCmd(), versionCmd)
	return rootCmd
}
