package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/govalues/penny"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var version = "dev"

// app holds the state shared by all commands of a single invocation.
type app struct {
	cfgFile string
	v       *viper.Viper
	log     zerolog.Logger
	out     io.Writer
	errOut  io.Writer
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{
		v:      viper.New(),
		log:    zerolog.Nop(),
		out:    out,
		errOut: errOut,
	}

	rootCmd := &cobra.Command{
		Use:   "penny",
		Short: "Leak-free arithmetic on monetary amounts",
		Long: `penny splits, allocates and rounds monetary amounts with exactly
2 digits after the decimal point, without ever losing or creating a cent.`,
		PersistentPreRunE: a.initConfig,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default: $HOME/.config/penny/config.yaml)")
	flags.String("parser", "numeric", "amount parser (numeric, accounting)")
	flags.StringP("output", "o", "text", "output format (text, json)")
	flags.String("log-level", "warn", "log level (debug, info, warn, error)")
	flags.String("log-format", "console", "log format (console, json)")

	// Bind flags to viper
	_ = a.v.BindPFlag("parser", flags.Lookup("parser"))
	_ = a.v.BindPFlag("output", flags.Lookup("output"))
	_ = a.v.BindPFlag("logging.level", flags.Lookup("log-level"))
	_ = a.v.BindPFlag("logging.format", flags.Lookup("log-format"))

	// Add commands
	rootCmd.AddCommand(splitCmd(a))
	rootCmd.AddCommand(allocateCmd(a))
	rootCmd.AddCommand(allocateMaxCmd(a))
	rootCmd.AddCommand(fractionCmd(a))
	rootCmd.AddCommand(mulCmd(a))
	rootCmd.AddCommand(addCmd(a))
	rootCmd.AddCommand(subCmd(a))
	rootCmd.AddCommand(roundCmd(a))
	rootCmd.AddCommand(versionCmd(a))

	return rootCmd
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx)
	cancel()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func (a *app) initConfig(_ *cobra.Command, _ []string) error {
	// Set up config file
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		a.v.AddConfigPath(filepath.Join(home, ".config", "penny"))
		a.v.SetConfigName("config")
		a.v.SetConfigType("yaml")
	}

	// Environment variables
	a.v.SetEnvPrefix("PENNY")
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	a.v.AutomaticEnv()

	// Read config file
	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found is OK, we'll use defaults
	}

	// Set up logging
	if err := a.setupLogging(); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}

	a.log.Debug().
		Str("config", a.v.ConfigFileUsed()).
		Str("parser", a.v.GetString("parser")).
		Str("output", a.v.GetString("output")).
		Msg("configuration loaded")

	return nil
}

func (a *app) setupLogging() error {
	level, err := zerolog.ParseLevel(a.v.GetString("logging.level"))
	if err != nil || level == zerolog.NoLevel {
		return fmt.Errorf("invalid log level: %s", a.v.GetString("logging.level"))
	}

	var w io.Writer
	switch format := a.v.GetString("logging.format"); format {
	case "console":
		w = zerolog.ConsoleWriter{Out: a.errOut, NoColor: true}
	case "json":
		w = a.errOut
	default:
		return fmt.Errorf("invalid log format: %s", format)
	}

	a.log = zerolog.New(w).Level(level).With().Timestamp().Logger()
	return nil
}

// parser returns the amount parser selected by configuration.
func (a *app) parser() (penny.Parser, error) {
	return penny.ParserByName(a.v.GetString("parser"))
}

func versionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			a.log.Info().Str("version", version).Msg("penny version")
			fmt.Fprintf(a.out, "penny %s\n", version)
		},
	}
}
