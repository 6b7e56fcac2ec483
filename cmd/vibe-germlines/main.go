// Package main provides the vibe-germlines command-line tool.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Exit codes
const (
	ExitSuccess = 0
	ExitError   = 1
)

// Version information (set at build time)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const configName = ".vibe-germlines"

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitError
	}
	return ExitSuccess
}

// app carries the configuration and logger shared by all subcommands.
type app struct {
	v       *viper.Viper
	cfgFile string
	logger  *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "vibe-germlines",
		Short: "Immunoglobulin germline database built from IMGT LIGM-DB",
		Long: `vibe-germlines parses IMGT LIGM-DB flat files into per-species databases of
annotated immunoglobulin germline amino-acid sequences, and queries them.`,
		Example: `  # Build the database (one-time setup)
  vibe-germlines build imgt.dat.gz

  # Human heavy chain V genes, first allele only
  vibe-germlines query --species human --chain H --segment V

  # One allele as FASTA
  vibe-germlines get human 'IGHV1-2*02' --format fasta`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.initConfig(); err != nil {
				return err
			}
			return a.initLogger()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default ~/"+configName+".yaml)")
	flags.String("data-dir", "", "database directory (default ~/.vibe-germlines/db)")
	flags.BoolP("verbose", "v", false, "verbose development logging")
	_ = a.v.BindPFlag("data_dir", flags.Lookup("data-dir"))
	_ = a.v.BindPFlag("log.verbose", flags.Lookup("verbose"))

	root.AddCommand(
		newBuildCmd(a),
		newQueryCmd(a),
		newGetCmd(a),
		newSummaryCmd(a),
		newExportCmd(a),
		newConfigCmd(a),
		newVersionCmd(),
	)
	return root
}

// initConfig reads the config file and environment. A missing config file
// is not an error.
func (a *app) initConfig() error {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}

	a.v.SetDefault("data_dir", filepath.Join(home, ".vibe-germlines", "db"))
	a.v.SetDefault("build.workers", 0)
	a.v.SetDefault("build.d_genes", false)
	a.v.SetDefault("build.report", "")
	a.v.SetDefault("log.verbose", false)

	a.v.SetEnvPrefix("VIBE_GERMLINES")
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	a.v.AutomaticEnv()

	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		a.v.SetConfigName(configName)
		a.v.SetConfigType("yaml")
		a.v.AddConfigPath(home)
	}

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("reading config: %w", err)
	}
	return nil
}

func (a *app) initLogger() error {
	var (
		l   *zap.Logger
		err error
	)
	if a.v.GetBool("log.verbose") {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	a.logger = l
	return nil
}

// dataDir returns the database directory with a leading ~ expanded.
func (a *app) dataDir() string {
	dir := a.v.GetString("data_dir")
	if rest, ok := strings.CutPrefix(dir, "~/"); ok {
		if home, err := os.UserHomeDir(); err == nil {
			dir = filepath.Join(home, rest)
		}
	}
	return dir
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "vibe-germlines version %s (%s) built %s\n", version, commit, date)
		},
	}
}
