// Package cmd provides the root command and CLI setup for openheader.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"openheader.dev/pkg/openheader/internal/adapter"
	"openheader.dev/pkg/openheader/internal/controller"
	"openheader.dev/pkg/openheader/internal/domain"
	m "openheader.dev/pkg/openheader/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var launcher adapter.EditorLauncher
var resolver domain.CompanionResolver
var switcher domain.Switcher
var lister domain.PairLister
var workflow domain.Workflow
var ui controller.UI

// excludePatterns is a root-level flag that filters files for applicable commands.
var excludePatterns []string

var verboseFlag bool
var logFileFlag string

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	launcher = adapter.NewLocalEditorLauncher(os.Stdin, os.Stdout, os.Stderr)
	resolver = domain.NewCompanionResolver(fsAdapter)
	switcher = domain.NewSwitcher(resolver)
	lister = domain.NewPairLister(fsAdapter, resolver)
	workflow = domain.NewWorkflow(
		fsAdapter,
		launcher,
		ui,
		resolver,
		switcher,
		lister,
	)
}

const pathPatternsHelp = `Supports Go-style path patterns:
  - ./...          recursively scan current directory
  - ./src/...      recursively scan src directory
  - ./src ./inc    scan multiple directories`

const rootLongDescription = `Openheader switches between a C/C++ header and its implementation file.

The companion of foo.h is the first of foo.c, foo.C, foo.cpp, foo.CPP found in
the same directory; the companion of foo.c or foo.cpp is the first of foo.h,
foo.H, foo.hpp, foo.HPP. Extensions match regardless of case. Nothing is
searched outside the file's own directory.`

const listLongDescription = `List header and implementation files with their companions.

` + pathPatternsHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "openheader",
		Short:        "Switch between C/C++ headers and implementation files",
		Long:         rootLongDescription,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))

			if configErr != nil {
				slog.Error("Failed to load config", "error", configErr)
				return configErr
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

// newRootCmd builds a detached root command for tests.
func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringArrayVarP(&excludePatterns, excludeFlagName, "x", viper.GetStringSlice(excludeConfigKey), "exclude files matching regex (can be repeated)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(excludeFlagName), excludeConfigKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "log file path")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
