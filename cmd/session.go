package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"openheader.dev/pkg/openheader/internal/domain"
)

var keybindingFlag string

// sessionCmd represents the session command.
var sessionCmd = newSessionCmd()

func newSessionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session [files...]",
		Short: "Browse files with the header/body switch bound to a key",
		Long: `Open the given files in a terminal session. Tab and shift+tab move
between open files and the configured key (ctrl+r by default) switches to the
companion of the current file, reusing its tab when it is already open.

Without a terminal the switch runs once and the resulting documents are printed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Session(cmd.Context(), domain.SessionArgs{
				Paths:      parsePaths(args),
				Keybinding: viper.GetString(keybindingConfigKey),
			})
		},
	}

	configureSessionFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(sessionCmd)
}

func configureSessionFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&keybindingFlag, keybindingFlagName, "k", viper.GetString(keybindingConfigKey), "key that switches to the companion file")
	bindFlagToConfig(cmd.Flags().Lookup(keybindingFlagName), keybindingConfigKey)
}
