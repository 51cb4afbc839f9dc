package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"openheader.dev/pkg/openheader/internal/domain"
	m "openheader.dev/pkg/openheader/internal/model"
)

var editorFlag string

// openCmd represents the open command.
var openCmd = newOpenCmd()

func newOpenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "open <file>",
		Short: "Open the companion of a file in an editor",
		Long: `Launch the configured editor on the companion of the given file. Does
nothing when the file has no companion.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Open(cmd.Context(), domain.OpenArgs{
				Path:   m.Path(args[0]),
				Editor: viper.GetString(editorConfigKey),
			})
		},
	}

	configureOpenFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(openCmd)
}

func configureOpenFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&editorFlag, editorFlagName, "e", viper.GetString(editorConfigKey), "editor command used to open the companion")
	bindFlagToConfig(cmd.Flags().Lookup(editorFlagName), editorConfigKey)
}
