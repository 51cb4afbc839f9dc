package cmd

import (
	"github.com/spf13/cobra"

	"openheader.dev/pkg/openheader/internal/domain"
	m "openheader.dev/pkg/openheader/internal/model"
)

// resolveCmd represents the resolve command.
var resolveCmd = newResolveCmd()

func newResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <file>",
		Short: "Print the companion of a header or implementation file",
		Long: `Print the path of the companion file. Nothing is printed and the exit
status is zero when the file has no companion.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Resolve(cmd.Context(), domain.ResolveArgs{
				Path: m.Path(args[0]),
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}
