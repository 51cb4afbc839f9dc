package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"openheader.dev/pkg/openheader/internal/domain"
)

var listParallelFlag int

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [paths...]",
		Short: "List headers and implementation files with their companions",
		Long:  listLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.List(cmd.Context(), domain.ListArgs{
				Paths:    parsePaths(args),
				Exclude:  viper.GetStringSlice(excludeConfigKey),
				Parallel: viper.GetInt(listParallelConfigKey),
			})
		},
	}

	configureListFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func configureListFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&listParallelFlag, listParallelFlagName, "p", viper.GetInt(listParallelConfigKey), "number of files resolved concurrently")
	bindFlagToConfig(cmd.Flags().Lookup(listParallelFlagName), listParallelConfigKey)
}
