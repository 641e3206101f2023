package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/freshdeps/pkg/repository"
)

// reposCommand creates the repos command, which lists the repositories check
// would search, in search order.
func (c *CLI) reposCommand() *cobra.Command {
	var flags repoFlags

	cmd := &cobra.Command{
		Use:   "repos",
		Short: "List the repositories searched for newer versions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := flags.load(".")
			if err != nil {
				return err
			}
			repos, err := flags.repositories(file)
			if err != nil {
				return err
			}
			for _, r := range repos {
				fmt.Fprintln(cmd.OutOrStdout(), repository.Describe(r))
			}
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}
