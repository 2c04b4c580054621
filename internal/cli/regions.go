package cli

import (
	"github.com/spf13/cobra"
)

func newRegionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "regions",
		Short: "List the regions a summoner can be looked up on",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result RegionsResult

			if err := client.Get("/api/regions", nil, &result); err != nil {
				return err
			}

			newOutput(cmd).Print(result)
			return nil
		},
	}
}
