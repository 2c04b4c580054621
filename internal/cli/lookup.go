package cli

import (
	"github.com/spf13/cobra"
)

func newLookupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lookup <region> <summoner>",
		Short: "Estimate how many hours a summoner has played",
		Long: `Look up a summoner on a region and estimate their total playtime
from champion mastery points.

The server requires a reCAPTCHA token; pass one with --captcha or PLAYTIME_CAPTCHA.`,
		Example: `  playtime lookup euw1 "Rookie" --captcha <token>
  playtime lookup kr "Hide on bush" -o json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := client.Lookup(args[0], args[1], cfg.Captcha)
			if err != nil {
				return err
			}

			newOutput(cmd).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&cfg.Captcha, "captcha", cfg.Captcha, "reCAPTCHA token (env: PLAYTIME_CAPTCHA)")

	return cmd
}
