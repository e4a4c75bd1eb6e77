package commands

import (
	"strconv"

	"itunes-scraper/lib/serviceutil"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(developerCmd)
}

var developerCmd = &cobra.Command{
	Use:   "developer <developer id>",
	Short: "List every app attributed to a developer.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		developerId, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			serviceutil.Fatal("invalid developer id", err)
		}
		client := newClient()

		records, err := client.DeveloperApps(cmd.Context(), developerId)
		if err != nil {
			serviceutil.Fatal("developer lookup failed", err)
		}
		renderRecords(records)
	},
}
