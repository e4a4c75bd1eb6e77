package commands

import (
	"fmt"
	"strconv"

	"itunes-scraper/lib/serviceutil"

	"github.com/spf13/cobra"
)

var similarResolve *bool

func init() {
	similarResolve = similarCmd.Flags().Bool("resolve", false, "Resolve ids into detail records.")
	rootCmd.AddCommand(similarCmd)
}

var similarCmd = &cobra.Command{
	Use:   "similar <app id>",
	Short: "List apps the storefront associates with a given app.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		appId, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			serviceutil.Fatal("invalid app id", err)
		}
		client := newClient()

		ids, err := client.SimilarAppIDs(cmd.Context(), appId)
		if err != nil {
			serviceutil.Fatal("similarity lookup failed", err)
		}
		if len(ids) == 0 {
			fmt.Println("no similar apps found")
			return
		}

		if !*similarResolve {
			for _, id := range ids {
				fmt.Println(id)
			}
			return
		}

		records, err := client.MultipleAppDetails(cmd.Context(), ids)
		if err != nil {
			serviceutil.Fatal("failed to resolve similar apps", err)
		}
		renderRecords(records)
	},
}
