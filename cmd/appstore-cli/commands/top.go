package commands

import (
	"fmt"

	"itunes-scraper/lib/scrapers/appstore"
	"itunes-scraper/lib/serviceutil"

	"github.com/spf13/cobra"
)

var topCollection *string
var topCategory *int
var topNum *int
var topIdsOnly *bool

func init() {
	topCollection = topCmd.Flags().String(
		"collection", appstore.CollectionTopFreeIOS, "Named collection to chart.",
	)
	topCategory = topCmd.Flags().Int("category", 0, "Genre id to filter by, 0 means all.")
	topNum = topCmd.Flags().Int("num", 50, "Amount of results to return.")
	topIdsOnly = topCmd.Flags().Bool("ids-only", false, "Print app ids without resolving details.")
	rootCmd.AddCommand(topCmd)
}

var topCmd = &cobra.Command{
	Use:   "top [--collection <name>] [--category <genre id>]",
	Short: "List the apps currently charting in a collection.",
	Run: func(cmd *cobra.Command, args []string) {
		client := newClient()

		ids, err := client.CollectionAppIDs(cmd.Context(), appstore.CollectionQuery{
			Collection: *topCollection,
			Category:   *topCategory,
			Num:        *topNum,
		})
		if err != nil {
			serviceutil.Fatal("collection lookup failed", err)
		}

		if *topIdsOnly {
			for _, id := range ids {
				fmt.Println(id)
			}
			return
		}

		records, err := client.MultipleAppDetails(cmd.Context(), ids)
		if err != nil {
			serviceutil.Fatal("failed to resolve charting apps", err)
		}
		renderRecords(records)
	},
}
