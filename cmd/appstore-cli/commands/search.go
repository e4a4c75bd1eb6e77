package commands

import (
	"fmt"

	"itunes-scraper/lib/scrapers/appstore"
	"itunes-scraper/lib/serviceutil"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var searchNum *int
var searchPage *int
var searchIdsOnly *bool

func init() {
	searchNum = searchCmd.Flags().Int("num", 50, "Amount of results per page.")
	searchPage = searchCmd.Flags().Int("page", 1, "Amount of pages to return.")
	searchIdsOnly = searchCmd.Flags().Bool("ids-only", false, "Print app ids without resolving details.")
	rootCmd.AddCommand(searchCmd)
}

var searchCmd = &cobra.Command{
	Use:   "search <term>",
	Short: "Search the storefront for apps matching a term.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		client := newClient()

		ids, err := client.SearchAppIDs(cmd.Context(), args[0], *searchNum, *searchPage)
		if err != nil {
			serviceutil.Fatal("search failed", err)
		}

		if *searchIdsOnly {
			for _, id := range ids {
				fmt.Println(id)
			}
			return
		}

		records, err := client.MultipleAppDetails(cmd.Context(), ids)
		if err != nil {
			serviceutil.Fatal("failed to resolve search results", err)
		}
		renderRecords(records)
	},
}

func renderRecords(records []appstore.AppRecord) {
	t := newTable()
	t.AppendHeader(table.Row{"ID", "Name", "Developer", "Genre", "Price", "Rating"})
	for _, record := range records {
		t.AppendRow(table.Row{
			record.ID(),
			record.Name(),
			record.DeveloperName(),
			record.PrimaryGenre(),
			record.Price(),
			fmt.Sprintf("%.1f (%d)", record.AverageRating(), record.RatingCount()),
		})
	}
	t.Render()
}
