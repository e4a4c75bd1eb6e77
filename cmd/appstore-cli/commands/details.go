package commands

import (
	"fmt"
	"sort"
	"strconv"

	"itunes-scraper/lib/scrapers/appstore"
	"itunes-scraper/lib/serviceutil"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(detailsCmd)
}

var detailsCmd = &cobra.Command{
	Use:   "details <app id or bundle id>...",
	Short: "Print detail records for one or more apps.",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		client := newClient()

		var trackIds []int64
		var bundleIds []string
		for _, arg := range args {
			id, err := strconv.ParseInt(arg, 10, 64)
			if err != nil {
				bundleIds = append(bundleIds, arg)
				continue
			}
			trackIds = append(trackIds, id)
		}

		var records []appstore.AppRecord
		if len(trackIds) == 1 && len(bundleIds) == 0 {
			record, err := client.AppDetails(cmd.Context(), trackIds[0])
			if err != nil {
				serviceutil.Fatal("lookup failed", err)
			}
			if record == nil {
				fmt.Printf("no app found with id %d\n", trackIds[0])
				return
			}
			renderFlattened(record)
			return
		}

		if len(trackIds) > 0 {
			batch, err := client.MultipleAppDetails(cmd.Context(), trackIds)
			if err != nil {
				serviceutil.Fatal("lookup failed", err)
			}
			records = append(records, batch...)
		}
		for _, bundleId := range bundleIds {
			record, err := client.AppDetailsByBundleID(cmd.Context(), bundleId)
			if err != nil {
				serviceutil.Fatal("lookup failed", err)
			}
			if record == nil {
				continue
			}
			records = append(records, record)
		}

		renderRecords(records)
	},
}

func renderFlattened(record appstore.AppRecord) {
	flat := record.Flatten()
	keys := make([]string, 0, len(flat))
	for key := range flat {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	t := newTable()
	t.AppendHeader(table.Row{"Field", "Value"})
	for _, key := range keys {
		t.AppendRow(table.Row{key, flat[key]})
	}
	t.Render()
}
