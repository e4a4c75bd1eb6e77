package commands

import (
	"errors"
	"log/slog"
	"strconv"
	"time"

	"itunes-scraper/lib/serviceutil"
	"itunes-scraper/lib/telemetry"
	"itunes-scraper/pkg/appdb"

	"github.com/spf13/cobra"
)

var exportDb *string
var exportTerm *string

func init() {
	exportDb = exportCmd.Flags().String("db", "results.db", "The database to write app records to.")
	exportTerm = exportCmd.Flags().String("term", "", "Search term to resolve into app ids first.")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export [--db <path/to/output.db>] [--term <search term>] [app id]...",
	Short: "Fetches app details and writes them to a database.",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		telemetry.InstrumentPerfStats(ctx)

		client := newClient()

		var ids []int64
		for _, arg := range args {
			id, err := strconv.ParseInt(arg, 10, 64)
			if err != nil {
				serviceutil.Fatal("invalid app id", err)
			}
			ids = append(ids, id)
		}
		if *exportTerm != "" {
			found, err := client.SearchAppIDs(ctx, *exportTerm, 0, 0)
			if err != nil {
				serviceutil.Fatal("search failed", err)
			}
			ids = append(ids, found...)
		}
		if len(ids) == 0 {
			serviceutil.Fatal("nothing to export", errors.New("no app ids given"))
		}

		t1 := time.Now()
		records, err := client.MultipleAppDetails(ctx, ids)
		if err != nil {
			serviceutil.Fatal("lookup failed", err)
		}

		out, err := appdb.OpenDB(*exportDb)
		if err != nil {
			serviceutil.Fatal("failed to open db", err)
		}
		store := appdb.NewStore(out)

		err = store.SaveApps(ctx, client.Country(), records)
		if err != nil {
			// Fatal exits the process, close first so the WAL sidecars
			// are checkpointed away
			out.Close()
			serviceutil.Fatal("failed to write records", err)
		}
		if err := out.Close(); err != nil {
			serviceutil.Fatal("failed to close db", err)
		}
		t2 := time.Now()

		slog.Info(
			"export finished",
			"requested", len(ids),
			"resolved", len(records),
			"seconds", t2.Sub(t1).Seconds(),
		)
	},
}
