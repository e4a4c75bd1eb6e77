package commands

import (
	"context"
	"fmt"
	"os"

	"itunes-scraper/lib/configutil"
	"itunes-scraper/lib/restyutil"
	"itunes-scraper/lib/scrapers/appstore"
	"itunes-scraper/lib/serviceutil"
	"itunes-scraper/lib/telemetry"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "appstore-cli",
	Short: "appstore-cli queries the iTunes App Store's public web endpoints.",
}

// Config carries the default storefront, flags override it per invocation.
type Config struct {
	Country  string `json:"country"`
	Language string `json:"language"`
}

var countryFlag *string
var languageFlag *string
var debugFlag *bool
var debugHttpFlag *string

func init() {
	countryFlag = rootCmd.PersistentFlags().String(
		"country", "", "Two-letter storefront country code.",
	)
	languageFlag = rootCmd.PersistentFlags().String(
		"lang", "", "Accept-Language value for localized endpoints.",
	)
	debugFlag = rootCmd.PersistentFlags().Bool(
		"debug", false, "Enable debug logging.",
	)
	debugHttpFlag = rootCmd.PersistentFlags().String(
		"debug-http", "", "Capture every request/response pair to this directory.",
	)
}

func newClient() *appstore.Client {
	cfg, err := configutil.ReadConfig[Config]("appstore.json5")
	if err != nil && !os.IsNotExist(err) {
		serviceutil.Fatal("failed to read config", err)
	}
	if *countryFlag != "" {
		cfg.Country = *countryFlag
	}
	if *languageFlag != "" {
		cfg.Language = *languageFlag
	}

	opts := appstore.ClientOptions{
		Country:  cfg.Country,
		Language: cfg.Language,
	}
	if *debugHttpFlag != "" {
		opts.DebugOutput = restyutil.NewFilesystemOutput(*debugHttpFlag)
	}

	client, err := appstore.NewClient(opts)
	if err != nil {
		serviceutil.Fatal("failed to initialize storefront client", err)
	}
	return client
}

func newTable() table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(os.Stdout)
	return t
}

func ExecuteContext(ctx context.Context) {
	cobra.OnInitialize(func() {
		telemetry.InitSlog(*debugFlag)
	})
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
