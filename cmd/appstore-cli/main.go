package main

import (
	"itunes-scraper/cmd/appstore-cli/commands"
	"itunes-scraper/lib/serviceutil"
	"itunes-scraper/lib/telemetry"
)

func main() {
	ctx := serviceutil.SignalContext()

	err := telemetry.SetupFromEnv(ctx, "appstore-cli")
	if err != nil {
		serviceutil.Fatal("failed to setup telemetry", err)
	}
	defer telemetry.Shutdown(ctx)

	commands.ExecuteContext(ctx)
}
