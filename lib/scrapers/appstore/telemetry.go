package appstore

import "itunes-scraper/lib/telemetry"

const tracerName = "itunes-scraper/lib/scrapers/appstore"

var tracer = telemetry.Tracer(tracerName)
