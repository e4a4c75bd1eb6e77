package appstore

// Endpoints is the table of upstream storefront endpoints, one entry per
// query kind. It is kept as data rather than control flow so a new query
// variant only needs a new entry plus a response mapping, and so tests can
// point the client at a local server.
type Endpoints struct {
	// MZStore search. Responds with a JSON object holding a "bubbles"
	// container of result lists.
	Search string
	// Lookup by track id, bundle id or developer id. Responds with a JSON
	// object holding "resultCount" and "results".
	Lookup string
	// Collection charts. Responds with an RSS-over-JSON feed under "feed".
	Feed string
	// Public storefront app page. Responds with HTML carrying JSON blobs
	// embedded in script tags, see SimilarAppIDs.
	Page string
}

func DefaultEndpoints() Endpoints {
	return Endpoints{
		Search: "https://search.itunes.apple.com/WebObjects/MZStore.woa/wa/search",
		Lookup: "https://itunes.apple.com/lookup",
		Feed:   "http://ax.itunes.apple.com/WebObjects/MZStoreServices.woa/ws/RSS",
		Page:   "https://itunes.apple.com/us/app/app",
	}
}
