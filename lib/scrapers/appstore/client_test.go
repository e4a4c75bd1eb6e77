package appstore

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"itunes-scraper/lib/telemetry"

	"github.com/stretchr/testify/require"
)

const lookupFixture = `{
	"resultCount": 2,
	"results": [
		{
			"wrapperType": "software",
			"trackId": 493145008,
			"trackName": "Mindful Minutes",
			"bundleId": "com.example.mindful",
			"artistId": 384434796,
			"artistName": "Calm Labs",
			"price": 0,
			"primaryGenreName": "Health & Fitness",
			"averageUserRating": 4.5,
			"userRatingCount": 1024,
			"genres": ["Health & Fitness", "Lifestyle"],
			"genreIds": ["6013", "6012"],
			"version": "3.2.1",
			"description": "Short guided breathing sessions."
		},
		{
			"wrapperType": "software",
			"trackId": 529479190,
			"trackName": "Deep Focus",
			"bundleId": "com.example.focus",
			"artistId": 384434796,
			"artistName": "Calm Labs",
			"price": 1.99,
			"version": "1.0.4"
		}
	]
}`

const developerFixture = `{
	"resultCount": 3,
	"results": [
		{
			"wrapperType": "artist",
			"artistId": 384434796,
			"artistName": "Calm Labs"
		},
		{
			"wrapperType": "software",
			"trackId": 493145008,
			"trackName": "Mindful Minutes",
			"artistId": 384434796,
			"artistName": "Calm Labs"
		},
		{
			"wrapperType": "software",
			"trackId": 529479190,
			"trackName": "Deep Focus",
			"artistId": 384434796,
			"artistName": "Calm Labs"
		}
	]
}`

const similarPageFixture = `<html><head>
<script type="text/javascript">
its.serverData = {"pageData": {"customersAlsoBoughtApps":[361309726,361285480,529479190]}};
</script>
</head><body></body></html>`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	cleanup := telemetry.SetupForTesting("test:appstore")
	t.Cleanup(cleanup)

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	endpoints := Endpoints{
		Search: server.URL + "/search",
		Lookup: server.URL + "/lookup",
		Feed:   server.URL + "/rss",
		Page:   server.URL + "/app",
	}
	client, err := NewClient(ClientOptions{
		Country:   "gb",
		Language:  "en",
		Endpoints: &endpoints,
	})
	require.NoError(t, err)
	return client
}

// checks inside the handler use t.Errorf, FailNow is not safe outside
// the test goroutine
func checkEqual(t *testing.T, what, expected, got string) {
	if expected != got {
		t.Errorf("expected %s %q, got %q", what, expected, got)
	}
}

func storefrontHandler(t *testing.T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/search":
			checkEqual(t, "storefront header", "143444,24 t:native", r.Header.Get("X-Apple-Store-Front"))
			checkEqual(t, "language header", "en", r.Header.Get("Accept-Language"))
			checkEqual(t, "media param", "software", r.URL.Query().Get("media"))
			fmt.Fprint(w, `{"bubbles":[{"results":[
				{"id":10},{"id":11},{"id":11},{"id":12},{"id":13},{"id":14}
			]}]}`)

		case r.URL.Path == "/lookup":
			checkEqual(t, "country param", "gb", r.URL.Query().Get("country"))
			checkEqual(t, "entity param", "software", r.URL.Query().Get("entity"))
			if bundle := r.URL.Query().Get("bundleId"); bundle != "" {
				if bundle == "com.example.mindful" {
					fmt.Fprint(w, lookupFixture)
				} else {
					fmt.Fprint(w, `{"resultCount": 0, "results": []}`)
				}
				return
			}
			switch r.URL.Query().Get("id") {
			case "493145008":
				fmt.Fprint(w, lookupFixture)
			case "384434796":
				fmt.Fprint(w, developerFixture)
			case "872":
				// unknown ids come back as an empty result set
				fmt.Fprint(w, `{"resultCount": 0, "results": []}`)
			case "999999":
				// unknown developer ids omit the container entirely
				fmt.Fprint(w, `{}`)
			case "493145008,872,529479190":
				fmt.Fprint(w, lookupFixture)
			default:
				t.Errorf("unexpected lookup id %q", r.URL.Query().Get("id"))
			}

		case strings.HasPrefix(r.URL.Path, "/rss/"):
			checkEqual(t, "feed path", "/rss/topfreeapplications//limit=3/json", r.URL.Path)
			checkEqual(t, "storefront param", "143444", r.URL.Query().Get("s"))
			fmt.Fprint(w, `{"feed":{"entry":[
				{"id":{"attributes":{"im:id":"361309726"}}},
				{"id":{"attributes":{"im:id":"361285480"}}},
				{"id":{"attributes":{"im:id":"529479190"}}}
			]}}`)

		case strings.HasPrefix(r.URL.Path, "/app/id"):
			checkEqual(t, "storefront header", "143444,32", r.Header.Get("X-Apple-Store-Front"))
			fmt.Fprint(w, similarPageFixture)

		default:
			t.Errorf("unexpected path %q", r.URL.Path)
		}
	}
}

func TestSearchAppIDs(t *testing.T) {
	client := newTestClient(t, storefrontHandler(t))

	ids, err := client.SearchAppIDs(context.Background(), "mindful", 3, 1)
	require.NoError(t, err)
	require.Equal(t, []int64{10, 11, 12}, ids)

	seen := map[int64]bool{}
	for _, id := range ids {
		require.False(t, seen[id])
		seen[id] = true
	}
}

func TestSearchAppIDsEmptyTerm(t *testing.T) {
	client := newTestClient(t, storefrontHandler(t))

	_, err := client.SearchAppIDs(context.Background(), "", 50, 1)
	require.Error(t, err)
}

func TestAppDetails(t *testing.T) {
	client := newTestClient(t, storefrontHandler(t))

	record, err := client.AppDetails(context.Background(), 493145008)
	require.NoError(t, err)
	require.NotNil(t, record)
	require.Equal(t, int64(493145008), record.ID())
	require.NotEmpty(t, record.Name())
}

func TestAppDetailsNotFound(t *testing.T) {
	client := newTestClient(t, storefrontHandler(t))

	record, err := client.AppDetails(context.Background(), 872)
	require.NoError(t, err)
	require.Nil(t, record)
}

func TestAppDetailsByBundleID(t *testing.T) {
	client := newTestClient(t, storefrontHandler(t))

	record, err := client.AppDetailsByBundleID(context.Background(), "com.example.mindful")
	require.NoError(t, err)
	require.NotNil(t, record)
	require.Equal(t, int64(493145008), record.ID())
	require.Equal(t, "com.example.mindful", record.BundleID())

	record, err = client.AppDetailsByBundleID(context.Background(), "com.example.gone")
	require.NoError(t, err)
	require.Nil(t, record)
}

func TestMultipleAppDetails(t *testing.T) {
	client := newTestClient(t, storefrontHandler(t))

	input := []int64{493145008, 872, 529479190}
	records, err := client.MultipleAppDetails(context.Background(), input)
	require.NoError(t, err)
	require.LessOrEqual(t, len(records), len(input))

	want := map[int64]bool{}
	for _, id := range input {
		want[id] = true
	}
	for _, record := range records {
		require.True(t, want[record.ID()], "record id %d was never asked for", record.ID())
	}
	require.Len(t, records, 2)
}

func TestDeveloperApps(t *testing.T) {
	client := newTestClient(t, storefrontHandler(t))

	records, err := client.DeveloperApps(context.Background(), 384434796)
	require.NoError(t, err)
	require.NotEmpty(t, records)
	for _, record := range records {
		require.Equal(t, "software", record.WrapperType())
		require.Equal(t, int64(384434796), record.DeveloperID())
	}

	ids, err := client.DeveloperAppIDs(context.Background(), 384434796)
	require.NoError(t, err)
	require.Len(t, ids, len(records))
}

func TestDeveloperAppsUnknownID(t *testing.T) {
	client := newTestClient(t, storefrontHandler(t))

	records, err := client.DeveloperApps(context.Background(), 999999)
	require.NoError(t, err)
	require.Empty(t, records)
}

func TestCollectionAppIDs(t *testing.T) {
	client := newTestClient(t, storefrontHandler(t))

	ids, err := client.CollectionAppIDs(context.Background(), CollectionQuery{
		Collection: CollectionTopFreeIOS,
		Num:        3,
	})
	require.NoError(t, err)
	require.Equal(t, []int64{361309726, 361285480, 529479190}, ids)
}

func TestCollectionMissingFeed(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"something": "else"}`)
	})

	_, err := client.CollectionAppIDs(context.Background(), CollectionQuery{Num: 3})
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestCollectionNoEntries(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"feed": {"title": "Top Free Applications"}}`)
	})

	ids, err := client.CollectionAppIDs(context.Background(), CollectionQuery{Num: 3})
	require.NoError(t, err)
	require.Empty(t, ids)
}

func TestSimilarAppIDs(t *testing.T) {
	client := newTestClient(t, storefrontHandler(t))

	ids, err := client.SimilarAppIDs(context.Background(), 842)
	require.NoError(t, err)
	require.NotEmpty(t, ids)
	for _, id := range ids {
		require.NotEqual(t, int64(842), id)
	}
}

func TestSimilarAppIDsNoBlob(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><head><script>var unrelated = 1;</script></head></html>`)
	})

	ids, err := client.SimilarAppIDs(context.Background(), 842)
	require.NoError(t, err)
	require.Empty(t, ids)
}

func TestSimilarAppIDsMalformedBlob(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><head><script>{"customersAlsoBoughtApps": [1,,2]}</script></head></html>`)
	})

	_, err := client.SimilarAppIDs(context.Background(), 842)
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestFetchErrorOnStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.AppDetails(context.Background(), 493145008)
	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	require.Equal(t, http.StatusInternalServerError, fetchErr.StatusCode)
}

func TestParseErrorOnBadJSON(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<!DOCTYPE html><html>not json</html>`)
	})

	_, err := client.SearchAppIDs(context.Background(), "mindful", 50, 1)
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestSearchMissingBubbles(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"something": "else"}`)
	})

	_, err := client.SearchAppIDs(context.Background(), "mindful", 50, 1)
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestUnknownCountry(t *testing.T) {
	_, err := NewClient(ClientOptions{Country: "xz"})
	require.Error(t, err)
}
