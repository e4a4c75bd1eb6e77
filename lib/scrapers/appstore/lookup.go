package appstore

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel/codes"
)

type lookupResponse struct {
	Results []AppRecord `json:"results"`
}

// lookup performs a single GET against the lookup endpoint. A response
// without a "results" container is treated as an empty result set, that is
// how the upstream reports ids it does not know.
func (c *Client) lookup(ctx context.Context, query url.Values) ([]AppRecord, error) {
	query.Set("country", c.country)
	query.Set("entity", "software")
	link := c.endpoints.Lookup + "?" + query.Encode()

	res, err := c.get(ctx, link, nil)
	if err != nil {
		return nil, err
	}

	var body lookupResponse
	if err := json.Unmarshal(res.Body(), &body); err != nil {
		return nil, &ParseError{URL: link, Err: err}
	}
	return body.Results, nil
}

// AppDetails fetches the detail record for a numeric track id. A nil record
// with a nil error means the store has no app with this id, callers must
// treat that as "not found" rather than a failure.
func (c *Client) AppDetails(ctx context.Context, appID int64) (AppRecord, error) {
	ctx, span := tracer.Start(ctx, "client:AppDetails")
	defer span.End()

	records, err := c.lookup(ctx, url.Values{
		"id": {strconv.FormatInt(appID, 10)},
	})
	if err != nil {
		span.SetStatus(codes.Error, "failed to look up app")
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}
	return records[0], nil
}

// AppDetailsByBundleID is AppDetails for the textual bundle id form.
func (c *Client) AppDetailsByBundleID(ctx context.Context, bundleID string) (AppRecord, error) {
	ctx, span := tracer.Start(ctx, "client:AppDetailsByBundleID")
	defer span.End()

	records, err := c.lookup(ctx, url.Values{
		"bundleId": {bundleID},
	})
	if err != nil {
		span.SetStatus(codes.Error, "failed to look up app")
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}
	return records[0], nil
}

// MultipleAppDetails resolves many track ids with a single lookup call.
// The endpoint silently drops ids it cannot resolve, so the result may be
// shorter than the input. Records are correlated by id, never by position,
// and a record whose id was not asked for is discarded.
func (c *Client) MultipleAppDetails(ctx context.Context, appIDs []int64) ([]AppRecord, error) {
	ctx, span := tracer.Start(ctx, "client:MultipleAppDetails")
	defer span.End()

	if len(appIDs) == 0 {
		return nil, nil
	}

	joined := make([]string, len(appIDs))
	want := make(map[int64]bool, len(appIDs))
	for i, id := range appIDs {
		joined[i] = strconv.FormatInt(id, 10)
		want[id] = true
	}

	records, err := c.lookup(ctx, url.Values{
		"id": {strings.Join(joined, ",")},
	})
	if err != nil {
		span.SetStatus(codes.Error, "failed to look up apps")
		return nil, err
	}

	seen := map[int64]bool{}
	var out []AppRecord
	for _, record := range records {
		id := record.ID()
		if !want[id] || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, record)
	}
	return out, nil
}

// DeveloperApps returns every software record attributed to a developer.
// The result count legitimately drifts over time as the upstream catalog
// changes. An unknown developer id yields an empty result, the upstream
// omits the results container instead of reporting an error.
func (c *Client) DeveloperApps(ctx context.Context, developerID int64) ([]AppRecord, error) {
	ctx, span := tracer.Start(ctx, "client:DeveloperApps")
	defer span.End()

	records, err := c.lookup(ctx, url.Values{
		"id": {strconv.FormatInt(developerID, 10)},
	})
	if err != nil {
		span.SetStatus(codes.Error, "failed to look up developer")
		return nil, err
	}

	// the lookup includes the artist record itself, only keep apps
	var out []AppRecord
	for _, record := range records {
		if record.WrapperType() != "software" {
			continue
		}
		out = append(out, record)
	}
	return out, nil
}

// DeveloperAppIDs returns just the track ids of DeveloperApps.
func (c *Client) DeveloperAppIDs(ctx context.Context, developerID int64) ([]int64, error) {
	records, err := c.DeveloperApps(ctx, developerID)
	if err != nil {
		return nil, err
	}
	ids := make([]int64, len(records))
	for i, record := range records {
		ids[i] = record.ID()
	}
	return ids, nil
}
