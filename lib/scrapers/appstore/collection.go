package appstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"go.opentelemetry.io/otel/codes"
)

type CollectionQuery struct {
	// One of the Collection... constants. Defaults to CollectionTopFreeIOS.
	Collection string
	// Optional Category... genre id, zero means every genre.
	Category int
	// Amount of results to ask the feed for. Defaults to 50.
	Num int
}

type feedEntry struct {
	ID struct {
		Attributes struct {
			ID string `json:"im:id"`
		} `json:"attributes"`
	} `json:"id"`
}

type feedResponse struct {
	Feed *struct {
		Entry []feedEntry `json:"entry"`
	} `json:"feed"`
}

// CollectionAppIDs returns the app ids currently charting in a named
// collection, e.g. the top free iOS apps of a genre.
func (c *Client) CollectionAppIDs(ctx context.Context, query CollectionQuery) ([]int64, error) {
	ctx, span := tracer.Start(ctx, "client:CollectionAppIDs")
	defer span.End()

	if query.Collection == "" {
		query.Collection = CollectionTopFreeIOS
	}
	if query.Num <= 0 {
		query.Num = defaultPageSize
	}
	category := ""
	if query.Category != 0 {
		category = strconv.Itoa(query.Category)
	}

	// the empty category segment is intentional, the feed accepts it
	link := fmt.Sprintf(
		"%s/%s/%s/limit=%d/json?s=%d",
		c.endpoints.Feed,
		query.Collection,
		category,
		query.Num,
		c.storefront,
	)
	res, err := c.get(ctx, link, nil)
	if err != nil {
		span.SetStatus(codes.Error, "failed to fetch collection feed")
		return nil, err
	}

	var body feedResponse
	if err := json.Unmarshal(res.Body(), &body); err != nil {
		span.SetStatus(codes.Error, "failed to parse collection feed")
		return nil, &ParseError{URL: link, Err: err}
	}
	if body.Feed == nil {
		span.SetStatus(codes.Error, "missing feed container")
		return nil, &ParseError{URL: link, Err: errors.New("missing feed container")}
	}

	// a feed with no entries omits the list entirely, that is a valid
	// zero-result answer
	var ids []int64
	for _, entry := range body.Feed.Entry {
		id, err := strconv.ParseInt(entry.ID.Attributes.ID, 10, 64)
		if err != nil {
			span.SetStatus(codes.Error, "malformed entry id")
			return nil, &ParseError{URL: link, Err: fmt.Errorf("malformed entry id: %w", err)}
		}
		ids = append(ids, id)
	}
	return ids, nil
}
