package appstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"

	"go.opentelemetry.io/otel/codes"
)

type searchBubble struct {
	Results []struct {
		ID int64 `json:"id"`
	} `json:"results"`
}

type searchResponse struct {
	Bubbles []searchBubble `json:"bubbles"`
}

// SearchAppIDs returns the app ids the store suggests for a search term,
// at most num*page of them (the upstream page size is 50). Ids are unique
// and in storefront order.
func (c *Client) SearchAppIDs(ctx context.Context, term string, num, page int) ([]int64, error) {
	ctx, span := tracer.Start(ctx, "client:SearchAppIDs")
	defer span.End()

	if term == "" {
		span.SetStatus(codes.Error, "no search term given")
		return nil, errors.New("no search term given")
	}
	if num <= 0 {
		num = defaultPageSize
	}
	if page <= 0 {
		page = 1
	}
	amount := num * page

	link := fmt.Sprintf(
		"%s?clientApplication=Software&media=software&term=%s",
		c.endpoints.Search,
		url.QueryEscape(term),
	)
	res, err := c.get(ctx, link, map[string]string{
		"X-Apple-Store-Front": fmt.Sprintf("%d,24 t:native", c.storefront),
		"Accept-Language":     c.language,
	})
	if err != nil {
		span.SetStatus(codes.Error, "failed to fetch search results")
		return nil, err
	}

	var body searchResponse
	if err := json.Unmarshal(res.Body(), &body); err != nil {
		span.SetStatus(codes.Error, "failed to parse search results")
		return nil, &ParseError{URL: link, Err: err}
	}
	if body.Bubbles == nil {
		span.SetStatus(codes.Error, "missing bubbles container")
		return nil, &ParseError{URL: link, Err: errors.New("missing bubbles container")}
	}
	if len(body.Bubbles) == 0 {
		return nil, nil
	}

	seen := map[int64]bool{}
	var ids []int64
	for _, result := range body.Bubbles[0].Results {
		if seen[result.ID] {
			continue
		}
		seen[result.ID] = true
		ids = append(ids, result.ID)
		if len(ids) == amount {
			break
		}
	}
	return ids, nil
}
