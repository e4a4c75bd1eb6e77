package appstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"itunes-scraper/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel/codes"
)

const similarAppsKey = "customersAlsoBoughtApps"

// SimilarAppIDs returns the ids of apps the storefront associates with the
// given app. This endpoint is not a clean JSON API, the ids live in a JSON
// blob embedded in the script tags of the app's public HTML page. A page
// without the blob is a legitimate "no similar apps" answer.
func (c *Client) SimilarAppIDs(ctx context.Context, appID int64) ([]int64, error) {
	ctx, span := tracer.Start(ctx, "client:SimilarAppIDs")
	defer span.End()

	link := fmt.Sprintf("%s/id%d", c.endpoints.Page, appID)
	res, err := c.get(ctx, link, map[string]string{
		"X-Apple-Store-Front": fmt.Sprintf("%d,32", c.storefront),
		"Accept-Language":     c.language,
	})
	if err != nil {
		span.SetStatus(codes.Error, "failed to fetch storefront page")
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewBuffer(res.Body()))
	if err != nil {
		span.SetStatus(codes.Error, "failed to parse storefront page")
		return nil, &ParseError{URL: link, Err: err}
	}

	payload, found, err := htmlutil.ExtractScriptArray(doc, similarAppsKey)
	if err != nil {
		span.SetStatus(codes.Error, "malformed similar apps payload")
		return nil, &ParseError{URL: link, Err: err}
	}
	if !found {
		return nil, nil
	}

	var ids []int64
	if err := json.Unmarshal(payload, &ids); err != nil {
		span.SetStatus(codes.Error, "malformed similar apps payload")
		return nil, &ParseError{URL: link, Err: err}
	}
	return ids, nil
}
