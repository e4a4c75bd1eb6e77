package appstore

import (
	"context"
	"net/http"
	"strings"
	"time"

	"itunes-scraper/lib/restyutil"
	"itunes-scraper/lib/telemetry"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
)

// requests use a flat 30 second timeout, the upstream endpoints either
// answer quickly or not at all
const requestTimeout = time.Second * 30

const defaultPageSize = 50

type ClientOptions struct {
	// Two-letter country code of the storefront to query. Defaults to "nl".
	Country string
	// Accept-Language value for endpoints that localize. Defaults to Country.
	Language string
	// Overrides the upstream endpoint table, nil means DefaultEndpoints.
	Endpoints *Endpoints
	// Routes requests through a cloudflare-bypassing transport.
	BypassCloudflare bool
	// When set, every request/response pair is captured to this output.
	DebugOutput restyutil.InstrumentOutput
}

// Client issues stateless queries against a single storefront. Every method
// performs exactly one outbound GET and fully completes or fails before
// returning, there is no shared mutable state between calls.
type Client struct {
	country    string
	language   string
	storefront int
	endpoints  Endpoints
	http       *resty.Client
}

func NewClient(opts ClientOptions) (*Client, error) {
	if opts.Country == "" {
		opts.Country = "nl"
	}
	if opts.Language == "" {
		opts.Language = opts.Country
	}
	storefront, err := StorefrontID(opts.Country)
	if err != nil {
		return nil, err
	}

	endpoints := DefaultEndpoints()
	if opts.Endpoints != nil {
		endpoints = *opts.Endpoints
	}

	client := resty.New()
	client.SetTimeout(requestTimeout)
	client.SetHeader("user-agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36")
	if opts.BypassCloudflare {
		client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)
	}

	if opts.DebugOutput != nil {
		restyutil.InstrumentClient(client, tracer, opts.DebugOutput)
	} else {
		telemetry.InstrumentResty(client, tracerName)
	}

	return &Client{
		country:    strings.ToLower(opts.Country),
		language:   opts.Language,
		storefront: storefront,
		endpoints:  endpoints,
		http:       client,
	}, nil
}

// Country reports the storefront country the client is bound to.
func (c *Client) Country() string { return c.country }

func (c *Client) get(ctx context.Context, link string, headers map[string]string) (*resty.Response, error) {
	req := c.http.R().SetContext(ctx)
	if headers != nil {
		req.SetHeaders(headers)
	}
	res, err := req.Get(link)
	if err != nil {
		return nil, &FetchError{URL: link, Err: err}
	}
	if res.StatusCode() != http.StatusOK {
		return nil, &FetchError{URL: link, StatusCode: res.StatusCode()}
	}
	return res, nil
}
