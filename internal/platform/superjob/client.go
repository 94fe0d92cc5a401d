package superjob

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"vacancy-stats/internal/config"
	"vacancy-stats/internal/fetcher"
	"vacancy-stats/internal/platform"
)

const appIDHeader = "X-Api-App-Id"

type Client struct {
	cfg     config.Platform
	fetcher *fetcher.Client
}

func NewClient(cfg config.Platform, f *fetcher.Client) *Client {
	if cfg.PageSize <= 0 {
		cfg.PageSize = 100
	}
	return &Client{
		cfg:     cfg,
		fetcher: f,
	}
}

func (c *Client) Name() string {
	return "SuperJob"
}

func (c *Client) TargetCurrency() string {
	return c.cfg.TargetCurrency
}

type vacancy struct {
	ID          int      `json:"id"`
	Profession  string   `json:"profession"`
	PaymentFrom *float64 `json:"payment_from"`
	PaymentTo   *float64 `json:"payment_to"`
	Currency    string   `json:"currency"`
}

type searchResponse struct {
	Objects []*vacancy `json:"objects"`
	Total   int        `json:"total"`
	More    bool       `json:"more"`
}

// params builds a fresh parameter set for one request.
func (c *Client) params(q platform.Query) url.Values {
	values := url.Values{}
	for k, v := range c.cfg.Filters {
		values.Set(k, v)
	}
	values.Set("keyword", q.Keyword)
	values.Set("page", strconv.Itoa(q.Page))
	values.Set("count", strconv.Itoa(c.cfg.PageSize))
	return values
}

func (c *Client) FetchPage(ctx context.Context, q platform.Query) (platform.Page, error) {
	headers := map[string]string{appIDHeader: c.cfg.Credential}

	var resp searchResponse
	if err := c.fetcher.GetJSON(ctx, c.cfg.BaseURL, c.params(q), headers, &resp); err != nil {
		return platform.Page{}, fmt.Errorf("superjob page %d for %q: %w", q.Page, q.Keyword, err)
	}

	listings := make([]platform.Listing, 0, len(resp.Objects))
	for _, obj := range resp.Objects {
		//skip null entries
		if obj == nil {
			continue
		}
		listings = append(listings, platform.Listing{
			SalaryFrom: deref(obj.PaymentFrom),
			SalaryTo:   deref(obj.PaymentTo),
			Currency:   obj.Currency,
			HasSalary:  true,
		})
	}

	return platform.Page{
		Listings: listings,
		Found:    resp.Total,
		Pages:    resp.Total/c.cfg.PageSize + 1,
		More:     resp.More,
	}, nil
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
