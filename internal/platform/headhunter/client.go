package headhunter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"vacancy-stats/internal/config"
	"vacancy-stats/internal/fetcher"
	"vacancy-stats/internal/platform"
)

type Client struct {
	cfg     config.Platform
	fetcher *fetcher.Client
}

func NewClient(cfg config.Platform, f *fetcher.Client) *Client {
	return &Client{
		cfg:     cfg,
		fetcher: f,
	}
}

func (c *Client) Name() string {
	return "HeadHunter"
}

func (c *Client) TargetCurrency() string {
	return c.cfg.TargetCurrency
}

type salary struct {
	From     *float64 `json:"from"`
	To       *float64 `json:"to"`
	Currency string   `json:"currency"`
}

type vacancy struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Salary *salary `json:"salary"`
}

type searchResponse struct {
	Items []vacancy `json:"items"`
	Found int       `json:"found"`
	Pages int       `json:"pages"`
	Page  int       `json:"page"`
}

// params builds a fresh parameter set for one request.
func (c *Client) params(q platform.Query) url.Values {
	values := url.Values{}
	for k, v := range c.cfg.Filters {
		values.Set(k, v)
	}
	values.Set("text", q.Keyword)
	values.Set("page", strconv.Itoa(q.Page))
	return values
}

func (c *Client) FetchPage(ctx context.Context, q platform.Query) (platform.Page, error) {
	headers := map[string]string{"User-Agent": c.cfg.UserAgent}

	var resp searchResponse
	if err := c.fetcher.GetJSON(ctx, c.cfg.BaseURL, c.params(q), headers, &resp); err != nil {
		return platform.Page{}, fmt.Errorf("headhunter page %d for %q: %w", q.Page, q.Keyword, err)
	}

	listings := make([]platform.Listing, 0, len(resp.Items))
	for _, item := range resp.Items {
		listings = append(listings, toListing(item))
	}

	return platform.Page{
		Listings: listings,
		Found:    resp.Found,
		Pages:    resp.Pages,
		More:     q.Page+1 < resp.Pages,
	}, nil
}

func toListing(v vacancy) platform.Listing {
	if v.Salary == nil {
		return platform.Listing{}
	}
	return platform.Listing{
		SalaryFrom: deref(v.Salary.From),
		SalaryTo:   deref(v.Salary.To),
		Currency:   v.Salary.Currency,
		HasSalary:  true,
	}
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
