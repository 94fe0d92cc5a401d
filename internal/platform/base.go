// Define an interface for all job platforms
// Normalize listings so the aggregation loop is shared

package platform

import (
	"context"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Listing is a single vacancy reduced to the fields salary statistics need.
// Zero bounds mean the platform did not publish them.
type Listing struct {
	SalaryFrom float64
	SalaryTo   float64
	Currency   string
	HasSalary  bool
}

// Query identifies one page of one search. It is built fresh for every request.
type Query struct {
	Keyword string
	Page    int
}

// Page is one page of search results in platform-neutral form.
type Page struct {
	Listings []Listing
	// Found is the platform's total match count for the search.
	Found int
	// Pages is the number of pages the platform reports for the search.
	Pages int
	// More is false once the platform says there is nothing after this page.
	More bool
}

// Source defines the interface that all platform clients must implement
type Source interface {
	//FetchPage returns one page of normalized listings
	FetchPage(ctx context.Context, q Query) (Page, error)

	//Name is the platform name (HeadHunter, SuperJob, ...)
	Name() string

	//TargetCurrency is the currency code listings must carry to be counted
	TargetCurrency() string
}

// SearchPhrase fills template with language and returns it in NFC form with
// control characters stripped.
func SearchPhrase(template, language string) string {
	var phrase string
	switch {
	case strings.Contains(template, "%s"):
		phrase = strings.Replace(template, "%s", language, 1)
	case strings.TrimSpace(template) == "":
		phrase = language
	default:
		phrase = template + " " + language
	}
	t := transform.Chain(norm.NFC, runes.Remove(runes.In(unicode.Cc)))
	result, _, err := transform.String(t, phrase)
	if err != nil {
		return strings.TrimSpace(phrase)
	}
	return strings.TrimSpace(result)
}
