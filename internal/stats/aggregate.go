// Package stats walks a platform's search results and reduces them to
// per-language salary statistics.
package stats

import (
	"context"
	"fmt"
	"log"

	"vacancy-stats/internal/filter"
	"vacancy-stats/internal/platform"
	"vacancy-stats/internal/salary"
)

// Stats is the aggregate for one language on one platform.
type Stats struct {
	Found     int `json:"vacancies_found"`
	Processed int `json:"vacancies_processed"`
	Average   int `json:"average_salary"`
}

// LanguageStats pairs a language with its aggregate. Slices of it keep the
// order in which languages were requested.
type LanguageStats struct {
	Language string `json:"language"`
	Stats
}

// Collect pages through every result for keyword on src and returns the
// aggregate. A fetch error aborts the walk.
func Collect(ctx context.Context, src platform.Source, keyword string) (Stats, error) {
	page, err := src.FetchPage(ctx, platform.Query{Keyword: keyword, Page: 0})
	if err != nil {
		return Stats{}, err
	}

	found := page.Found
	pages := page.Pages
	currency := src.TargetCurrency()

	var estimates []int
	for n := 0; n < pages; n++ {
		if n > 0 {
			page, err = src.FetchPage(ctx, platform.Query{Keyword: keyword, Page: n})
			if err != nil {
				return Stats{}, err
			}
		}

		for _, listing := range page.Listings {
			if !filter.ShouldIncludeListing(listing, currency) {
				continue
			}
			estimate, ok := salary.PredictInt(listing.SalaryFrom, listing.SalaryTo)
			if !ok || estimate == 0 {
				continue
			}
			estimates = append(estimates, estimate)
		}

		if !page.More {
			break
		}
	}

	return Stats{
		Found:     found,
		Processed: len(estimates),
		Average:   average(estimates),
	}, nil
}

// CollectAll runs Collect for each language in order, building the search
// keyword from template.
func CollectAll(ctx context.Context, src platform.Source, template string, languages []string) ([]LanguageStats, error) {
	result := make([]LanguageStats, 0, len(languages))
	for _, language := range languages {
		keyword := platform.SearchPhrase(template, language)
		s, err := Collect(ctx, src, keyword)
		if err != nil {
			return nil, fmt.Errorf("%s: collecting %s: %w", src.Name(), language, err)
		}
		log.Printf("  📊 %s / %s: found %d, processed %d, average %d", src.Name(), language, s.Found, s.Processed, s.Average)
		result = append(result, LanguageStats{Language: language, Stats: s})
	}
	return result, nil
}

func average(values []int) int {
	if len(values) == 0 {
		return 0
	}
	sum := 0
	for _, v := range values {
		sum += v
	}
	return sum / len(values)
}
