package filter

import "vacancy-stats/internal/platform"

// ShouldIncludeListing reports whether a listing may contribute to the
// salary statistics for the given target currency.
func ShouldIncludeListing(listing platform.Listing, currency string) bool {
	//must publish a salary
	if !listing.HasSalary {
		return false
	}

	//must be paid in the target currency
	if listing.Currency != currency {
		return false
	}

	return true
}
