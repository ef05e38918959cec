// Package salary derives display-ready salary strings for job listings and
// carries the fallback estimation heuristic for postings without any salary
// data.
package salary

import (
	"fmt"

	"github.com/jobdial/jobdial/internal/models"
)

// Kind says where a displayed salary value came from.
type Kind int

const (
	// None means the listing carries no salary information at all.
	None Kind = iota
	// Real means the posting itself stated the salary.
	Real
	// Estimated means the value is a derived estimate, not a quote.
	Estimated
)

// lpaUnit is the display scale: 1 LPA = 100,000 rupees per year.
const lpaUnit = 100000

// NotAvailable is the fixed marker shown when a listing has no salary data.
const NotAvailable = "Salary not available"

// missingBound marks an absent half of an estimated range.
const missingBound = "N/A"

// FormatLPA renders a whole-rupee annual amount as lakhs per annum with one
// decimal place, e.g. 500000 -> "5.0 LPA".
func FormatLPA(amount int64) string {
	return fmt.Sprintf("%.1f LPA", float64(amount)/lpaUnit)
}

// Display derives the salary text for one listing, evaluated at render time.
// Precedence: a real salary beats an estimate beats nothing. A zero amount
// counts as absent - the upstream cannot express a true zero salary, so the
// two cases are deliberately indistinguishable here.
func Display(l models.Listing) (string, Kind) {
	switch {
	case l.SalaryMin != 0 && l.SalaryMax != 0:
		return FormatLPA(l.SalaryMin) + " – " + FormatLPA(l.SalaryMax), Real
	case l.SalaryMin != 0:
		return "From " + FormatLPA(l.SalaryMin), Real
	case l.SalaryMax != 0:
		return "Up to " + FormatLPA(l.SalaryMax), Real
	case l.SalaryEstMin != 0 || l.SalaryEstMax != 0:
		return formatBound(l.SalaryEstMin) + " – " + formatBound(l.SalaryEstMax), Estimated
	default:
		return NotAvailable, None
	}
}

// formatBound renders one half of an estimated range, with an explicit
// marker for a missing bound rather than a silently blank token.
func formatBound(amount int64) string {
	if amount == 0 {
		return missingBound
	}
	return FormatLPA(amount)
}
