package salary

import (
	"strings"

	"github.com/jobdial/jobdial/internal/models"
)

// estimate.go replicates the backend's salary estimation heuristic so the
// client can fill in a guess for listings that arrive with no salary data at
// all (opt-in, see Enrich). Ranges are INR per year.

// tier1Cities and tier2Cities bucket Indian metros for the cost-of-living
// adjustment. Anything else is tier 3.
var tier1Cities = []string{
	"mumbai", "bombay", "bengaluru", "bangalore", "hyderabad", "chennai",
	"pune", "gurugram", "gurgaon", "noida", "delhi", "new delhi",
}

var tier2Cities = []string{
	"ahmedabad", "jaipur", "indore", "surat", "kochi", "coimbatore", "bhopal",
}

// levelBand is a seniority pay band in LPA for a tier-1 city.
type levelBand struct {
	minLPA float64
	maxLPA float64
}

var levelBands = map[string]levelBand{
	"junior": {4, 8},
	"mid":    {8, 18},
	"senior": {18, 35},
	"lead":   {30, 55},
}

// Estimate guesses an annual salary range in rupees for a listing without
// one. expMin/expMax are years of experience; pass -1 for "not provided",
// in which case the title keywords pick the level. Returns (0, 0) when the
// listing already has a real salary - quoted numbers are never overridden.
func Estimate(title, city string, expMin, expMax int, salaryMin, salaryMax int64) (int64, int64) {
	if salaryMin != 0 || salaryMax != 0 {
		return 0, 0
	}

	normTitle := strings.ToLower(title)
	normCity := strings.ToLower(city)

	yrs := guessYears(normTitle, expMin, expMax)
	level := levelFor(yrs)
	band := levelBands[level]

	minLPA, maxLPA := band.minLPA, band.maxLPA
	switch cityTier(normCity) {
	case 2:
		minLPA *= 0.8
		maxLPA *= 0.8
	case 3:
		minLPA *= 0.65
		maxLPA *= 0.65
	}

	return int64(minLPA * lpaUnit), int64(maxLPA * lpaUnit)
}

// Enrich returns a copy of listings where every posting with no salary data
// at all gets salary_est_* filled from the heuristic. expMin/expMax are the
// search filter's experience bounds (-1 when not entered). Listings that
// already carry a real or estimated salary pass through untouched.
func Enrich(listings []models.Listing, expMin, expMax int) []models.Listing {
	out := make([]models.Listing, len(listings))
	copy(out, listings)
	for i := range out {
		l := &out[i]
		if l.SalaryMin != 0 || l.SalaryMax != 0 || l.SalaryEstMin != 0 || l.SalaryEstMax != 0 {
			continue
		}
		l.SalaryEstMin, l.SalaryEstMax = Estimate(
			l.Title, l.DisplayLocation(), expMin, expMax, l.SalaryMin, l.SalaryMax)
	}
	return out
}

// guessYears resolves the experience used for banding: explicit bounds win
// (max preferred), otherwise title keywords, otherwise a mid-ish default.
func guessYears(normTitle string, expMin, expMax int) int {
	if expMin >= 0 || expMax >= 0 {
		if expMax > 0 {
			return expMax
		}
		if expMin > 0 {
			return expMin
		}
		return 2
	}

	switch {
	case containsAny(normTitle, "intern", "trainee"):
		return 0
	case containsAny(normTitle, "senior", "sr.", "lead", "architect", "principal"):
		return 7
	case containsAny(normTitle, "manager", "head", "director"):
		return 10
	default:
		return 3
	}
}

func levelFor(yrs int) string {
	switch {
	case yrs <= 2:
		return "junior"
	case yrs <= 6:
		return "mid"
	case yrs <= 12:
		return "senior"
	default:
		return "lead"
	}
}

func cityTier(normCity string) int {
	if containsAny(normCity, tier1Cities...) {
		return 1
	}
	if containsAny(normCity, tier2Cities...) {
		return 2
	}
	return 3
}

func containsAny(s string, keywords ...string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
