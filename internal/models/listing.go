package models

import "time"

// SearchFilter holds the user-entered search fields for one submission.
// Role and city are always present (may be empty) and are passed to the
// upstream API verbatim. The experience bounds carry the raw input string:
// an empty string means "not set", while an explicit "0" is a real value.
// A filter is never mutated after it has been handed to the aggregator.
type SearchFilter struct {
	Role   string
	City   string
	ExpMin string
	ExpMax string
}

// HasExpMin reports whether a minimum-experience bound was entered.
func (f SearchFilter) HasExpMin() bool { return f.ExpMin != "" }

// HasExpMax reports whether a maximum-experience bound was entered.
func (f SearchFilter) HasExpMax() bool { return f.ExpMax != "" }

// Listing represents one job posting as returned by the upstream search
// endpoint. No field is guaranteed present; absent integers decode to zero.
// Salary amounts are whole rupees per year (1 LPA = 100,000). A zero salary
// field means "not provided" - the upstream never reports a true zero.
type Listing struct {
	Title          string `json:"title"`
	Company        string `json:"company"`
	City           string `json:"city"`
	Location       string `json:"location"`
	ExpMin         int    `json:"exp_min"`
	ExpMax         int    `json:"exp_max"`
	SalaryMin      int64  `json:"salary_min"`
	SalaryMax      int64  `json:"salary_max"`
	SalaryCurrency string `json:"salary_currency"`
	SalaryEstMin   int64  `json:"salary_est_min"`
	SalaryEstMax   int64  `json:"salary_est_max"`
	PostedAt       string `json:"posted_at"`
	Source         string `json:"source"`
	ApplyURL       string `json:"apply_url"`
}

// DisplayLocation returns the best available location string for a listing.
func (l Listing) DisplayLocation() string {
	if l.City != "" {
		return l.City
	}
	return l.Location
}

// DisplayCompany returns the company name, or a fixed placeholder when the
// posting withheld it.
func (l Listing) DisplayCompany() string {
	if l.Company != "" {
		return l.Company
	}
	return "Company confidential"
}

// postedAtFormats lists the timestamp layouts seen in upstream responses.
// The backend emits RFC 3339, but some sources feed it bare dates.
var postedAtFormats = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// PostedTime parses the posted_at timestamp. The second return value is
// false when the field is absent or unparseable.
func (l Listing) PostedTime() (time.Time, bool) {
	if l.PostedAt == "" {
		return time.Time{}, false
	}
	for _, layout := range postedAtFormats {
		if t, err := time.Parse(layout, l.PostedAt); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
