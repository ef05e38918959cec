package ui

// plain.go is the non-interactive output path: fetch once behind a spinner,
// print a pterm table, exit. Used when the search is fully specified on the
// command line (scripting, piping to other tools).

import (
	"fmt"

	"github.com/charmbracelet/huh/spinner"
	"github.com/jobdial/jobdial/internal/models"
	"github.com/jobdial/jobdial/internal/salary"
	"github.com/pterm/pterm"
)

// ColorizeSalary applies pterm colors to a derived salary display value.
// Real quotes are green, estimates yellow with a tilde, absent red.
func ColorizeSalary(text string, kind salary.Kind) string {
	switch kind {
	case salary.Real:
		return pterm.Green(text)
	case salary.Estimated:
		return pterm.Yellow("~" + text)
	default:
		return pterm.Red(text)
	}
}

// RunPlainSearch runs one search and prints the whole result set as a table,
// page boundaries included so the output matches what the TUI would show.
func RunPlainSearch(fetcher Fetcher, filter models.SearchFilter, estimate bool) error {
	var listings []models.Listing
	var fetchErr error

	fetched := false
	spinErr := spinner.New().
		Title("Fetching jobs...").
		Action(func() {
			fetched = true
			listings, fetchErr = fetcher.FetchAll(filter)
		}).
		Run()
	if spinErr != nil && !fetched {
		// No usable terminal for the spinner. The search still runs.
		listings, fetchErr = fetcher.FetchAll(filter)
	}

	if fetchErr != nil {
		pterm.Error.Println(ErrFetchMessage)
		return fetchErr
	}

	if estimate {
		expMin, expMax := filterYears(filter)
		listings = salary.Enrich(listings, expMin, expMax)
	}

	where := filter.City
	if where == "" {
		where = "India"
	}
	pterm.DefaultSection.Printf("%d jobs for %q in %s", len(listings), filter.Role, where)

	if len(listings) == 0 {
		pterm.Warning.Println("No jobs found. Try a broader role or a different city.")
		return nil
	}

	pager := NewPager(PageSize).Reset(len(listings))
	for page := 1; page <= pager.PageCount(); page++ {
		data := pterm.TableData{
			{"Title", "Company", "Location", "Salary", "Posted", "Source", "Apply"},
		}
		for _, l := range pager.PageSlice(listings) {
			text, kind := salary.Display(l)
			data = append(data, []string{
				l.Title,
				l.DisplayCompany(),
				l.DisplayLocation(),
				ColorizeSalary(text, kind),
				postedCell(l),
				l.Source,
				l.ApplyURL,
			})
		}

		pterm.DefaultSection.WithLevel(2).Printf("Page %d/%d", page, pager.PageCount())
		if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
			return fmt.Errorf("failed to render results table: %w", err)
		}
		pager = pager.Next()
	}

	return nil
}
