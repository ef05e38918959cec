package ui

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/jobdial/jobdial/internal/models"
)

// validateOptionalYears accepts an empty field or a non-negative integer.
// The raw string is what gets sent upstream, so nothing is normalized here.
func validateOptionalYears(s string) error {
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("enter a whole number of years")
	}
	if n < 0 {
		return fmt.Errorf("years cannot be negative")
	}
	return nil
}

// PromptForSearch shows the search form and returns the submitted filter.
// Role and city are kept verbatim - no trimming, no validation - since the
// backend does its own matching. Previous values are used as defaults so a
// refinement doesn't start from scratch. cancelled is true when the user
// backed out with Esc.
func PromptForSearch(prev models.SearchFilter) (filter models.SearchFilter, cancelled bool, err error) {
	filter = prev

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Role").
				Description("e.g. 'Java Developer'").
				Placeholder("Java Developer").
				Value(&filter.Role),
			huh.NewInput().
				Title("City").
				Description("e.g. 'Pune' (leave empty for all of India)").
				Placeholder("Pune").
				Value(&filter.City),
			huh.NewInput().
				Title("Min experience (years)").
				Placeholder("optional").
				Value(&filter.ExpMin).
				Validate(validateOptionalYears),
			huh.NewInput().
				Title("Max experience (years)").
				Placeholder("optional").
				Value(&filter.ExpMax).
				Validate(validateOptionalYears),
		),
	).WithTheme(NewAppTheme())

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return prev, true, nil
		}
		return prev, false, fmt.Errorf("search form failed: %w", err)
	}

	return filter, false, nil
}
