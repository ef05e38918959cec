package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/jobdial/jobdial/internal/api"
	"github.com/jobdial/jobdial/internal/models"
	"github.com/jobdial/jobdial/internal/ui"
)

const (
	defaultBaseURL = "http://localhost:8000"
	defaultLogPath = "jobdial-api.log"
)

func main() {
	// Load .env file if it exists (silently ignore if not found)
	_ = godotenv.Load()

	baseFlag := flag.String("base", "", "Job API base URL (default $JOBDIAL_API_BASE or "+defaultBaseURL+")")
	roleFlag := flag.String("role", "", "Role to search for; runs non-interactively and prints a table")
	cityFlag := flag.String("city", "", "City to search in (plain mode)")
	expMinFlag := flag.String("exp-min", "", "Minimum years of experience (plain mode)")
	expMaxFlag := flag.String("exp-max", "", "Maximum years of experience (plain mode)")
	estimateFlag := flag.Bool("estimate", false, "Fill in a salary estimate for listings without salary data")
	logFlag := flag.String("log", defaultLogPath, "API request log file")
	flag.Parse()

	base := *baseFlag
	if base == "" {
		base = os.Getenv("JOBDIAL_API_BASE")
	}
	if base == "" {
		base = defaultBaseURL
	}

	client := api.NewClientWithLogging(base, *logFlag)

	// Plain mode: search fully specified on the command line
	if *roleFlag != "" {
		filter := models.SearchFilter{
			Role:   *roleFlag,
			City:   *cityFlag,
			ExpMin: *expMinFlag,
			ExpMax: *expMaxFlag,
		}
		if err := ui.RunPlainSearch(client, filter, *estimateFlag); err != nil {
			os.Exit(1)
		}
		return
	}

	// Interactive loop: form -> results -> form, until the user quits
	var filter models.SearchFilter
	for {
		submitted, cancelled, err := ui.PromptForSearch(filter)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		if cancelled {
			return
		}
		filter = submitted

		action, err := ui.RunResults(client, filter, *estimateFlag)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		if action == ui.ActionQuit {
			return
		}
	}
}
