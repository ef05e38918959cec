package salary

import (
	"testing"

	"github.com/jobdial/jobdial/internal/models"
)

func TestFormatLPA(t *testing.T) {
	tests := []struct {
		amount int64
		want   string
	}{
		{500000, "5.0 LPA"},
		{800000, "8.0 LPA"},
		{1250000, "12.5 LPA"},
		{50000, "0.5 LPA"},
	}

	for _, tt := range tests {
		if got := FormatLPA(tt.amount); got != tt.want {
			t.Errorf("FormatLPA(%d) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}

// TestDisplay covers the full precedence ladder: real beats estimated beats
// nothing, and partial ranges get their fixed prefixes/markers.
func TestDisplay(t *testing.T) {
	tests := []struct {
		name     string
		listing  models.Listing
		wantText string
		wantKind Kind
	}{
		{
			name:     "real range",
			listing:  models.Listing{SalaryMin: 500000, SalaryMax: 800000},
			wantText: "5.0 LPA – 8.0 LPA",
			wantKind: Real,
		},
		{
			name:     "real min only",
			listing:  models.Listing{SalaryMin: 500000},
			wantText: "From 5.0 LPA",
			wantKind: Real,
		},
		{
			name:     "real max only",
			listing:  models.Listing{SalaryMax: 800000},
			wantText: "Up to 8.0 LPA",
			wantKind: Real,
		},
		{
			name:     "estimated range",
			listing:  models.Listing{SalaryEstMin: 400000, SalaryEstMax: 900000},
			wantText: "4.0 LPA – 9.0 LPA",
			wantKind: Estimated,
		},
		{
			name:     "estimated with missing max",
			listing:  models.Listing{SalaryEstMin: 300000, SalaryEstMax: 0},
			wantText: "3.0 LPA – N/A",
			wantKind: Estimated,
		},
		{
			name:     "estimated with missing min",
			listing:  models.Listing{SalaryEstMax: 600000},
			wantText: "N/A – 6.0 LPA",
			wantKind: Estimated,
		},
		{
			name:     "real wins over estimate",
			listing:  models.Listing{SalaryMin: 500000, SalaryEstMin: 100000, SalaryEstMax: 200000},
			wantText: "From 5.0 LPA",
			wantKind: Real,
		},
		{
			name:     "no salary data at all",
			listing:  models.Listing{Title: "Mystery role"},
			wantText: NotAvailable,
			wantKind: None,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, kind := Display(tt.listing)
			if text != tt.wantText {
				t.Errorf("Display() text = %q, want %q", text, tt.wantText)
			}
			if kind != tt.wantKind {
				t.Errorf("Display() kind = %v, want %v", kind, tt.wantKind)
			}
		})
	}
}

// TestEstimate checks the level/tier banding against the backend heuristic
func TestEstimate(t *testing.T) {
	tests := []struct {
		name           string
		title, city    string
		expMin, expMax int
		wantMin        int64
		wantMax        int64
	}{
		{
			name:  "senior title in tier-1 city",
			title: "Senior Java Architect", city: "Pune",
			expMin: -1, expMax: -1,
			wantMin: 1800000, wantMax: 3500000,
		},
		{
			name:  "manager title stays in senior band",
			title: "Engineering Manager", city: "Bengaluru",
			expMin: -1, expMax: -1,
			wantMin: 1800000, wantMax: 3500000,
		},
		{
			name:  "explicit experience beats title keywords",
			title: "Senior Developer", city: "Mumbai",
			expMin: 1, expMax: 2,
			wantMin: 400000, wantMax: 800000,
		},
		{
			name:  "tier-2 city applies 0.8",
			title: "Trainee Engineer", city: "Jaipur",
			expMin: -1, expMax: -1,
			wantMin: 320000, wantMax: 640000,
		},
		{
			name:  "unknown city is tier 3 at 0.65",
			title: "Software Intern", city: "Shimla",
			expMin: -1, expMax: -1,
			wantMin: 260000, wantMax: 520000,
		},
		{
			name:  "plain title defaults to mid",
			title: "Software Engineer", city: "Chennai",
			expMin: -1, expMax: -1,
			wantMin: 800000, wantMax: 1800000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotMin, gotMax := Estimate(tt.title, tt.city, tt.expMin, tt.expMax, 0, 0)
			if gotMin != tt.wantMin || gotMax != tt.wantMax {
				t.Errorf("Estimate() = (%d, %d), want (%d, %d)", gotMin, gotMax, tt.wantMin, tt.wantMax)
			}
		})
	}
}

// TestEstimateNeverOverridesQuotes: a listing with a stated salary gets no
// estimate
func TestEstimateNeverOverridesQuotes(t *testing.T) {
	gotMin, gotMax := Estimate("Senior Developer", "Pune", -1, -1, 1200000, 0)
	if gotMin != 0 || gotMax != 0 {
		t.Errorf("Estimate() with real salary = (%d, %d), want (0, 0)", gotMin, gotMax)
	}
}

func TestEnrich(t *testing.T) {
	in := []models.Listing{
		{Title: "Quoted", SalaryMin: 900000},
		{Title: "Pre-estimated", SalaryEstMin: 300000, SalaryEstMax: 500000},
		{Title: "Software Engineer", City: "Pune"},
	}

	out := Enrich(in, -1, -1)

	if out[0].SalaryEstMin != 0 || out[0].SalaryEstMax != 0 {
		t.Errorf("quoted listing was estimated: %+v", out[0])
	}
	if out[1].SalaryEstMin != 300000 || out[1].SalaryEstMax != 500000 {
		t.Errorf("existing estimate was overwritten: %+v", out[1])
	}
	if out[2].SalaryEstMin != 800000 || out[2].SalaryEstMax != 1800000 {
		t.Errorf("missing estimate not filled: %+v", out[2])
	}

	// The input slice must be untouched
	if in[2].SalaryEstMin != 0 {
		t.Error("Enrich mutated its input")
	}
}
