package models

import (
	"encoding/json"
	"testing"
	"time"
)

// TestListingDecodeSparse: upstream records can omit any field
func TestListingDecodeSparse(t *testing.T) {
	body := `{"title": "Go Developer", "source": "jsearch"}`

	var l Listing
	if err := json.Unmarshal([]byte(body), &l); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if l.Title != "Go Developer" {
		t.Errorf("Title = %q", l.Title)
	}
	if l.SalaryMin != 0 || l.SalaryEstMax != 0 {
		t.Errorf("absent salary fields should decode to zero: %+v", l)
	}
	if _, ok := l.PostedTime(); ok {
		t.Error("PostedTime() reported ok for an absent timestamp")
	}
}

func TestPostedTime(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		wantOK bool
		want   time.Time
	}{
		{
			name:   "rfc3339",
			raw:    "2026-08-20T10:30:00Z",
			wantOK: true,
			want:   time.Date(2026, 8, 20, 10, 30, 0, 0, time.UTC),
		},
		{
			name:   "no zone",
			raw:    "2026-08-20T10:30:00",
			wantOK: true,
			want:   time.Date(2026, 8, 20, 10, 30, 0, 0, time.UTC),
		},
		{
			name:   "bare date",
			raw:    "2026-08-20",
			wantOK: true,
			want:   time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC),
		},
		{name: "garbage", raw: "yesterday-ish", wantOK: false},
		{name: "empty", raw: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := Listing{PostedAt: tt.raw}
			got, ok := l.PostedTime()
			if ok != tt.wantOK {
				t.Fatalf("PostedTime(%q) ok = %v, want %v", tt.raw, ok, tt.wantOK)
			}
			if ok && !got.Equal(tt.want) {
				t.Errorf("PostedTime(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestDisplayFallbacks(t *testing.T) {
	l := Listing{}
	if got := l.DisplayCompany(); got != "Company confidential" {
		t.Errorf("DisplayCompany() = %q", got)
	}

	l = Listing{City: "Pune", Location: "Pune, Maharashtra"}
	if got := l.DisplayLocation(); got != "Pune" {
		t.Errorf("DisplayLocation() = %q, want the city", got)
	}

	l = Listing{Location: "Remote, India"}
	if got := l.DisplayLocation(); got != "Remote, India" {
		t.Errorf("DisplayLocation() = %q, want the location fallback", got)
	}
}

func TestSearchFilterExpPresence(t *testing.T) {
	f := SearchFilter{ExpMin: "0"}
	if !f.HasExpMin() {
		t.Error(`HasExpMin() = false for "0"; zero is a real value`)
	}
	if f.HasExpMax() {
		t.Error("HasExpMax() = true for an empty field")
	}
}
