package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/jobdial/jobdial/internal/models"
)

const (
	// UpstreamPageSize is the per-request result cap sent to the backend.
	// It is unrelated to the UI page size - the backend batch is sliced
	// client-side for display.
	UpstreamPageSize = 50

	// MaxPages caps the sequential page loop on the bare-array contract.
	MaxPages = 3

	requestTimeout = 20 * time.Second
	userAgent      = "jobdial/1.0"
)

// Param is one query parameter. Search parameters are kept as an ordered
// slice rather than url.Values so requests are reproducible byte-for-byte.
type Param struct {
	Key   string
	Value string
}

// BuildSearchParams turns a search filter into the canonical parameter set
// for the /jobs endpoint. Role and city are always sent verbatim (not
// trimmed, not validated). The experience bounds are sent only when the
// user entered something - an explicit "0" is included, an empty field is
// omitted. Pure function, cannot fail.
func BuildSearchParams(f models.SearchFilter) []Param {
	params := []Param{
		{Key: "role", Value: f.Role},
		{Key: "city", Value: f.City},
	}
	if f.HasExpMin() {
		params = append(params, Param{Key: "exp_min", Value: f.ExpMin})
	}
	if f.HasExpMax() {
		params = append(params, Param{Key: "exp_max", Value: f.ExpMax})
	}
	params = append(params, Param{Key: "size", Value: fmt.Sprintf("%d", UpstreamPageSize)})
	return params
}

// EncodeParams renders params as a query string, preserving insertion order.
func EncodeParams(params []Param) string {
	var b strings.Builder
	for i, p := range params {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.Value))
	}
	return b.String()
}

// withPage returns a fresh copy of params with a page number appended.
// Each page request gets its own clone so earlier requests are never
// affected by later mutations.
func withPage(params []Param, page int) []Param {
	out := make([]Param, len(params), len(params)+1)
	copy(out, params)
	return append(out, Param{Key: "page", Value: fmt.Sprintf("%d", page)})
}

// UpstreamError reports a non-2xx response from the backend. The whole
// search fails - no partial-page result is surfaced.
type UpstreamError struct {
	Status int
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream returned status %d", e.Status)
}

// NetworkError reports a transport-level failure (DNS, connection refused,
// timeout) where no response was received at all.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// Client talks to the job-search backend.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *log.Logger
}

// NewClient creates a backend client with a 20 second timeout.
// baseURL is the backend root, e.g. "http://localhost:8000".
func NewClient(baseURL string) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

// NewClientWithLogging creates a backend client that logs requests to a file
// next to logPath. Falls back to an unlogged client if the file can't be
// opened - a missing log must never break a search.
func NewClientWithLogging(baseURL, logPath string) *Client {
	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return NewClient(baseURL)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Prefix:          filepath.Base(logPath),
	})

	c := NewClient(baseURL)
	c.logger = logger
	return c
}

// FetchAll runs one search against the backend and returns the full result
// set, in arrival order. The backend answers with one of two shapes and the
// first response decides which path is taken:
//
//   - bare array: the body is the page's records; pages 1..MaxPages are
//     requested sequentially and concatenated, stopping early on an empty
//     page;
//   - envelope: the body is an object whose "jobs" field already holds the
//     complete result; exactly one request is made.
//
// A body matching neither shape yields an empty result set rather than an
// error, so a misbehaving backend degrades to "no jobs found".
// No reordering, no dedup, no caching between calls.
func (c *Client) FetchAll(filter models.SearchFilter) ([]models.Listing, error) {
	base := BuildSearchParams(filter)
	all := []models.Listing{}

	for page := 1; page <= MaxPages; page++ {
		body, err := c.fetchPage(withPage(base, page))
		if err != nil {
			return nil, err
		}

		listings, isEnvelope, err := decodeSearchResponse(body)
		if err != nil {
			if c.logger != nil {
				c.logger.Warn("Unrecognized response shape", "page", page, "error", err)
			}
			// First page malformed: nothing usable. Later page: keep
			// what we have, the loop is done either way.
			return all, nil
		}

		if isEnvelope {
			if page > 1 {
				// Shape flipped mid-search. Treat the envelope as the
				// final word and stop paging.
				return append(all, listings...), nil
			}
			return listings, nil
		}

		if len(listings) == 0 {
			break
		}
		all = append(all, listings...)
	}

	return all, nil
}

// fetchPage issues a single GET against /jobs and returns the raw body.
func (c *Client) fetchPage(params []Param) ([]byte, error) {
	reqURL := c.baseURL + "/jobs?" + EncodeParams(params)

	req, err := http.NewRequest("GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	if c.logger != nil {
		c.logger.Info("GET", "endpoint", reqURL)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if c.logger != nil {
			c.logger.Error("Request failed", "url", reqURL, "error", err)
		}
		return nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		if c.logger != nil {
			c.logger.Error("Failed to read response", "url", reqURL, "error", err)
		}
		return nil, &NetworkError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if c.logger != nil {
			c.logger.Error("Backend error", "status", resp.StatusCode, "response", string(body))
		}
		return nil, &UpstreamError{Status: resp.StatusCode}
	}

	if c.logger != nil {
		c.logger.Debug("Response", "status", resp.StatusCode, "bytes", len(body))
	}

	return body, nil
}

// envelopeResponse is the object-shaped contract. An absent jobs field
// decodes to nil and is reported as an empty result.
type envelopeResponse struct {
	Jobs []models.Listing `json:"jobs"`
}

// decodeSearchResponse classifies a response body against the two supported
// contracts: a JSON array is the bare-array shape, a JSON object is the
// envelope shape. Anything else is an error for the caller to soften.
func decodeSearchResponse(body []byte) (listings []models.Listing, isEnvelope bool, err error) {
	trimmed := bytes.TrimLeft(body, " \t\r\n")
	if len(trimmed) == 0 {
		return nil, false, fmt.Errorf("empty response body")
	}

	switch trimmed[0] {
	case '[':
		var page []models.Listing
		if err := json.Unmarshal(trimmed, &page); err != nil {
			return nil, false, fmt.Errorf("failed to decode result page: %w", err)
		}
		return page, false, nil
	case '{':
		var env envelopeResponse
		if err := json.Unmarshal(trimmed, &env); err != nil {
			return nil, false, fmt.Errorf("failed to decode result envelope: %w", err)
		}
		if env.Jobs == nil {
			env.Jobs = []models.Listing{}
		}
		return env.Jobs, true, nil
	default:
		return nil, false, fmt.Errorf("response is neither an array nor an object")
	}
}
