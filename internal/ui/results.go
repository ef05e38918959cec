package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"
	"github.com/jobdial/jobdial/internal/models"
	"github.com/jobdial/jobdial/internal/salary"
)

// ErrFetchMessage is the single user-facing message for any failed search.
// Status detail goes to the log, never to the banner.
const ErrFetchMessage = "Unable to fetch jobs. Check backend is running and API key is set."

// Fetcher runs one search against the backend. *api.Client satisfies this;
// tests substitute a fake.
type Fetcher interface {
	FetchAll(filter models.SearchFilter) ([]models.Listing, error)
}

// ResultsAction says what the user wants after the results screen closes.
type ResultsAction int

const (
	ActionQuit ResultsAction = iota
	ActionNewSearch
)

// searchResultMsg carries a completed fetch back into the update loop.
// seq identifies which search issued it; a stale response is discarded.
type searchResultMsg struct {
	seq      int
	listings []models.Listing
	err      error
}

// ResultsModel drives the search-results screen: one fetch per search, a
// table over the current UI page, and prev/next paging over the full
// client-side result set.
type ResultsModel struct {
	fetcher  Fetcher
	filter   models.SearchFilter
	estimate bool

	listings []models.Listing
	pager    Pager
	table    table.Model
	spin     spinner.Model
	layout   Layout

	loading bool
	errMsg  string
	seq     int // latest issued search sequence number

	action   ResultsAction
	quitting bool
}

// NewResultsModel creates the results screen and kicks off the first search
// when Init runs. estimate enables the client-side salary guess for
// listings without any salary data.
func NewResultsModel(fetcher Fetcher, filter models.SearchFilter, estimate bool) ResultsModel {
	m := ResultsModel{
		fetcher:  fetcher,
		filter:   filter,
		estimate: estimate,
		pager:    NewPager(PageSize),
		spin:     NewAppSpinner(),
		layout:   DefaultLayout(),
		loading:  true,
		seq:      1,
	}

	m.table = table.New(
		table.WithColumns(BuildListingColumns(m.layout.TableWidth)),
		table.WithFocused(true),
		table.WithHeight(PageSize),
	)
	ApplyTableStyles(&m.table)

	return m
}

// fetchCmd runs the search off the update loop. The sequence number rides
// along so Update can tell a fresh result from a superseded one.
func (m ResultsModel) fetchCmd(seq int, filter models.SearchFilter) tea.Cmd {
	return func() tea.Msg {
		listings, err := m.fetcher.FetchAll(filter)
		if err == nil && m.estimate {
			expMin, expMax := filterYears(filter)
			listings = salary.Enrich(listings, expMin, expMax)
		}
		return searchResultMsg{seq: seq, listings: listings, err: err}
	}
}

// startSearch begins a new search: bump the sequence number, show the
// spinner, leave the previous result set in place until the new one lands.
func (m ResultsModel) startSearch(filter models.SearchFilter) (ResultsModel, tea.Cmd) {
	m.filter = filter
	m.seq++
	m.loading = true
	m.errMsg = ""
	return m, tea.Batch(m.fetchCmd(m.seq, filter), m.spin.Tick)
}

// Init issues the first fetch. The model is constructed loading with seq 1,
// so the command built here matches what Update expects back.
func (m ResultsModel) Init() tea.Cmd {
	return tea.Batch(tea.WindowSize(), m.fetchCmd(m.seq, m.filter), m.spin.Tick)
}

func (m ResultsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout = NewLayout(msg.Width, msg.Height)
		m.table.SetColumns(BuildListingColumns(m.layout.TableWidth))
		m.table.SetHeight(PageSize)
		return m, nil

	case searchResultMsg:
		if msg.seq != m.seq {
			// A newer search was issued while this one was in flight.
			// Last request wins; drop the stale result.
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			// Keep the old result set, but the error branch suppresses it.
			m.errMsg = ErrFetchMessage
			return m, nil
		}
		m.errMsg = ""
		m.listings = msg.listings
		m.pager = m.pager.Reset(len(msg.listings))
		m.refreshRows()
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			m.action = ActionQuit
			return m, tea.Quit

		case "/", "n":
			m.quitting = true
			m.action = ActionNewSearch
			return m, tea.Quit

		case "left", "h", "pgup":
			m.pager = m.pager.Prev()
			m.refreshRows()
			return m, nil

		case "right", "l", "pgdown":
			m.pager = m.pager.Next()
			m.refreshRows()
			return m, nil

		case "r":
			return m.startSearch(m.filter)
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// refreshRows rebuilds the table rows for the current page and moves the
// cursor back to the top of the page.
func (m *ResultsModel) refreshRows() {
	page := m.pager.PageSlice(m.listings)
	rows := make([]table.Row, len(page))
	for i, l := range page {
		rows[i] = listingRow(l)
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// listingRow renders one listing as a table row.
func listingRow(l models.Listing) table.Row {
	text, kind := salary.Display(l)
	if kind == salary.Estimated {
		text = "~" + text
	}
	return table.Row{
		l.Title,
		l.DisplayCompany(),
		l.DisplayLocation(),
		text,
		postedCell(l),
		l.Source,
	}
}

// postedCell humanizes the posting date ("2 days ago"), or a placeholder
// when the listing has none.
func postedCell(l models.Listing) string {
	t, ok := l.PostedTime()
	if !ok {
		return "-"
	}
	return humanize.Time(t)
}

// queryInfo summarizes the active search and pagination state.
func (m ResultsModel) queryInfo() string {
	where := m.filter.City
	if where == "" {
		where = "India"
	}
	return fmt.Sprintf("%q in %s • %d jobs • Page %d/%d",
		m.filter.Role, where, m.pager.Total(), m.pager.Page(), m.pager.PageCount())
}

// selectedDetail renders the detail line for the highlighted listing:
// estimate marker and apply link, when available.
func (m ResultsModel) selectedDetail() string {
	page := m.pager.PageSlice(m.listings)
	cursor := m.table.Cursor()
	if cursor < 0 || cursor >= len(page) {
		return ""
	}
	l := page[cursor]

	var parts []string
	if _, kind := salary.Display(l); kind == salary.Estimated {
		parts = append(parts, EstimateStyle.Render("~ estimated salary"))
	}
	if l.ApplyURL != "" {
		parts = append(parts, "Apply: "+l.ApplyURL)
	}
	if len(parts) == 0 {
		return ""
	}
	return RenderDim(strings.Join(parts, "  •  "))
}

func (m ResultsModel) View() string {
	if m.quitting {
		return ""
	}

	var content strings.Builder
	content.WriteString(ViewHeader("jobdial • IT jobs in India", m.layout.InnerWidth))
	content.WriteString(AccentStyle.Render(m.queryInfo()))
	content.WriteString("\n\n")

	switch {
	case m.loading:
		content.WriteString(fmt.Sprintf("%s Fetching jobs...", m.spin.View()))
		content.WriteString("\n")

	case m.errMsg != "":
		content.WriteString(RenderError(m.errMsg))
		content.WriteString("\n")

	case m.pager.Total() == 0:
		content.WriteString(RenderDim("No jobs found. Try a broader role or a different city."))
		content.WriteString("\n")

	default:
		content.WriteString(m.table.View())
		content.WriteString("\n")
		if detail := m.selectedDetail(); detail != "" {
			content.WriteString("\n")
			content.WriteString(detail)
			content.WriteString("\n")
		}
	}

	help := "↑/↓: select | ←/→: page | r: refetch | /: new search | q: quit"
	return BuildTwoBoxView(content.String(), help, m.layout)
}

// Action returns what the user chose when the screen closed.
func (m ResultsModel) Action() ResultsAction {
	return m.action
}

// filterYears parses the filter's experience bounds for the estimator.
// -1 means the bound was not entered.
func filterYears(f models.SearchFilter) (expMin, expMax int) {
	expMin, expMax = -1, -1
	if n, err := strconv.Atoi(f.ExpMin); err == nil {
		expMin = n
	}
	if n, err := strconv.Atoi(f.ExpMax); err == nil {
		expMax = n
	}
	return expMin, expMax
}

// RunResults runs the results screen for one submitted search and reports
// whether the user wants another search or to exit.
func RunResults(fetcher Fetcher, filter models.SearchFilter, estimate bool) (ResultsAction, error) {
	model := NewResultsModel(fetcher, filter, estimate)
	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return ActionQuit, fmt.Errorf("results screen failed: %w", err)
	}
	return finalModel.(ResultsModel).Action(), nil
}
