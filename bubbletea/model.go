package bubbletea

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/searchdrop"
)

// Controller receives user input. dispatch.Dispatcher implements it.
type Controller interface {
	Input(text string)
	Interact(region searchdrop.Region)
	Dismiss()
}

// PageMsg carries the outcome of reading a page for the reader view.
type PageMsg struct {
	URL  string
	Page *searchdrop.Page
	Err  error
}

// SavedMsg carries the outcome of saving the page in the reader view.
type SavedMsg struct {
	URL  string
	Path string
	Err  error
}

// FlashExpiredMsg is delivered FlashTimeout after a flash message is set.
type FlashExpiredMsg struct {
	At time.Time
}

// Option configures a Model.
type Option func(*Model)

// WithPageReader enables the reader view for results and the full search page.
// Without a reader, selecting a result only shows its URL.
func WithPageReader(r searchdrop.PageReader) Option {
	return func(m *Model) {
		m.reader = r
	}
}

// WithPageSaver lets the reader view save the open page with "s".
func WithPageSaver(s searchdrop.PageSaver) Option {
	return func(m *Model) {
		m.saver = s
	}
}

// WithInliner sets how result descriptions are flattened for display.
func WithInliner(i searchdrop.Inliner) Option {
	return func(m *Model) {
		m.inliner = i
	}
}

// WithContext sets the context page reads run under.
func WithContext(ctx context.Context) Option {
	return func(m *Model) {
		m.ctx = ctx
	}
}

// WithLogger sets the logger for failures the user only sees as a flash.
func WithLogger(l *slog.Logger) Option {
	return func(m *Model) {
		m.logger = l
	}
}

// Model is the Bubble Tea model of a search field with a results dropdown.
// The dropdown content arrives as messages from a Bridge; keystrokes and
// clicks go to the Controller.
type Model struct {
	ctrl    Controller
	reader  searchdrop.PageReader
	saver   searchdrop.PageSaver
	inliner searchdrop.Inliner
	ctx     context.Context
	logger  *slog.Logger
	now     func() time.Time

	input    textinput.Model
	spinner  spinner.Model
	viewport viewport.Model

	listing *searchdrop.Listing
	visible bool
	loading bool
	cursor  int // -1 while the input has focus

	fetching string
	page     *searchdrop.Page

	flash *searchdrop.Flash

	width  int
	height int
}

// NewModel creates a Model that reports input to ctrl.
func NewModel(ctrl Controller, opts ...Option) Model {
	ti := textinput.New()
	ti.Prompt = promptStyle.Render("Search: ")
	ti.Placeholder = "type at least 3 characters"
	ti.CharLimit = 200
	ti.Width = 40
	ti.Focus()

	s := spinner.New()
	s.Spinner = spinner.Dot

	m := Model{
		ctrl:     ctrl,
		ctx:      context.Background(),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:      time.Now,
		input:    ti,
		spinner:  s,
		viewport: viewport.New(80, 20),
		cursor:   -1,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.input.Width = max(msg.Width-12, 10)
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-3, 1)
		return m, nil

	case ShowMsg:
		m.listing = msg.Listing
		m.visible = true
		m.cursor = -1
		return m, nil

	case HideMsg:
		m.visible = false
		m.cursor = -1
		return m, nil

	case LoadingMsg:
		m.loading = msg.Loading
		if m.loading {
			return m, m.spinner.Tick
		}
		return m, nil

	case spinner.TickMsg:
		if !m.loading && m.fetching == "" {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case PageMsg:
		return m.handlePage(msg)

	case SavedMsg:
		if msg.Err != nil {
			m.logger.Error("failed to save page", "url", msg.URL, "err", msg.Err)
			return m.setFlash(searchdrop.FlashError, "Could not save "+msg.URL)
		}
		return m.setFlash(searchdrop.FlashInfo, "Saved to "+msg.Path)

	case FlashExpiredMsg:
		if m.flash != nil && m.flash.Expired(msg.At) {
			m.flash = nil
		}
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.page != nil {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.page != nil {
		switch msg.String() {
		case "esc", "q":
			m.page = nil
			return m, nil
		case "s":
			if m.saver != nil {
				return m, m.save()
			}
		}
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "esc":
		m.ctrl.Dismiss()
		return m, nil
	case "down":
		if m.visible {
			m.cursor = min(m.cursor+1, m.lastRow())
		}
		return m, nil
	case "up":
		if m.cursor >= 0 {
			m.cursor--
		}
		return m, nil
	case "enter":
		return m.open()
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if after := m.input.Value(); after != before {
		m.cursor = -1
		m.ctrl.Input(after)
	}
	return m, cmd
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.page != nil || msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	region := m.RegionAt(msg.Y)
	m.ctrl.Interact(region)
	if region == searchdrop.RegionInput {
		return m, m.input.Focus()
	}
	return m, nil
}

// lastRow is the index of the last selectable dropdown row, the "view all"
// link. Empty listings have no selectable rows.
func (m Model) lastRow() int {
	if m.listing == nil || m.listing.Empty() {
		return -1
	}
	return len(m.listing.Entries)
}

// open reads the selected result, the "view all" page, or, with nothing
// selected, the full search page for the typed query.
func (m Model) open() (tea.Model, tea.Cmd) {
	var url string
	switch {
	case m.visible && m.cursor >= 0 && m.cursor < m.lastRow():
		url = m.listing.Entries[m.cursor].URL
	case m.visible && m.cursor >= 0 && m.cursor == m.lastRow():
		url = m.listing.ViewAllURL
	default:
		q := searchdrop.NormalizeQuery(m.input.Value())
		if !searchdrop.IsSearchable(q) {
			return m, nil
		}
		url = searchdrop.SearchPageURL(q)
	}

	m.ctrl.Dismiss()

	if m.reader == nil {
		return m.setFlash(searchdrop.FlashInfo, "Open "+url)
	}

	m.fetching = url
	reader, ctx := m.reader, m.ctx
	read := func() tea.Msg {
		page, err := reader.Read(ctx, url)
		return PageMsg{URL: url, Page: page, Err: err}
	}
	return m, tea.Batch(read, m.spinner.Tick)
}

func (m Model) handlePage(msg PageMsg) (tea.Model, tea.Cmd) {
	if msg.URL != m.fetching {
		return m, nil
	}
	m.fetching = ""

	if msg.Err != nil {
		m.logger.Error("failed to read page", "url", msg.URL, "err", msg.Err)
		return m.setFlash(searchdrop.FlashError, "Could not load "+msg.URL)
	}

	m.page = msg.Page
	m.viewport.SetContent(msg.Page.Content)
	m.viewport.GotoTop()
	return m, nil
}

func (m Model) save() tea.Cmd {
	saver, ctx, page := m.saver, m.ctx, m.page
	return func() tea.Msg {
		path, err := saver.SavePage(ctx, page)
		return SavedMsg{URL: page.URL, Path: path, Err: err}
	}
}

func (m Model) setFlash(level searchdrop.FlashLevel, message string) (tea.Model, tea.Cmd) {
	m.flash = searchdrop.NewFlash(level, message, m.now())
	return m, tea.Tick(searchdrop.FlashTimeout, func(t time.Time) tea.Msg {
		return FlashExpiredMsg{At: t}
	})
}

// RegionAt maps a terminal row to the region it displays. Row 0 is the
// search field; the dropdown box follows it while visible.
func (m Model) RegionAt(y int) searchdrop.Region {
	if y == 0 {
		return searchdrop.RegionInput
	}
	if m.visible && y >= 1 && y < 1+lipgloss.Height(m.dropdownView()) {
		return searchdrop.RegionDropdown
	}
	return searchdrop.RegionOutside
}

// View implements tea.Model.
func (m Model) View() string {
	if m.page != nil {
		return m.readerView()
	}

	var b strings.Builder
	b.WriteString(m.input.View())
	if m.loading || m.fetching != "" {
		b.WriteString(" " + m.spinner.View())
	}
	if m.visible {
		b.WriteString("\n" + m.dropdownView())
	}
	if m.flash != nil {
		b.WriteString("\n" + flashView(m.flash))
	}
	b.WriteString("\n" + helpStyle.Render("↑/↓ select • enter open • esc dismiss • ctrl+c quit"))
	return b.String()
}

func (m Model) dropdownView() string {
	var rows []string
	if m.listing == nil || m.listing.Empty() {
		rows = append(rows, placeholderStyle.Render(searchdrop.NoResultsText))
	} else {
		for i, e := range m.listing.Entries {
			rows = append(rows, marker(i == m.cursor)+titleStyle(i == m.cursor).Render(e.Title))
			if desc := m.describe(e.Description); desc != "" {
				rows = append(rows, "  "+descriptionStyle.Render(desc))
			}
			rows = append(rows, "  "+locationStyle.Render(e.Location))
		}
		last := len(m.listing.Entries)
		rows = append(rows, marker(m.cursor == last)+viewAllStyle.Render(searchdrop.ViewAllText+" →"))
	}

	style := dropdownStyle
	if m.width > 4 {
		style = style.Width(m.width - 2)
	}
	return style.Render(strings.Join(rows, "\n"))
}

func (m Model) describe(description string) string {
	if m.inliner != nil {
		return m.inliner.Inline(description)
	}
	return strings.Join(strings.Fields(description), " ")
}

func (m Model) readerView() string {
	title := m.page.Title
	if title == "" {
		title = m.page.URL
	}
	help := "↑/↓ scroll • esc back • ctrl+c quit"
	if m.saver != nil {
		help = "↑/↓ scroll • s save • esc back • ctrl+c quit"
	}
	return readerTitleStyle.Render(title) + "\n" +
		m.viewport.View() + "\n" +
		helpStyle.Render(help)
}

func marker(selected bool) string {
	if selected {
		return "> "
	}
	return "  "
}

func titleStyle(selected bool) lipgloss.Style {
	if selected {
		return selectedTitleStyle
	}
	return entryTitleStyle
}

func flashView(f *searchdrop.Flash) string {
	if f.Level == searchdrop.FlashError {
		return flashErrorStyle.Render(f.Message)
	}
	return flashInfoStyle.Render(f.Message)
}

// Query returns the text in the search field.
func (m Model) Query() string { return m.input.Value() }

// Visible reports whether the dropdown is shown.
func (m Model) Visible() bool { return m.visible }

// Loading reports whether a search is in flight.
func (m Model) Loading() bool { return m.loading }

// Listing returns the last listing shown.
func (m Model) Listing() *searchdrop.Listing { return m.listing }

// Cursor returns the selected dropdown row, or -1 when none is selected.
func (m Model) Cursor() int { return m.cursor }

// Page returns the page open in the reader view, if any.
func (m Model) Page() *searchdrop.Page { return m.page }

// Flash returns the current flash message, if any.
func (m Model) Flash() *searchdrop.Flash { return m.flash }
