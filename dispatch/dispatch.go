// Package dispatch turns keystrokes into debounced search requests and
// drives a searchdrop.Dropdown with the outcome.
//
// All dispatcher state is owned by the goroutine executing Run. Input,
// Interact, timer expiries, and search completions are queued as tasks and
// each task runs to completion before the next one starts.
package dispatch

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/fwojciec/searchdrop"
)

// ErrAlreadyRunning is returned when Run is called more than once.
var ErrAlreadyRunning = errors.New("dispatcher already running")

// Dispatcher debounces query input and shows search results in a dropdown.
// At most one search is issued per pause in typing, and only the response
// to the most recently issued search may change the dropdown.
type Dispatcher struct {
	searcher   searchdrop.Searcher
	dropdown   searchdrop.Dropdown
	clock      searchdrop.Clock
	logger     *slog.Logger
	searchLog  searchdrop.SearchLog
	quiet      time.Duration
	staticRoot string

	tasks   chan func()
	stopped chan struct{}
	running atomic.Bool

	// Fields below are only touched by tasks.
	ctx     context.Context
	timer   searchdrop.Timer
	timerID uint64 // identifies the scheduled dispatch; bumped on every cancel
	issued  uint64 // token of the most recently issued search
	active  uint64 // token whose response may update the dropdown; 0 for none
	visible searchdrop.DropdownState
	loading bool
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithClock sets the clock used for the quiet interval.
func WithClock(c searchdrop.Clock) Option {
	return func(d *Dispatcher) {
		d.clock = c
	}
}

// WithLogger sets the operator-facing logger. Search failures are logged
// here and nowhere else. Defaults to discarding output.
func WithLogger(l *slog.Logger) Option {
	return func(d *Dispatcher) {
		d.logger = l
	}
}

// WithQuietInterval sets the debounce delay.
// Defaults to searchdrop.DefaultQuietInterval (300ms).
func WithQuietInterval(q time.Duration) Option {
	return func(d *Dispatcher) {
		d.quiet = q
	}
}

// WithSearchLog records every issued search and its outcome.
func WithSearchLog(l searchdrop.SearchLog) Option {
	return func(d *Dispatcher) {
		d.searchLog = l
	}
}

// WithStaticRoot sets the prefix for relative result image paths.
// Defaults to searchdrop.DefaultStaticRoot.
func WithStaticRoot(root string) Option {
	return func(d *Dispatcher) {
		d.staticRoot = root
	}
}

// New creates a Dispatcher that queries searcher and renders into dropdown.
// Dropdown methods are called from the Run goroutine and must not block.
func New(searcher searchdrop.Searcher, dropdown searchdrop.Dropdown, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		searcher:   searcher,
		dropdown:   dropdown,
		clock:      systemClock{},
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		quiet:      searchdrop.DefaultQuietInterval,
		staticRoot: searchdrop.DefaultStaticRoot,
		tasks:      make(chan func()),
		stopped:    make(chan struct{}),
		visible:    searchdrop.DropdownHidden,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Run processes tasks until ctx is canceled. Searches in flight when ctx is
// canceled are abandoned. Run must be called exactly once; Input and
// Interact block until it is running.
func (d *Dispatcher) Run(ctx context.Context) error {
	if !d.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer close(d.stopped)

	d.ctx = ctx
	defer d.cancelTimer()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case task := <-d.tasks:
			task()
		}
	}
}

// Input handles the current text of the search field. It returns after the
// input has been handled: a short query has already hidden the dropdown.
func (d *Dispatcher) Input(text string) {
	d.do(func() {
		d.handleInput(text)
	})
}

// Interact handles a pointer or focus interaction in region. Interactions
// outside both the input and the dropdown hide the dropdown and cancel a
// search still waiting for the quiet interval.
func (d *Dispatcher) Interact(region searchdrop.Region) {
	d.do(func() {
		if region == searchdrop.RegionOutside {
			d.cancelTimer()
			d.hide()
		}
	})
}

// Dismiss hides the dropdown as if the user interacted outside of it.
func (d *Dispatcher) Dismiss() {
	d.Interact(searchdrop.RegionOutside)
}

// State returns what the dropdown currently displays.
func (d *Dispatcher) State() searchdrop.DropdownState {
	state := searchdrop.DropdownHidden
	d.do(func() {
		state = d.visible
		if d.loading {
			state = searchdrop.DropdownLoading
		}
	})
	return state
}

// do runs task on the Run goroutine and waits for it to finish.
// Tasks submitted after Run has returned are dropped.
func (d *Dispatcher) do(task func()) {
	done := make(chan struct{})
	select {
	case d.tasks <- func() { task(); close(done) }:
		<-done
	case <-d.stopped:
	}
}

func (d *Dispatcher) handleInput(text string) {
	d.cancelTimer()

	query := searchdrop.NormalizeQuery(text)
	if !searchdrop.IsSearchable(query) {
		d.hide()
		return
	}

	id := d.timerID
	d.timer = d.clock.AfterFunc(d.quiet, func() {
		d.do(func() {
			if id != d.timerID {
				return
			}
			d.timer = nil
			d.dispatch(query)
		})
	})
}

// cancelTimer stops the scheduled dispatch. The ID bump covers a timer that
// already fired and is waiting to be run.
func (d *Dispatcher) cancelTimer() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.timerID++
}

func (d *Dispatcher) dispatch(query string) {
	d.issued++
	token := d.issued
	d.active = token
	d.setLoading(true)

	ctx := d.ctx
	go func() {
		begin := d.clock.Now()
		results, err := d.searcher.Search(ctx, query)
		d.record(ctx, token, query, len(results), err, d.clock.Now().Sub(begin))

		select {
		case d.tasks <- func() { d.resolve(token, query, results, err) }:
		case <-d.stopped:
		}
	}()
}

func (d *Dispatcher) resolve(token uint64, query string, results []*searchdrop.SearchResult, err error) {
	if err != nil {
		d.logger.Error("search failed",
			"query", query,
			"token", token,
			"err", err,
		)
	}
	if token != d.active {
		d.logger.Debug("discarding stale search response",
			"query", query,
			"token", token,
			"active", d.active,
		)
		return
	}
	d.active = 0

	if err == nil {
		listing := searchdrop.NewListing(query, results, d.staticRoot)
		d.dropdown.Show(listing)
		d.visible = listing.State()
	}
	d.setLoading(false)
}

// hide hides the dropdown and stops any in-flight search from showing it again.
func (d *Dispatcher) hide() {
	d.active = 0
	d.setLoading(false)
	d.dropdown.Hide()
	d.visible = searchdrop.DropdownHidden
}

func (d *Dispatcher) setLoading(loading bool) {
	if d.loading == loading {
		return
	}
	d.loading = loading
	if li, ok := d.dropdown.(searchdrop.LoadingIndicator); ok {
		li.SetLoading(loading)
	}
}

func (d *Dispatcher) record(ctx context.Context, token uint64, query string, count int, err error, took time.Duration) {
	if d.searchLog == nil {
		return
	}
	entry := &searchdrop.SearchLogEntry{
		Query:       query,
		Token:       token,
		ResultCount: count,
		Duration:    took,
		CreatedAt:   d.clock.Now(),
	}
	if err != nil {
		entry.Error = err.Error()
		entry.ResultCount = 0
	}
	if err := d.searchLog.RecordSearch(ctx, entry); err != nil {
		d.logger.Warn("failed to record search", "query", query, "err", err)
	}
}
