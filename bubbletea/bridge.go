// Package bubbletea provides an interactive terminal search dropdown built on
// Bubble Tea.
package bubbletea

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/searchdrop"
)

// Compile-time interface verification.
var (
	_ searchdrop.Dropdown         = (*Bridge)(nil)
	_ searchdrop.LoadingIndicator = (*Bridge)(nil)
)

// ShowMsg replaces the dropdown content and makes it visible.
type ShowMsg struct {
	Listing *searchdrop.Listing
}

// HideMsg hides the dropdown.
type HideMsg struct{}

// LoadingMsg reports whether a search is in flight.
type LoadingMsg struct {
	Loading bool
}

// Bridge turns dispatcher calls into Bubble Tea messages. The dispatcher
// must never block on the program, which itself blocks on the dispatcher
// while handling keys, so calls are queued without bound and forwarded in
// order by Run.
type Bridge struct {
	mu     sync.Mutex
	queue  []tea.Msg
	notify chan struct{}
}

// NewBridge creates a new Bridge.
func NewBridge() *Bridge {
	return &Bridge{notify: make(chan struct{}, 1)}
}

// Show queues a ShowMsg.
func (b *Bridge) Show(listing *searchdrop.Listing) {
	b.push(ShowMsg{Listing: listing})
}

// Hide queues a HideMsg.
func (b *Bridge) Hide() {
	b.push(HideMsg{})
}

// SetLoading queues a LoadingMsg.
func (b *Bridge) SetLoading(loading bool) {
	b.push(LoadingMsg{Loading: loading})
}

func (b *Bridge) push(msg tea.Msg) {
	b.mu.Lock()
	b.queue = append(b.queue, msg)
	b.mu.Unlock()

	select {
	case b.notify <- struct{}{}:
	default:
	}
}

// Run forwards queued messages to send, typically (*tea.Program).Send,
// until ctx is canceled.
func (b *Bridge) Run(ctx context.Context, send func(tea.Msg)) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-b.notify:
		}

		b.mu.Lock()
		msgs := b.queue
		b.queue = nil
		b.mu.Unlock()

		for _, msg := range msgs {
			send(msg)
		}
	}
}
