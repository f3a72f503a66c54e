package bubbletea_test

import (
	"context"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/searchdrop"
	sdtea "github.com/fwojciec/searchdrop/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// collector records messages forwarded by a Bridge.
type collector struct {
	mu   sync.Mutex
	msgs []tea.Msg
}

func (c *collector) send(msg tea.Msg) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.msgs = append(c.msgs, msg)
}

func (c *collector) snapshot() []tea.Msg {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]tea.Msg(nil), c.msgs...)
}

func TestBridge(t *testing.T) {
	t.Parallel()

	t.Run("forwards calls in order", func(t *testing.T) {
		t.Parallel()

		b := sdtea.NewBridge()
		listing := searchdrop.NewListing("car", []*searchdrop.SearchResult{{URL: "/a/1", Title: "Car"}}, searchdrop.DefaultStaticRoot)

		// Calls made before Run starts are queued, not dropped.
		b.SetLoading(true)
		b.Show(listing)
		b.SetLoading(false)
		b.Hide()

		var c collector
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go func() { _ = b.Run(ctx, c.send) }()

		require.Eventually(t, func() bool { return len(c.snapshot()) == 4 }, time.Second, 5*time.Millisecond)
		assert.Equal(t, []tea.Msg{
			sdtea.LoadingMsg{Loading: true},
			sdtea.ShowMsg{Listing: listing},
			sdtea.LoadingMsg{Loading: false},
			sdtea.HideMsg{},
		}, c.snapshot())
	})

	t.Run("does not block callers while send is blocked", func(t *testing.T) {
		t.Parallel()

		b := sdtea.NewBridge()
		release := make(chan struct{})
		var c collector
		send := func(msg tea.Msg) {
			<-release
			c.send(msg)
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go func() { _ = b.Run(ctx, send) }()

		done := make(chan struct{})
		go func() {
			for range 100 {
				b.Hide()
			}
			close(done)
		}()

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("Hide blocked on a stalled program")
		}

		close(release)
		require.Eventually(t, func() bool { return len(c.snapshot()) == 100 }, time.Second, 5*time.Millisecond)
	})

	t.Run("returns when context is canceled", func(t *testing.T) {
		t.Parallel()

		b := sdtea.NewBridge()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := b.Run(ctx, func(tea.Msg) {})

		assert.ErrorIs(t, err, context.Canceled)
	})
}
