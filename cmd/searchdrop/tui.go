package main

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/searchdrop/bubbletea"
	"github.com/fwojciec/searchdrop/dispatch"
	"golang.org/x/sync/errgroup"
)

// Run executes the tui command.
func (c *TuiCmd) Run(deps *Dependencies) error {
	ctx, cancel := context.WithCancel(deps.Ctx)
	defer cancel()

	bridge := bubbletea.NewBridge()
	opts := []dispatch.Option{
		dispatch.WithLogger(deps.Logger),
		dispatch.WithQuietInterval(deps.Config.QuietInterval),
		dispatch.WithStaticRoot(deps.Config.StaticRoot),
	}
	if deps.SearchLog != nil {
		opts = append(opts, dispatch.WithSearchLog(deps.SearchLog))
	}
	d := dispatch.New(deps.Searcher, bridge, opts...)

	modelOpts := []bubbletea.Option{
		bubbletea.WithContext(ctx),
		bubbletea.WithLogger(deps.Logger),
	}
	if deps.Reader != nil {
		modelOpts = append(modelOpts, bubbletea.WithPageReader(deps.Reader))
	}
	if deps.Saver != nil {
		modelOpts = append(modelOpts, bubbletea.WithPageSaver(deps.Saver))
	}
	if deps.Inliner != nil {
		modelOpts = append(modelOpts, bubbletea.WithInliner(deps.Inliner))
	}

	p := tea.NewProgram(bubbletea.NewModel(d, modelOpts...),
		tea.WithContext(ctx),
		tea.WithInput(deps.Stdin),
		tea.WithOutput(deps.Stdout),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return d.Run(gctx) })
	g.Go(func() error { return bridge.Run(gctx, p.Send) })
	g.Go(func() error {
		defer cancel()
		_, err := p.Run()
		if errors.Is(err, tea.ErrProgramKilled) {
			return nil
		}
		return err
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
