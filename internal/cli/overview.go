package cli

import (
	"context"
	"fmt"
)

// Overview shows the dashboard stats.
func (a *App) Overview(ctx context.Context) error {
	if !a.enter(ScreenOverview) {
		return nil
	}

	stats, err := a.stats.Overview(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "could not load overview: %v\n", err)
		return err
	}
	renderOverview(a.out, stats)
	return nil
}
