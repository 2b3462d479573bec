package main

import (
	"context"
	"errors"
	"log"
	"time"

	"autodrill/internal/app/colony"
)

type tickAdvancer interface {
	AdvanceTicks(ctx context.Context, n int) (colony.TickReport, error)
}

// runTickLoop advances the colony by batch ticks every interval until ctx is
// done. A non-positive interval or batch disables the loop.
func runTickLoop(ctx context.Context, sim tickAdvancer, interval time.Duration, batch int) {
	if interval <= 0 || batch <= 0 {
		log.Println("tick loop disabled; advance the colony through /api/sim/tick")
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			report, err := sim.AdvanceTicks(ctx, batch)
			if err != nil {
				if errors.Is(err, context.Canceled) {
					return
				}
				log.Printf("advance ticks: %v", err)
				continue
			}
			for _, f := range report.Fired {
				log.Printf("tick %d: drill %s %s x%d", f.Tick, f.DrillID, f.Result.Outcome, f.Result.Quantity)
			}
		}
	}
}
