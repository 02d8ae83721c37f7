package divedeco

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Resolution collects every query result for one dive plan.
type Resolution struct {
	Plan                 DivePlan
	NoDecompressionLimit uint16
	Group                Designation
	Residual             RNTReport
	Profile              DecompressionProfile
}

// Resolve runs all queries for a single dive plan.
func (p *Planner) Resolve(plan DivePlan) Resolution {
	return Resolution{
		Plan:                 plan,
		NoDecompressionLimit: p.NoDecompressionLimit(plan.Depth),
		Group:                p.GroupLetter(plan.Dive),
		Residual:             p.ResidualNitrogen(plan),
		Profile:              p.DecompressionProfile(plan.Dive),
	}
}

// ResolveBatch resolves many dive plans concurrently with at most workers
// goroutines (GOMAXPROCS if workers <= 0). Results keep the order of plans.
// The only error returned is the context's, if it is cancelled before all
// plans are resolved.
func (p *Planner) ResolveBatch(ctx context.Context, plans []DivePlan, workers int) ([]Resolution, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	results := make([]Resolution, len(plans))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	dispatched := 0
	for i := range plans {
		if gctx.Err() != nil {
			break
		}
		dispatched++
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = p.Resolve(plans[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if dispatched < len(plans) {
		return nil, ctx.Err()
	}
	return results, nil
}
