package divedeco

import (
	"context"
	"errors"
	"testing"
)

func TestResolveBatch(t *testing.T) {
	p := mustLoad(t)
	plans := []DivePlan{
		{Dive{35, 42}, 60, 35},
		{Dive{10, 463}, 60, 35},
		{Dive{200, 10}, 60, 35},
		{Dive{40, 170}, 0, 0},
	}
	for range 50 {
		plans = append(plans, DivePlan{Dive{23, 461}, 60, 10})
	}
	results, err := p.ResolveBatch(context.Background(), plans, 4)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != len(plans) {
		t.Fatalf("expected %d results, got %d", len(plans), len(results))
	}
	for i, r := range results {
		if r.Plan != plans[i] {
			t.Fatalf("result %d out of order: %v", i, r.Plan)
		}
		if want := p.Resolve(plans[i]); r.Group != want.Group || r.Residual != want.Residual {
			t.Fatalf("result %d differs from sequential resolution", i)
		}
	}
	if r := results[0]; r.NoDecompressionLimit != 232 || r.Group.Letter != "D" || r.Residual.RNT != 33 {
		t.Fatalf("unexpected first result %+v", r)
	}
	if r := results[1]; r.Group.Source != FromOverride || r.Residual.RepetLetter != "" {
		t.Fatalf("unexpected override result %+v", r)
	}
	if r := results[2]; r.Group.Source != OutOfDepthRange || r.NoDecompressionLimit != 0 {
		t.Fatalf("unexpected out-of-depth result %+v", r)
	}
	if r := results[3]; r.Profile.AirTAT != "9:20" {
		t.Fatalf("unexpected profile %+v", r.Profile)
	}
	if r := results[len(results)-1]; !r.Residual.Undetermined() {
		t.Fatalf("expected undetermined RNT, got %+v", r.Residual)
	}
}

func TestResolveBatchCancelled(t *testing.T) {
	p := mustLoad(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := p.ResolveBatch(ctx, []DivePlan{{Dive{35, 42}, 60, 35}}, 0)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

// lateCancelContext reports cancellation but never signals it on Done, as a
// context cancelled after the last plan has been resolved looks to callers.
type lateCancelContext struct {
	context.Context
}

func (lateCancelContext) Done() <-chan struct{} { return nil }
func (lateCancelContext) Err() error            { return context.Canceled }

func TestResolveBatchCancelledAfterCompletion(t *testing.T) {
	p := mustLoad(t)
	plans := []DivePlan{{Dive{35, 42}, 60, 35}, {Dive{40, 170}, 0, 0}}
	results, err := p.ResolveBatch(lateCancelContext{context.Background()}, plans, 1)
	if err != nil {
		t.Fatalf("complete batch discarded: %v", err)
	}
	if len(results) != 2 || results[1].Profile.AirTAT != "9:20" {
		t.Fatalf("unexpected results %+v", results)
	}
}

func TestResolveBatchEmpty(t *testing.T) {
	p := mustLoad(t)
	results, err := p.ResolveBatch(context.Background(), nil, 2)
	if err != nil || len(results) != 0 {
		t.Fatalf("expected no results, got %v, %v", results, err)
	}
}
