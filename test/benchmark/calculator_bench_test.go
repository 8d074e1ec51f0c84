// Package benchmark provides performance benchmarks for the activity calculators.
//
// Every calculation is expected to stay well under the 10ms latency target
// of an interactive CLI call, including under concurrent use.
//
// Run with: go test ./test/benchmark/... -bench=. -benchmem
package benchmark

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/rshade/ecocalc/internal/carbon"
	"github.com/rshade/ecocalc/internal/format"
)

const (
	// maxLatencyMs is the maximum acceptable latency in milliseconds.
	maxLatencyMs = 10
)

var benchInputs = []struct {
	activity carbon.Activity
	input    carbon.Input
}{
	{carbon.ActivityBike, carbon.Input{Quantity: 5.2}},
	{carbon.ActivityTransit, carbon.Input{Quantity: 15.5, Category: carbon.CategoryBus}},
	{carbon.ActivityRemoteWork, carbon.Input{Quantity: 3, DistanceKm: 12.5}},
	{carbon.ActivityDiet, carbon.Input{Quantity: 7}},
	{carbon.ActivityPlastic, carbon.Input{Quantity: 10, Category: carbon.CategoryBottle}},
	{carbon.ActivityEnergy, carbon.Input{Quantity: 8.5, Category: carbon.CategoryRenewable}},
	{carbon.ActivityFlight, carbon.Input{Quantity: 1200, Category: carbon.CategoryMediumHaul}},
	{carbon.ActivityRecycling, carbon.Input{Quantity: 2.5, Category: carbon.CategoryPaper}},
	{carbon.ActivityShopping, carbon.Input{Quantity: 50, Category: carbon.CategoryClothing}},
	{carbon.ActivityFood, carbon.Input{Quantity: 1, Category: carbon.CategoryBeef}},
}

// BenchmarkCompute measures each calculator through the registry.
func BenchmarkCompute(b *testing.B) {
	for _, bi := range benchInputs {
		b.Run(string(bi.activity), func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _ = carbon.Compute(bi.activity, bi.input)
			}
		})
	}
}

// BenchmarkRecyclingCalculator measures the calculator with the most comparisons.
func BenchmarkRecyclingCalculator(b *testing.B) {
	calc := carbon.NewRecyclingCalculator()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = calc.Savings(2.5, carbon.CategoryPaper)
	}
}

// BenchmarkNewView measures result formatting, which dominates a CLI call.
func BenchmarkNewView(b *testing.B) {
	result, err := carbon.Compute(carbon.ActivityRecycling, carbon.Input{Quantity: 2.5, Category: carbon.CategoryPaper})
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = format.NewView(result)
	}
}

// BenchmarkToFixed measures exact decimal rounding.
func BenchmarkToFixed(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = format.ToFixed(39.285714285714285, 1)
	}
}

// TestLatencyRequirement_AllCalculators verifies each calculation and its
// formatting completes within the latency target.
func TestLatencyRequirement_AllCalculators(t *testing.T) {
	for _, bi := range benchInputs {
		t.Run(string(bi.activity), func(t *testing.T) {
			start := time.Now()
			result, err := carbon.Compute(bi.activity, bi.input)
			if err != nil {
				t.Fatalf("compute %s: %v", bi.activity, err)
			}
			_ = format.NewView(result)
			elapsed := time.Since(start)

			if elapsed.Milliseconds() > maxLatencyMs {
				t.Errorf("%s calculation took %v, exceeds %dms limit", bi.activity, elapsed, maxLatencyMs)
			} else {
				t.Logf("%s calculation completed in %v", bi.activity, elapsed)
			}
		})
	}
}

// TestConcurrentLatency verifies calculators are safe and fast under concurrent load.
func TestConcurrentLatency(t *testing.T) {
	const goroutines = 150
	var wg sync.WaitGroup
	errs := make(chan error, goroutines*2)

	want, err := carbon.Compute(carbon.ActivityFood, carbon.Input{Quantity: 1, Category: carbon.CategoryBeef})
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			start := time.Now()
			got, err := carbon.Compute(carbon.ActivityFood, carbon.Input{Quantity: 1, Category: carbon.CategoryBeef})
			if err != nil {
				errs <- err
				return
			}
			if got.Value != want.Value {
				errs <- fmt.Errorf("concurrent result %v differs from %v", got.Value, want.Value)
			}
			if time.Since(start).Milliseconds() > maxLatencyMs {
				errs <- fmt.Errorf("exceeded latency under concurrent load")
			}
		}()
	}

	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}
}
