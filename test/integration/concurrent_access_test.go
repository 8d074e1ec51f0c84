// Package integration provides end-to-end tests for the activity calculators.
//
// This file contains concurrent access tests verifying that every calculator
// is safe under high concurrency (100+ goroutines).
//
// Run with: go test ./test/integration/... -v -run Concurrent
package integration

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/ecocalc/internal/carbon"
)

const (
	// numGoroutines is the number of concurrent goroutines for stress testing.
	numGoroutines = 150

	// numIterations is the number of iterations per goroutine.
	numIterations = 10
)

var concurrentInputs = map[carbon.Activity]carbon.Input{
	carbon.ActivityBike:       {Quantity: 5.2},
	carbon.ActivityTransit:    {Quantity: 15.5, Category: carbon.CategoryBus},
	carbon.ActivityRemoteWork: {Quantity: 3, DistanceKm: 12.5},
	carbon.ActivityDiet:       {Quantity: 7},
	carbon.ActivityPlastic:    {Quantity: 10, Category: carbon.CategoryBottle},
	carbon.ActivityEnergy:     {Quantity: 8.5, Category: carbon.CategoryRenewable},
	carbon.ActivityFlight:     {Quantity: 1200, Category: carbon.CategoryMediumHaul},
	carbon.ActivityRecycling:  {Quantity: 2.5, Category: carbon.CategoryPaper},
	carbon.ActivityShopping:   {Quantity: 50, Category: carbon.CategoryClothing},
	carbon.ActivityFood:       {Quantity: 1, Category: carbon.CategoryBeef},
}

// TestConcurrentAccess_AllCalculators spawns 150 goroutines per calculator,
// each making 10 calls, and verifies every call succeeds with the same result.
func TestConcurrentAccess_AllCalculators(t *testing.T) {
	for _, calc := range carbon.Calculators() {
		in := concurrentInputs[calc.Activity()]

		t.Run(string(calc.Activity()), func(t *testing.T) {
			want, err := calc.Compute(in)
			require.NoError(t, err)

			var wg sync.WaitGroup
			errs := make(chan error, numGoroutines*numIterations)
			results := make(chan carbon.Result, numGoroutines*numIterations)

			for i := 0; i < numGoroutines; i++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					for j := 0; j < numIterations; j++ {
						r, err := calc.Compute(in)
						if err != nil {
							errs <- err
							return
						}
						results <- r
					}
				}()
			}

			wg.Wait()
			close(errs)
			close(results)

			require.Empty(t, errs, "No errors should occur during concurrent access")

			count := 0
			for r := range results {
				assert.Equal(t, want, r, "All results should be identical for same input")
				count++
			}
			assert.Equal(t, numGoroutines*numIterations, count,
				"Should have received all expected results")
		})
	}
}

// TestConcurrentAccess_FactorTables verifies readers cannot corrupt the
// shared factor tables through the copies they receive.
func TestConcurrentAccess_FactorTables(t *testing.T) {
	var wg sync.WaitGroup

	for i := 0; i < numGoroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < numIterations; j++ {
				factors := carbon.Factors(carbon.ActivityEnergy)
				for k := range factors {
					factors[k].CO2PerUnit = -1
				}
			}
		}()
	}
	wg.Wait()

	f, ok := carbon.LookupFactor(carbon.ActivityEnergy, carbon.CategoryGridMix)
	require.True(t, ok)
	assert.Equal(t, 0.4, f.CO2PerUnit)
}
