package integration

import (
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/iwvelando/credit-simulator/internal/config"
	"github.com/iwvelando/credit-simulator/internal/simulator"
	"go.uber.org/zap"
)

// TestRunner is a simple test runner for debugging
func TestMain(m *testing.M) {
	// Run tests
	code := m.Run()
	os.Exit(code)
}

// TestPerformance tests performance characteristics
func TestPerformance(t *testing.T) {
	// Create a no-op logger to avoid debug output during testing
	logger := zap.NewNop()

	start := time.Now()

	conf, err := config.LoadConfiguration("../test_config.yaml")
	if err != nil {
		t.Fatalf("LoadConfiguration failed: %v", err)
	}
	loadTime := time.Since(start)

	params := conf.Parameters.ToSimulatorParameters()

	start = time.Now()
	sim := simulator.New(logger, params, simulator.AmountToInstallment)
	for term := params.Bounds.TermMin; term <= params.Bounds.TermMax; term++ {
		sim.UpdateTerm(strconv.Itoa(term))
		for amount := params.Bounds.AmountMin; amount <= params.Bounds.AmountMax; amount += 1000000 {
			sim.SetAmount(float64(amount))
		}
	}
	deriveTime := time.Since(start)

	start = time.Now()
	sim.SetMode(simulator.InstallmentToAmount)
	rows := 0
	for term := params.Bounds.TermMin; term <= params.Bounds.TermMax; term++ {
		sim.SetTerm(float64(term))
		rows += len(sim.Schedule())
	}
	scheduleTime := time.Since(start)

	totalTime := loadTime + deriveTime + scheduleTime

	t.Logf("Performance metrics:")
	t.Logf("  Load config: %v", loadTime)
	t.Logf("  Derive results: %v", deriveTime)
	t.Logf("  Generate schedules: %v", scheduleTime)
	t.Logf("  Total time: %v", totalTime)

	// Performance expectations (adjust as needed)
	if totalTime > 10*time.Second {
		t.Errorf("Total processing time %v exceeds 10 second threshold", totalTime)
	}

	// Every term from min to max yields term+1 rows
	expectedRows := 0
	for term := params.Bounds.TermMin; term <= params.Bounds.TermMax; term++ {
		expectedRows += term + 1
	}
	if rows != expectedRows {
		t.Errorf("Expected %d schedule rows, got %d", expectedRows, rows)
	}
}

// TestRepeatedSimulationsAreStable checks that recomputing the same inputs
// many times yields identical results.
func TestRepeatedSimulationsAreStable(t *testing.T) {
	logger := zap.NewNop()

	conf, err := config.LoadConfiguration("../test_config.yaml")
	if err != nil {
		t.Fatalf("LoadConfiguration failed: %v", err)
	}

	sim := simulator.New(logger, conf.Parameters.ToSimulatorParameters(), simulator.InstallmentToAmount)
	baseline := sim.Results()

	for i := 0; i < 100; i++ {
		sim.Recompute()
		if sim.Results() != baseline {
			t.Fatalf("Iteration %d: results changed from %+v to %+v", i, baseline, sim.Results())
		}
	}
}
