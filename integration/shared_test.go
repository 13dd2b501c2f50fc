//go:build basic || database

// Package integration runs the altscore binary end to end.
// These tests are excluded from normal test runs due to build tags.
// To run these tests: go test -tags basic ./integration
// With Docker available: go test -tags database ./integration
package integration

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"testing"

	"github.com/kademeqms/altscore/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	// sharedBinaryPath holds the path to a shared altscore binary built once for all tests.
	sharedBinaryPath string

	// buildOnce ensures we only build the binary once.
	buildOnce sync.Once

	// buildMutex protects the shared binary path.
	buildMutex sync.Mutex

	// tempDir holds the temp directory for cleanup.
	tempDir string
)

// TestMain handles setup and cleanup for all integration tests.
func TestMain(m *testing.M) {
	code := m.Run()

	// Cleanup the shared binary after all tests
	if tempDir != "" {
		_ = os.RemoveAll(tempDir)
	}

	os.Exit(code)
}

// getAltscoreBinary returns the path to the altscore binary, building it once if needed.
func getAltscoreBinary() string {
	buildMutex.Lock()
	defer buildMutex.Unlock()

	buildOnce.Do(func() {
		var err error
		tempDir, err = os.MkdirTemp("", "altscore-integration-*")
		if err != nil {
			panic(fmt.Sprintf("failed to create temp dir: %v", err))
		}

		binaryPath := filepath.Join(tempDir, "altscore")
		buildCmd := exec.Command("go", "build", "-o", binaryPath, ".")
		buildCmd.Dir = ".." // Build from parent directory (project root)
		if err := buildCmd.Run(); err != nil {
			panic(fmt.Sprintf("failed to build altscore: %v", err))
		}

		sharedBinaryPath = binaryPath
	})

	return sharedBinaryPath
}

// runAltscore runs the binary with extra environment variables and returns its output.
func runAltscore(t *testing.T, env map[string]string, args ...string) (string, error) {
	t.Helper()
	cmd := exec.Command(getAltscoreBinary(), args...)
	cmd.Dir = t.TempDir()
	cmd.Env = append(os.Environ(), "HOME="+cmd.Dir)
	for k, v := range env {
		cmd.Env = append(cmd.Env, k+"="+v)
	}
	output, err := cmd.CombinedOutput()
	if err != nil {
		t.Logf("Command failed: %s\nOutput: %s", cmd.String(), string(output))
	}
	return string(output), err
}

// mustRun runs the binary and fails the test on error.
func mustRun(t *testing.T, env map[string]string, args ...string) string {
	t.Helper()
	out, err := runAltscore(t, env, args...)
	require.NoError(t, err, out)
	return out
}

// runScoringWorkflow builds a two-supplier benchmark, scores it and checks the ranking.
// Entity ids assume an empty store.
func runScoringWorkflow(t *testing.T, env map[string]string) {
	t.Helper()

	mustRun(t, env, "bench", "create", "Suppliers")
	mustRun(t, env, "criterion", "add", "1", "Quality", "60")
	mustRun(t, env, "criterion", "add", "1", "Delivery", "40")
	mustRun(t, env, "alt", "add", "1", "Acme", "--attr", "unit_price=100", "--attr", "risk_level=low")
	mustRun(t, env, "alt", "add", "1", "Globex", "--attr", "unit_price=80")

	// Acme: (90*60 + 70*40) / 100 = 82; Globex: (60*60 + 80*40) / 100 = 68
	mustRun(t, env, "score", "set", "1", "1", "90")
	mustRun(t, env, "score", "set", "1", "2", "70")
	mustRun(t, env, "score", "set", "2", "1", "60")
	mustRun(t, env, "score", "set", "2", "2", "80")
	mustRun(t, env, "procon", "add", "1", "pro", "Local warehouse")

	outFile := filepath.Join(t.TempDir(), "ranking.json")
	mustRun(t, env, "rank", "1", "--output", "json", "--output-file", outFile)

	data, err := os.ReadFile(outFile)
	require.NoError(t, err)
	var report schema.ComparisonReport
	require.NoError(t, json.Unmarshal(data, &report))

	require.Len(t, report.Ranking, 2)
	assert.Equal(t, "Acme", report.Ranking[0].Name)
	assert.InDelta(t, 82.0, report.Ranking[0].Average, 1e-6)
	assert.Equal(t, "Globex", report.Ranking[1].Name)
	assert.InDelta(t, 68.0, report.Ranking[1].Average, 1e-6)
	assert.False(t, report.Ranking[0].IsAutoCalculated)

	mustRun(t, env, "matrix", "1")
	mustRun(t, env, "best", "1")
	mustRun(t, env, "store", "status")
}
