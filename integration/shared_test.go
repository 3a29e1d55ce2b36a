//go:build basic || database

package integration

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"testing"
)

var (
	// sharedHivetrendPath holds the path to a shared hivetrend binary built once for all tests.
	sharedHivetrendPath string

	// buildOnce ensures we only build the binary once.
	buildOnce sync.Once

	// buildMutex protects the shared binary path.
	buildMutex sync.Mutex

	// tempDir holds the temp directory for cleanup.
	tempDir string
)

// TestMain handles setup and cleanup for all integration tests.
func TestMain(m *testing.M) {
	// Run all tests
	code := m.Run()

	// Cleanup the shared binary after all tests
	if tempDir != "" {
		_ = os.RemoveAll(tempDir)
	}

	os.Exit(code)
}

// getHivetrendBinary returns the path to the hivetrend binary, building it once if needed.
func getHivetrendBinary() string {
	buildMutex.Lock()
	defer buildMutex.Unlock()

	buildOnce.Do(func() {
		// Create a temp directory for the binary
		var err error
		tempDir, err = os.MkdirTemp("", "hivetrend-integration-*")
		if err != nil {
			panic(fmt.Sprintf("failed to create temp dir: %v", err))
		}

		hivetrendPath := filepath.Join(tempDir, "hivetrend")
		buildCmd := exec.Command("go", "build", "-o", hivetrendPath, "./cmd/hivetrend")
		buildCmd.Dir = ".." // Build from parent directory (project root)
		err = buildCmd.Run()
		if err != nil {
			panic(fmt.Sprintf("failed to build hivetrend: %v", err))
		}

		sharedHivetrendPath = hivetrendPath
	})

	return sharedHivetrendPath
}

// writeSampleExport writes a latin-1 semicolon export into dir and returns its path.
func writeSampleExport(dir string) (string, error) {
	data := "Stockname;Datum des Eintrags;Gewicht;Gez\xE4hlte Milben;Z\xE4hlzeitraum in Tagen\n" +
		"Hive 1;1.4.2024;32,5;10;5\n" +
		"Hive 1;8.4.2024;33.1;;\n" +
		"Hive 2;1.4.2024;18;0;7\n"
	path := filepath.Join(dir, "daten.csv")
	return path, os.WriteFile(path, []byte(data), 0o644)
}
