// main is the entry point for the hivetrend CLI.
package main

import (
	"github.com/apiarylab/hivetrend/cmd"
	"github.com/apiarylab/hivetrend/internal/contract"
	"github.com/apiarylab/hivetrend/internal/snapstore"
)

func main() {
	defer snapstore.CloseStores()

	// The global manager is populated lazily by the command setup once the
	// configured backend is known.
	cmd.SetSnapshotManager(snapstore.Manager)

	if err := cmd.Execute(); err != nil {
		contract.LogFatal("Command failed", err)
	}
}
