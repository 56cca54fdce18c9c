// main is the entry point for the paperforest CLI.
package main

import (
	"github.com/IsaacParker30/paper-read/cmd"
	"github.com/IsaacParker30/paper-read/internal/contract"
	"github.com/IsaacParker30/paper-read/internal/logstore"
)

func main() {
	cmd.SetStoreManager(logstore.Manager)

	err := cmd.Execute()

	// Close the store and flush profiles before reporting any failure,
	// since LogFatal exits the process.
	logstore.CloseStore()
	if perr := cmd.StopProfiling(); perr != nil {
		contract.LogWarn("Failed to stop profiling", perr)
	}

	if err != nil {
		contract.LogFatal("Command failed", err)
	}
}
