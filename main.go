// main is the entry point for the radar CLI.
package main

import (
	"github.com/huangsam/radar/cmd"
	"github.com/huangsam/radar/internal/contract"
	"github.com/huangsam/radar/internal/iocache"
)

func main() {
	defer iocache.CloseStores()
	defer func() {
		if err := cmd.StopProfiling(); err != nil {
			contract.LogWarn("Error stopping profiling", err)
		}
	}()

	if err := cmd.Execute(); err != nil {
		iocache.CloseStores()
		contract.LogFatal("Error starting CLI", err)
	}
}
