// main is the entry point of the altscore CLI.
package main

import (
	"github.com/kademeqms/altscore/cmd"
	"github.com/kademeqms/altscore/internal/contract"
	"github.com/kademeqms/altscore/internal/datastore"
)

func main() {
	defer datastore.CloseStores()
	if err := cmd.Execute(); err != nil {
		datastore.CloseStores()
		contract.LogFatal("Command failed", err)
	}
}
