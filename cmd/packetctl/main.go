// Command packetctl builds chargeback evidence packets from a local case
// file and local proof files.
package main

import (
	"fmt"
	"os"

	"github.com/linesmerrill/dispute-evidence-api/export"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, export.UserMessage(err))
		os.Exit(1)
	}
}
