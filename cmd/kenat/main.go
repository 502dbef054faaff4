// Command kenat is the command-line interface to the Ethiopian calendar:
// conversions, date arithmetic, the Bahire Hasab and holiday listings.
//
// Settings come from flags, KENAT_* environment variables (KENAT_LANG,
// KENAT_OUTPUT, KENAT_DATABASE, KENAT_DEBUG) and an optional .kenat.yaml
// in the home or current directory, in that order of precedence.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
