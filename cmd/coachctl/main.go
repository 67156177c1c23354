// Command coachctl runs the safety engine offline against a TOML scenario file.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
