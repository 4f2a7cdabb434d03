package main

import (
	"os"

	"quick-init/cmd"
)

// main delegates to cmd.Execute, which parses flags, runs the bootstrap
// pipeline, and maps any error to the process exit code.
func main() {
	os.Exit(cmd.Execute())
}
