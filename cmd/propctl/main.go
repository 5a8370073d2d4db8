// Command propctl inspects encoded graph property values and queries a
// SQLite graph store.
package main

import (
	"os"

	"github.com/Rascat/gradoop/internal/cli"
)

func main() {
	os.Exit(cli.Execute(os.Args[1:], os.Stdout, os.Stderr))
}
