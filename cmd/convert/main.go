// convert - temporal edge list converter
//
// convert turns a CSV of "vertex1,vertex2,timestamp" rows into a space-separated
// edge list with Unix epoch timestamps.
package main

import (
	"os"

	"github.com/ccollicutt/edgeconv/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
