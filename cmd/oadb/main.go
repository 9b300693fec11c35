// Package main provides the oadb CLI application.
// oadb ingests the OpenAlex bulk snapshot into PostgreSQL.
package main

import (
	"os"
)

func main() {
	os.Exit(run())
}
