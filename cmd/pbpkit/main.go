// Package main provides the pbpkit CLI application.
// pbpkit enriches American football play-by-play data with
// analysis-ready derived columns.
package main

import (
	"github.com/gridstats/pbpkit/cmd"
)

func main() {
	cmd.Execute()
}
