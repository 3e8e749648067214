/*
Copyright © 2026 GridStats Authors

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gridstats/pbpkit/internal/iocsv"
	"github.com/gridstats/pbpkit/internal/iodb"
	"github.com/gridstats/pbpkit/internal/ioenrich"
	"github.com/gridstats/pbpkit/internal/iofetch"
	"github.com/gridstats/pbpkit/internal/iosources"
	"github.com/gridstats/pbpkit/pkg/config"
	"github.com/gridstats/pbpkit/pkg/pbp"
	"github.com/gridstats/pbpkit/pkg/sources"
	"github.com/spf13/cobra"
)

// getEnrichCmd returns the enrich command.
func getEnrichCmd() *cobra.Command {
	var (
		output string
		store  bool
		live   bool
	)

	enrichCmd := &cobra.Command{
		Use:   "enrich <plays.csv>",
		Short: "Enrich a play-by-play CSV file",
		Long: `Enrich raw play-by-play records with derived columns.

This command:
  1. Reads the play-by-play CSV file
  2. Fetches the legacy-ID map and game metadata (cached, with
     graceful degradation when the network is unavailable)
  3. Parses play descriptions into passer/rusher/receiver columns
  4. Normalizes team codes and stabilizes player identities
  5. Recalculates fumble-adjusted efficiency and joins game metadata
  6. Writes the enriched CSV next to the input

Input row order is preserved exactly.

Examples:
  pbpkit enrich plays_2020.csv
  pbpkit enrich plays_2020.csv -o enriched.csv
  pbpkit enrich live_feed.csv --live
  pbpkit enrich plays_2020.csv --store`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			historical := !live
			cfg.Update([]config.Option{
				config.OptEnrichInputPath(args[0]),
				config.OptEnrichHistorical(&historical),
				config.OptEnrichStore(store),
			})
			if output != "" {
				cfg.Update([]config.Option{
					config.OptEnrichOutputPath(output),
				})
			}
			return runEnrich()
		},
	}

	enrichCmd.Flags().StringVarP(&output, "output", "o", "",
		"path for the enriched CSV (default: input with _enriched suffix)")
	enrichCmd.Flags().BoolVar(&store, "store", false,
		"also bulk-insert enriched plays into PostgreSQL")
	enrichCmd.Flags().BoolVar(&live, "live", false,
		"input uses live-era game identifiers (joins metadata on old_game_id)")

	return enrichCmd
}

func runEnrich() error {
	ctx := context.Background()

	plays, err := iocsv.ReadPlays(cfg.Enrich.InputPath)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	gn.Message("Read <em>%s</em> plays from %s",
		humanize.Comma(int64(len(plays))), cfg.Enrich.InputPath)

	srcs, err := iosources.New(cfg).Load()
	if err != nil {
		gn.Warn("Cannot load sources.yaml, using default locations")
		srcs = sources.Default()
	}

	fetcher := iofetch.New(cfg, srcs)
	enricher := ioenrich.New(cfg, fetcher, fetcher, nil)

	res, err := enricher.Enrich(ctx, plays)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	outPath := cfg.Enrich.OutputPath
	if outPath == "" {
		outPath = defaultOutputPath(cfg.Enrich.InputPath)
	}
	if err = iocsv.WritePlays(outPath, res); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	gn.Message("Wrote enriched plays to <em>%s</em>", outPath)

	if cfg.Enrich.Store {
		if err = storePlays(ctx, res); err != nil {
			gn.PrintErrorMessage(err)
			return err
		}
	}

	return nil
}

func storePlays(ctx context.Context, plays []pbp.Play) error {
	op := iodb.NewPgxOperator()
	if err := op.Connect(ctx, &cfg.Database); err != nil {
		return err
	}
	defer op.Close()

	n, err := iodb.NewPlayStore(cfg, op).InsertPlays(ctx, plays)
	if err != nil {
		return err
	}
	gn.Message("Stored <em>%s</em> plays in %s",
		humanize.Comma(int64(n)), cfg.Database.Database)
	return nil
}

// defaultOutputPath derives the output file name from the input:
// plays.csv becomes plays_enriched.csv.
func defaultOutputPath(input string) string {
	if strings.HasSuffix(input, ".csv") {
		return strings.TrimSuffix(input, ".csv") + "_enriched.csv"
	}
	return input + "_enriched.csv"
}
