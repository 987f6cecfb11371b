// Copyright © 2018-2020 Wei Shen <shenwei356@gmail.com>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package cmd

import (
	"fmt"
	"io"
	"math"
	"runtime"

	"github.com/shenwei356/unitax"
	"github.com/shenwei356/unitax/record"
	"github.com/shenwei356/unitax/taxonomyio"
	"github.com/spf13/cobra"
)

var taxa2aggCmd = &cobra.Command{
	Use:   "taxa2agg",
	Short: "Aggregate grouped taxon IDs to one consensus taxon per group",
	Long: `Aggregate grouped taxon IDs to one consensus taxon per group

Reads the ">header" / taxon-ID-lines grouped format and writes one
">header"/taxon-id pair per group. -m/--method selects the LCA
implementation (tree or rmq, behaviourally equivalent); -s/--strategy
selects lca, lcastar, hybrid, or mrtl.

`,
	Run: func(cmd *cobra.Command, args []string) {
		opt := getOptions(cmd)
		runtime.GOMAXPROCS(opt.NumCPUs)

		taxonomyFile := getFlagString(cmd, "taxonomy")
		method := getFlagString(cmd, "method")
		strategy := getFlagString(cmd, "strategy")
		factor := getFlagNonNegativeFloat64(cmd, "factor")
		rankedOnly := getFlagBool(cmd, "ranked-only")
		lowerBound := getFlagNonNegativeFloat64(cmd, "lower-bound")

		taxonomy, err := taxonomyio.Load(taxonomyFile)
		checkError(err)

		agg, err := buildAggregator(taxonomy, method, strategy, factor)
		checkError(err)

		in, err := inFile(getFlagString(cmd, "in-file"))
		checkError(err)
		defer in.Close()

		out, err := outFile(getFlagString(cmd, "out-file"))
		checkError(err)
		defer out.Close()

		writer := record.NewWriter(out)
		scanner := record.NewScanner(in)

		for {
			g, err := scanner.Next()
			if err == io.EOF {
				break
			}
			checkError(err)

			taxa := filterGroup(taxonomy, g, rankedOnly, lowerBound)
			if len(taxa) == 0 {
				continue
			}

			id, err := agg.Aggregate(taxa)
			checkError(err)

			if err := writer.WriteResult(g.Header, id); err == io.ErrClosedPipe {
				return
			}
		}
	},
}

// filterGroup applies --ranked-only and --lower-bound filtering to a
// group's taxa before aggregation: ranked-only drops any taxon whose own
// rank is unassigned (Rank == unitax.NoRank), and lowerBound drops any
// scored taxon (Scores[i] not NaN) below the threshold. Unscored taxa
// always pass the lower-bound check, mirroring how a missing score is
// treated as "no evidence to discard" rather than "zero evidence".
func filterGroup(taxonomy *unitax.TaxonList, g record.Group, rankedOnly bool, lowerBound float64) []unitax.TaxonID {
	if !rankedOnly && lowerBound <= 0 {
		return g.Taxa
	}

	taxa := make([]unitax.TaxonID, 0, len(g.Taxa))
	for i, id := range g.Taxa {
		if rankedOnly {
			t, ok := taxonomy.Get(id)
			if !ok || t.Rank == unitax.NoRank {
				continue
			}
		}
		if lowerBound > 0 {
			score := g.Scores[i]
			if !math.IsNaN(score) && score < lowerBound {
				continue
			}
		}
		taxa = append(taxa, id)
	}
	return taxa
}

func buildAggregator(taxonomy *unitax.TaxonList, method, strategy string, factor float64) (unitax.Aggregator, error) {
	switch strategy {
	case "lca":
		switch method {
		case "tree":
			return unitax.NewLCAAggregator(taxonomy), nil
		case "rmq":
			return unitax.NewRMQLCAAggregator(taxonomy)
		default:
			return nil, fmt.Errorf("unknown method %q, expected tree or rmq", method)
		}
	case "lcastar":
		return unitax.NewLCAStarAggregator(taxonomy, factor), nil
	case "hybrid":
		return unitax.NewHybridAggregator(taxonomy, factor), nil
	case "mrtl":
		return unitax.NewMRTLAggregator(taxonomy), nil
	default:
		return nil, fmt.Errorf("unknown strategy %q, expected lca, lcastar, hybrid, or mrtl", strategy)
	}
}

func init() {
	RootCmd.AddCommand(taxa2aggCmd)

	taxa2aggCmd.Flags().StringP("taxonomy", "t", "", "taxonomy TSV file (required)")
	taxa2aggCmd.Flags().StringP("method", "m", "rmq", "LCA implementation: tree or rmq")
	taxa2aggCmd.Flags().StringP("strategy", "s", "lca", "aggregation strategy: lca, lcastar, hybrid, or mrtl")
	taxa2aggCmd.Flags().Float64P("factor", "f", 1, "weight-share threshold for lcastar/hybrid (lcastar: 1=lca; hybrid: 0=mrtl, 1=root unless the winner's chain holds every input)")
	taxa2aggCmd.Flags().Bool("ranked-only", false, "drop taxa with no assigned rank before aggregating")
	taxa2aggCmd.Flags().Float64("lower-bound", 0, "drop scored taxa below this score before aggregating (0 disables, unscored taxa always pass)")
	taxa2aggCmd.Flags().StringP("in-file", "i", "-", `input file ("-" for stdin)`)
	taxa2aggCmd.Flags().StringP("out-file", "o", "-", `output file ("-" for stdout)`)
	taxa2aggCmd.MarkFlagRequired("taxonomy")
}
