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
	"bufio"
	"runtime"
	"sort"
	"strconv"
	"strings"

	humanize "github.com/dustin/go-humanize"
	"github.com/shenwei356/stable"
	"github.com/shenwei356/unitax"
	"github.com/shenwei356/unitax/taxonomyio"
	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Summarise a stream of taxon IDs by rank",
	Long: `Summarise a stream of taxon IDs by rank

Reads one taxon ID per line, snaps each to -r/--rank, and prints a table
of rank-snapped taxon counts sorted by descending count.

`,
	Run: func(cmd *cobra.Command, args []string) {
		opt := getOptions(cmd)
		runtime.GOMAXPROCS(opt.NumCPUs)

		taxonomyFile := getFlagString(cmd, "taxonomy")
		rank := unitax.ParseRank(getFlagString(cmd, "rank"))

		taxonomy, err := taxonomyio.Load(taxonomyFile)
		checkError(err)

		in, err := inFile(getFlagString(cmd, "in-file"))
		checkError(err)
		defer in.Close()

		out, err := outFile(getFlagString(cmd, "out-file"))
		checkError(err)
		defer out.Close()

		counts := make(map[unitax.TaxonID]unitax.Count)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			id, err := strconv.ParseUint(line, 10, 32)
			checkError(err)

			snapped, ok := taxonomy.SnapToRank(unitax.TaxonID(id), rank)
			if !ok {
				continue
			}
			counts[snapped]++
		}
		checkError(scanner.Err())

		ids := make([]unitax.TaxonID, 0, len(counts))
		for id := range counts {
			ids = append(ids, id)
		}
		sort.Slice(ids, func(a, b int) bool {
			if counts[ids[a]] != counts[ids[b]] {
				return counts[ids[a]] > counts[ids[b]]
			}
			return ids[a] < ids[b]
		})

		style := &stable.TableStyle{
			Name:      "plain",
			HeaderRow: stable.RowStyle{Begin: "", Sep: "  ", End: ""},
			DataRow:   stable.RowStyle{Begin: "", Sep: "  ", End: ""},
			Padding:   "",
		}
		columns := []stable.Column{
			{Header: "taxid", Align: stable.AlignRight},
			{Header: "name"},
			{Header: "rank"},
			{Header: "count", Align: stable.AlignRight},
		}

		tbl := stable.New()
		tbl.HeaderWithFormat(columns)
		for _, id := range ids {
			taxon, _ := taxonomy.Get(id)
			name, rankName := "", rank.String()
			if taxon != nil {
				name = taxon.Name
				rankName = taxon.Rank.String()
			}
			tbl.AddRow([]interface{}{id, name, rankName, humanize.Comma(int64(counts[id]))})
		}

		out.Write(tbl.Render(style))
	},
}

func init() {
	RootCmd.AddCommand(reportCmd)

	reportCmd.Flags().StringP("taxonomy", "t", "", "taxonomy TSV file (required)")
	reportCmd.Flags().StringP("rank", "r", "species", "rank to snap counts to")
	reportCmd.Flags().StringP("in-file", "i", "-", `input file ("-" for stdin)`)
	reportCmd.Flags().StringP("out-file", "o", "-", `output file ("-" for stdout)`)
	reportCmd.MarkFlagRequired("taxonomy")
}
