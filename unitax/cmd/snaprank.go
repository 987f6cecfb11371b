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
	"fmt"
	"runtime"
	"strconv"
	"strings"

	"github.com/shenwei356/unitax"
	"github.com/shenwei356/unitax/taxonomyio"
	"github.com/spf13/cobra"
)

var snaprankCmd = &cobra.Command{
	Use:   "snaprank",
	Short: "Snap each input taxon ID to an ancestor of a target rank",
	Long: `Snap each input taxon ID to an ancestor of a target rank

Reads one taxon ID per line and writes the nearest ancestor (including
the taxon itself) at -r/--rank, or 0 if no such ancestor exists.

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

		writer := bufio.NewWriter(out)
		defer writer.Flush()

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
				snapped = 0
			}
			if _, err := fmt.Fprintln(writer, snapped); err != nil {
				exitOnBrokenPipe(err)
			}
		}
		checkError(scanner.Err())
	},
}

func init() {
	RootCmd.AddCommand(snaprankCmd)

	snaprankCmd.Flags().StringP("taxonomy", "t", "", "taxonomy TSV file (required)")
	snaprankCmd.Flags().StringP("rank", "r", "species", "target rank name")
	snaprankCmd.Flags().StringP("in-file", "i", "-", `input file ("-" for stdin)`)
	snaprankCmd.Flags().StringP("out-file", "o", "-", `output file ("-" for stdout)`)
	snaprankCmd.MarkFlagRequired("taxonomy")
}
