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
	"encoding/json"
	"io"
	"runtime"
	"strconv"
	"strings"

	"github.com/shenwei356/unitax"
	"github.com/shenwei356/unitax/taxonomyio"
	"github.com/spf13/cobra"
)

// jsonNode is the wire shape of a collapsed/aggregated SubTree, named for
// the Unipept tree-visualisation format it feeds.
type jsonNode struct {
	ID       unitax.TaxonID `json:"id"`
	Name     string         `json:"name,omitempty"`
	Rank     string         `json:"rank,omitempty"`
	Count    unitax.Count   `json:"count"`
	Children []*jsonNode    `json:"children,omitempty"`
}

func toJSONNode(taxonomy *unitax.TaxonList, s *unitax.SubTree[unitax.Count]) *jsonNode {
	node := &jsonNode{ID: s.Root, Count: s.Weight}
	if taxon, ok := taxonomy.Get(s.Root); ok {
		node.Name = taxon.Name
		node.Rank = taxon.Rank.String()
	}
	for _, c := range s.Children {
		node.Children = append(node.Children, toJSONNode(taxonomy, c))
	}
	return node
}

var jsontreeCmd = &cobra.Command{
	Use:   "jsontree",
	Short: "Aggregate a whole run into one nested JSON tree",
	Long: `Aggregate a whole run into one nested JSON tree

Reads every taxon ID across the whole grouped input (ignoring group
boundaries), builds the minimal covering subtree, folds weights from
the leaves up, and writes the result as nested JSON.

`,
	Run: func(cmd *cobra.Command, args []string) {
		opt := getOptions(cmd)
		runtime.GOMAXPROCS(opt.NumCPUs)

		taxonomyFile := getFlagString(cmd, "taxonomy")

		taxonomy, err := taxonomyio.Load(taxonomyFile)
		checkError(err)

		in, err := inFile(getFlagString(cmd, "in-file"))
		checkError(err)
		defer in.Close()

		out, err := outFile(getFlagString(cmd, "out-file"))
		checkError(err)
		defer out.Close()

		var taxa []unitax.TaxonID
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" || strings.HasPrefix(line, ">") {
				continue
			}
			fields := strings.SplitN(line, "\t", 2)
			id, err := strconv.ParseUint(fields[0], 10, 32)
			checkError(err)
			taxa = append(taxa, unitax.TaxonID(id))
		}
		checkError(scanner.Err())

		if len(taxa) == 0 {
			checkError(io.EOF)
		}

		counts := unitax.CountTaxa(taxa)
		subtree, err := unitax.BuildSubTree(taxonomy.Root(), taxonomy.Ancestry(), counts, unitax.CountMonoid{})
		checkError(err)

		aggregated := subtree.Aggregate(unitax.CountMonoid{})

		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		checkError(enc.Encode(toJSONNode(taxonomy, aggregated)))
	},
}

func init() {
	RootCmd.AddCommand(jsontreeCmd)

	jsontreeCmd.Flags().StringP("taxonomy", "t", "", "taxonomy TSV file (required)")
	jsontreeCmd.Flags().StringP("in-file", "i", "-", `input file ("-" for stdin)`)
	jsontreeCmd.Flags().StringP("out-file", "o", "-", `output file ("-" for stdout)`)
	jsontreeCmd.MarkFlagRequired("taxonomy")
}
