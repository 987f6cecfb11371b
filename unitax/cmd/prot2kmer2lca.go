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
	"strings"

	"github.com/shenwei356/unitax/fstindex"
	"github.com/spf13/cobra"
)

var prot2kmer2lcaCmd = &cobra.Command{
	Use:   "prot2kmer2lca",
	Short: "Slide a k-mer window over protein records and map each window via an FST index",
	Long: `Slide a k-mer window over protein records and map each window via an FST index

Reads a FASTA-like stream of ">header" / sequence-line pairs. For every
record at least k residues long, every k-length window is looked up in
the index file given by -d/--index; the hits are joined with a single
space onto one output line following the header. Records with no hits
produce no output line.

`,
	Run: func(cmd *cobra.Command, args []string) {
		opt := getOptions(cmd)
		runtime.GOMAXPROCS(opt.NumCPUs)

		k := getFlagPositiveInt(cmd, "kmer-length")

		idx := openFstIndexFile(getFlagString(cmd, "index"))
		defer idx.Close()

		in, err := inFile(getFlagString(cmd, "in-file"))
		checkError(err)
		defer in.Close()

		out, err := outFile(getFlagString(cmd, "out-file"))
		checkError(err)
		defer out.Close()

		writer := bufio.NewWriter(out)
		defer writer.Flush()

		var header string
		var haveHeader bool
		var seq strings.Builder

		flush := func() {
			if !haveHeader {
				return
			}
			hits := kmerHits(idx, seq.String(), k)
			if len(hits) > 0 {
				if _, err := fmt.Fprintf(writer, "%s\n%s\n", header, strings.Join(hits, " ")); err != nil {
					exitOnBrokenPipe(err)
				}
			}
			seq.Reset()
		}

		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			line := scanner.Text()
			if strings.HasPrefix(line, ">") {
				flush()
				header = line
				haveHeader = true
				continue
			}
			seq.WriteString(strings.TrimSpace(line))
		}
		checkError(scanner.Err())
		flush()
	},
}

func kmerHits(idx *fstindex.Index, seq string, k int) []string {
	if len(seq) < k {
		return nil
	}
	var hits []string
	for i := 0; i+k <= len(seq); i++ {
		id, found, err := idx.Get([]byte(seq[i : i+k]))
		checkError(err)
		if found {
			hits = append(hits, fmt.Sprintf("%d", id))
		}
	}
	return hits
}

func init() {
	RootCmd.AddCommand(prot2kmer2lcaCmd)

	prot2kmer2lcaCmd.Flags().StringP("index", "d", "", "fstindex file to query (required)")
	prot2kmer2lcaCmd.Flags().IntP("kmer-length", "k", 9, "length of the sliding window")
	prot2kmer2lcaCmd.Flags().StringP("in-file", "i", "-", `input file ("-" for stdin)`)
	prot2kmer2lcaCmd.Flags().StringP("out-file", "o", "-", `output file ("-" for stdout)`)
	prot2kmer2lcaCmd.MarkFlagRequired("index")
}
