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
	"io"
	"os"
	"runtime"
	"strings"
	"syscall"

	"github.com/shenwei356/unitax/fstindex"
	"github.com/spf13/cobra"
)

var pept2lcaCmd = &cobra.Command{
	Use:   "pept2lca",
	Short: "Map peptides to taxon IDs via an FST index",
	Long: `Map peptides to taxon IDs via an FST index

Reads a FASTA-like stream: ">header" lines are copied through unchanged,
and every other line is looked up in the index file given by -d/--index.
An unmapped line is skipped, unless --one-on-one maps it to taxon ID 0
so every input line still has a matching output line.

`,
	Run: func(cmd *cobra.Command, args []string) {
		opt := getOptions(cmd)
		runtime.GOMAXPROCS(opt.NumCPUs)

		indexFile := getFlagString(cmd, "index")
		oneOnOne := getFlagBool(cmd, "one-on-one")

		idx := openFstIndexFile(indexFile)
		defer idx.Close()

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
			line := scanner.Text()
			if strings.HasPrefix(line, ">") {
				if _, err := fmt.Fprintln(writer, line); err != nil {
					exitOnBrokenPipe(err)
				}
				continue
			}

			id, found, err := idx.Get([]byte(line))
			checkError(err)
			if !found {
				if !oneOnOne {
					continue
				}
				id = 0
			}
			if _, err := fmt.Fprintln(writer, id); err != nil {
				exitOnBrokenPipe(err)
			}
		}
		checkError(scanner.Err())
	},
}

func openFstIndexFile(path string) *fstindex.Index {
	f, err := inFile(path)
	checkError(err)
	st, err := f.Stat()
	checkError(err)
	idx, err := fstindex.Open(f, st.Size())
	checkError(err)
	return idx
}

// exitOnBrokenPipe exits cleanly when the downstream reader has closed
// its end of the pipe (e.g. piping into "head"), matching the original
// CLI's treatment of io::ErrorKind::BrokenPipe as a normal stop signal.
// It never returns: a genuine write error is fatal, and a broken pipe
// is a clean stop, not a condition the caller's loop should continue past.
func exitOnBrokenPipe(err error) {
	if err == io.ErrClosedPipe || isEPIPE(err) {
		os.Exit(0)
	}
	checkError(err)
	os.Exit(1) // unreachable: checkError already exited on a non-nil err
}

func isEPIPE(err error) bool {
	for ; err != nil; err = unwrapErr(err) {
		if err == syscall.EPIPE {
			return true
		}
	}
	return false
}

func unwrapErr(err error) error {
	type unwrapper interface{ Unwrap() error }
	if u, ok := err.(unwrapper); ok {
		return u.Unwrap()
	}
	return nil
}

func init() {
	RootCmd.AddCommand(pept2lcaCmd)

	pept2lcaCmd.Flags().StringP("index", "d", "", "fstindex file to query (required)")
	pept2lcaCmd.Flags().BoolP("one-on-one", "", false, "map unmapped lines to taxon id 0 instead of dropping them")
	pept2lcaCmd.Flags().StringP("in-file", "i", "-", `input file ("-" for stdin)`)
	pept2lcaCmd.Flags().StringP("out-file", "o", "-", `output file ("-" for stdout)`)
	pept2lcaCmd.MarkFlagRequired("index")
}
