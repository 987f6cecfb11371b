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

	"github.com/pkg/errors"
	"github.com/shenwei356/unitax/fstindex"
	"github.com/spf13/cobra"
)

var buildindexCmd = &cobra.Command{
	Use:   "buildindex",
	Short: "Build an FST index from tab-separated key/taxid pairs",
	Long: `Build an FST index from tab-separated key/taxid pairs

Reads "key\tvalue" lines from stdin, ordered by key, and writes a binary
fstindex file to stdout (or -o/--out-file). Keys must be strictly
increasing, matching the FST's insertion requirement.

`,
	Run: func(cmd *cobra.Command, args []string) {
		opt := getOptions(cmd)
		runtime.GOMAXPROCS(opt.NumCPUs)

		in, err := inFile(getFlagString(cmd, "in-file"))
		checkError(err)
		defer in.Close()

		out, err := outFile(getFlagString(cmd, "out-file"))
		checkError(err)
		defer out.Close()

		var lines []string
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line != "" {
				lines = append(lines, line)
			}
		}
		checkError(scanner.Err())

		if opt.Verbose {
			log.Infof("%d entries read", len(lines))
		}

		err = fstindex.Build(out, func(yield func(string, uint64) bool) {
			for i, line := range lines {
				fields := strings.SplitN(line, "\t", 2)
				if len(fields) != 2 {
					checkError(fmt.Errorf("line %d: expected key\\tvalue, got %q", i+1, line))
				}
				val, err := strconv.ParseUint(fields[1], 10, 64)
				if err != nil {
					checkError(errors.Wrapf(err, "line %d: invalid taxid", i+1))
				}
				if !yield(fields[0], val) {
					return
				}
			}
		})
		checkError(err)

		if opt.Verbose {
			log.Info("index written")
		}
	},
}

func init() {
	RootCmd.AddCommand(buildindexCmd)

	buildindexCmd.Flags().StringP("in-file", "i", "-", `tab-separated key/taxid input ("-" for stdin)`)
	buildindexCmd.Flags().StringP("out-file", "o", "-", `fstindex output file ("-" for stdout)`)
}
