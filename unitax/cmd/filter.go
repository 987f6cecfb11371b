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
	"strings"

	"github.com/spf13/cobra"
)

var filterCmd = &cobra.Command{
	Use:   "filter",
	Short: "Filter peptide lines by length and substring predicates",
	Long: `Filter peptide lines by length and substring predicates

Passes through lines (leaving "header" lines beginning with ">"
untouched) that satisfy every predicate given: -m/--min-length,
-M/--max-length, --contains, and --lacks.

`,
	Run: func(cmd *cobra.Command, args []string) {
		opt := getOptions(cmd)
		runtime.GOMAXPROCS(opt.NumCPUs)

		minLen := getFlagInt(cmd, "min-length")
		maxLen := getFlagInt(cmd, "max-length")
		contains := getFlagStringSlice(cmd, "contains")
		lacks := getFlagStringSlice(cmd, "lacks")

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
			if strings.HasPrefix(line, ">") || passesFilters(line, minLen, maxLen, contains, lacks) {
				if _, err := writer.WriteString(line + "\n"); err != nil {
					exitOnBrokenPipe(err)
				}
			}
		}
		checkError(scanner.Err())
	},
}

func passesFilters(line string, minLen, maxLen int, contains, lacks []string) bool {
	if minLen > 0 && len(line) < minLen {
		return false
	}
	if maxLen > 0 && len(line) > maxLen {
		return false
	}
	for _, s := range contains {
		if !strings.Contains(line, s) {
			return false
		}
	}
	for _, s := range lacks {
		if strings.Contains(line, s) {
			return false
		}
	}
	return true
}

func init() {
	RootCmd.AddCommand(filterCmd)

	filterCmd.Flags().IntP("min-length", "m", 0, "minimum line length (0 disables)")
	filterCmd.Flags().IntP("max-length", "M", 0, "maximum line length (0 disables)")
	filterCmd.Flags().StringSlice("contains", nil, "require every given substring")
	filterCmd.Flags().StringSlice("lacks", nil, "reject any given substring")
	filterCmd.Flags().StringP("in-file", "i", "-", `input file ("-" for stdin)`)
	filterCmd.Flags().StringP("out-file", "o", "-", `output file ("-" for stdout)`)
}
