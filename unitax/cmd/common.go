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
	"os"

	"github.com/shenwei356/go-logging"
	"github.com/spf13/cobra"
)

var log = logging.MustGetLogger("unitax")

// Options holds the persistent flags every subcommand reads.
type Options struct {
	NumCPUs int
	Verbose bool
}

func getOptions(cmd *cobra.Command) *Options {
	return &Options{
		NumCPUs: getFlagPositiveInt(cmd, "threads"),
		Verbose: getFlagBool(cmd, "verbose"),
	}
}

// checkError prints err and exits non-zero, unless err is nil. It is
// the CLI layer's only error handler; the unitax core package never
// calls it.
func checkError(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func getFlagString(cmd *cobra.Command, name string) string {
	s, err := cmd.Flags().GetString(name)
	checkError(err)
	return s
}

func getFlagBool(cmd *cobra.Command, name string) bool {
	b, err := cmd.Flags().GetBool(name)
	checkError(err)
	return b
}

func getFlagInt(cmd *cobra.Command, name string) int {
	i, err := cmd.Flags().GetInt(name)
	checkError(err)
	return i
}

func getFlagPositiveInt(cmd *cobra.Command, name string) int {
	i := getFlagInt(cmd, name)
	if i <= 0 {
		checkError(fmt.Errorf("value of --%s should be a positive integer", name))
	}
	return i
}

func getFlagNonNegativeFloat64(cmd *cobra.Command, name string) float64 {
	f, err := cmd.Flags().GetFloat64(name)
	checkError(err)
	if f < 0 {
		checkError(fmt.Errorf("value of --%s should not be negative", name))
	}
	return f
}

func getFlagStringSlice(cmd *cobra.Command, name string) []string {
	s, err := cmd.Flags().GetStringSlice(name)
	checkError(err)
	return s
}

// inFile opens path for reading, treating "-" as stdin.
func inFile(path string) (*os.File, error) {
	if path == "" || path == "-" {
		return os.Stdin, nil
	}
	return os.Open(path)
}

// outFile opens path for writing, treating "-" as stdout.
func outFile(path string) (*os.File, error) {
	if path == "" || path == "-" {
		return os.Stdout, nil
	}
	return os.Create(path)
}
