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

// Package record reads and writes the grouped-taxon-ID stream multi-
// aggregator flows are built around: a ">header" line followed by zero
// or more taxon-ID lines, each either a bare id or an "id\tscore" pair.
package record

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"syscall"

	"github.com/shenwei356/unitax"
)

// Group is one header and the taxon IDs (with optional scores) that
// followed it in the input stream.
type Group struct {
	Header string
	Taxa   []unitax.TaxonID
	Scores []float64 // Scores[i] corresponds to Taxa[i]; NaN if the line carried no score
}

// Scanner reads successive Groups from a grouped-taxon-ID stream.
type Scanner struct {
	sc      *bufio.Scanner
	pending *Group // header already read, waiting for its taxon lines
	err     error
}

// NewScanner wraps r in a record Scanner.
func NewScanner(r io.Reader) *Scanner {
	return &Scanner{sc: bufio.NewScanner(r)}
}

// Next returns the next Group, or io.EOF once the stream is exhausted.
// A line that is neither a header nor a parseable taxon-ID line is
// reported as an error and ends iteration.
func (s *Scanner) Next() (Group, error) {
	if s.err != nil {
		return Group{}, s.err
	}

	var g Group
	haveHeader := s.pending != nil
	if haveHeader {
		g = *s.pending
		s.pending = nil
	}

	for s.sc.Scan() {
		line := s.sc.Text()
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ">") {
			if !haveHeader {
				g = Group{Header: strings.TrimPrefix(line, ">")}
				haveHeader = true
				continue
			}
			s.pending = &Group{Header: strings.TrimPrefix(line, ">")}
			return g, nil
		}

		if !haveHeader {
			s.err = fmt.Errorf("record: taxon line before any header: %q", line)
			return Group{}, s.err
		}

		id, score, err := parseTaxonLine(line)
		if err != nil {
			s.err = err
			return Group{}, s.err
		}
		g.Taxa = append(g.Taxa, id)
		g.Scores = append(g.Scores, score)
	}

	if err := s.sc.Err(); err != nil {
		s.err = fmt.Errorf("record: %w", err)
		return Group{}, s.err
	}

	if !haveHeader {
		s.err = io.EOF
		return Group{}, io.EOF
	}

	s.err = io.EOF
	return g, nil
}

func parseTaxonLine(line string) (unitax.TaxonID, float64, error) {
	fields := strings.SplitN(line, "\t", 2)
	id, err := strconv.ParseUint(fields[0], 10, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("record: invalid taxon id %q: %w", fields[0], err)
	}
	if len(fields) == 1 {
		return unitax.TaxonID(id), math.NaN(), nil
	}
	score, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("record: invalid score %q: %w", fields[1], err)
	}
	return unitax.TaxonID(id), score, nil
}

// Writer emits ">header\n<id>\n" lines, the exit format multi-aggregator
// flows produce one result per input group.
type Writer struct {
	w io.Writer
}

// NewWriter wraps w in a record Writer.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WriteResult writes one header/result pair. A write that fails because
// the reader end of the pipe is gone (the common case when output is
// piped into "head" or similar) is reported as io.ErrClosedPipe so
// callers can exit cleanly instead of treating it as a real failure.
func (w *Writer) WriteResult(header string, id unitax.TaxonID) error {
	_, err := fmt.Fprintf(w.w, ">%s\n%d\n", header, id)
	if isBrokenPipe(err) {
		return io.ErrClosedPipe
	}
	return err
}

func isBrokenPipe(err error) bool {
	return errors.Is(err, syscall.EPIPE)
}
