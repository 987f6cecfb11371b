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

package record

import (
	"io"
	"math"
	"strings"
	"testing"

	"github.com/shenwei356/unitax"
)

func TestScannerReadsGroups(t *testing.T) {
	input := ">read1\n10\n20\t0.5\n>read2\n30\n"
	sc := NewScanner(strings.NewReader(input))

	g1, err := sc.Next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g1.Header != "read1" {
		t.Fatalf("expected header read1, got %q", g1.Header)
	}
	if len(g1.Taxa) != 2 || g1.Taxa[0] != 10 || g1.Taxa[1] != 20 {
		t.Fatalf("unexpected taxa: %+v", g1.Taxa)
	}
	if !math.IsNaN(g1.Scores[0]) {
		t.Fatalf("expected NaN score for unscored line, got %v", g1.Scores[0])
	}
	if g1.Scores[1] != 0.5 {
		t.Fatalf("expected score 0.5, got %v", g1.Scores[1])
	}

	g2, err := sc.Next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g2.Header != "read2" || len(g2.Taxa) != 1 || g2.Taxa[0] != unitax.TaxonID(30) {
		t.Fatalf("unexpected group: %+v", g2)
	}

	if _, err := sc.Next(); err != io.EOF {
		t.Fatalf("expected io.EOF, got %v", err)
	}
}

func TestScannerEmptyGroup(t *testing.T) {
	input := ">empty\n>withone\n5\n"
	sc := NewScanner(strings.NewReader(input))

	g1, err := sc.Next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g1.Header != "empty" || len(g1.Taxa) != 0 {
		t.Fatalf("expected an empty group, got %+v", g1)
	}

	g2, err := sc.Next()
	if err != nil || g2.Header != "withone" || len(g2.Taxa) != 1 {
		t.Fatalf("unexpected second group: %+v, err=%v", g2, err)
	}
}

func TestScannerRejectsLineBeforeHeader(t *testing.T) {
	sc := NewScanner(strings.NewReader("5\n>header\n"))
	if _, err := sc.Next(); err == nil {
		t.Fatal("expected an error for a taxon line preceding any header")
	}
}

func TestWriterWriteResult(t *testing.T) {
	var buf strings.Builder
	w := NewWriter(&buf)
	if err := w.WriteResult("read1", 42); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.String() != ">read1\n42\n" {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}
