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

package unitax

import "testing"

func TestLCAStarAggregatorHighThresholdMatchesLCA(t *testing.T) {
	tl := viroidTaxonomy(t)
	star := NewLCAStarAggregator(tl, 0.9)
	lca := NewLCAAggregator(tl)

	taxa := []TaxonID{185751, 185751, 185752}

	want, err := lca.Aggregate(taxa)
	if err != nil {
		t.Fatal(err)
	}
	got, err := star.Aggregate(taxa)
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Fatalf("threshold 0.9 should degenerate to plain LCA: got %d, want %d", got, want)
	}
}

func TestLCAStarAggregatorLowThresholdDescends(t *testing.T) {
	tl := viroidTaxonomy(t)
	star := NewLCAStarAggregator(tl, 0.5)

	// collapsed LCA of {185751, 185752} is 12884; 185751 carries 2/3 of
	// the weight there, clearing a 0.5 threshold, so LCA* should descend
	// one level further than plain LCA.
	got, err := star.Aggregate([]TaxonID{185751, 185751, 185752})
	if err != nil {
		t.Fatal(err)
	}
	if got != 185751 {
		t.Fatalf("expected LCA* to descend into the heaviest child 185751, got %d", got)
	}
}

func TestLCAStarAggregatorRejectsEmptyInput(t *testing.T) {
	star := NewLCAStarAggregator(viroidTaxonomy(t), 0.5)
	if _, err := star.Aggregate(nil); err != ErrEmptyInput {
		t.Fatalf("expected ErrEmptyInput, got %v", err)
	}
}

func TestHybridAggregatorZeroFactorMatchesRTL(t *testing.T) {
	tl := viroidTaxonomy(t)
	hybrid := NewHybridAggregator(tl, 0)
	rtl := NewRTLAggregator(tl)

	taxa := []TaxonID{1, 1, 185752, 185751, 185751, 1}

	want, err := rtl.Aggregate(taxa)
	if err != nil {
		t.Fatal(err)
	}
	got, err := hybrid.Aggregate(taxa)
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Fatalf("factor 0 should match the RTL winner directly: got %d, want %d", got, want)
	}
}

func TestHybridAggregatorFullFactorClimbsToRoot(t *testing.T) {
	tl := viroidTaxonomy(t)
	hybrid := NewHybridAggregator(tl, 1)

	got, err := hybrid.Aggregate([]TaxonID{185751, 185751, 185752})
	if err != nil {
		t.Fatal(err)
	}
	if got != tl.Root() {
		t.Fatalf("factor 1 should climb all the way to the root, got %d", got)
	}
}

func TestHybridAggregatorRejectsEmptyInput(t *testing.T) {
	hybrid := NewHybridAggregator(viroidTaxonomy(t), 0.5)
	if _, err := hybrid.Aggregate(nil); err != ErrEmptyInput {
		t.Fatalf("expected ErrEmptyInput, got %v", err)
	}
}
