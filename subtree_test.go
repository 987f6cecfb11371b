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

// triangle taxonomy used in the Unipept LCA test suite: 1 is root,
// 2 is a child of 1, 3 and 4 are children of 2.
//   1
//   └─2
//     ├─3
//     └─4
func triangleTaxonomy(t *testing.T) *TaxonList {
	t.Helper()
	tl, err := Load([]Taxon{
		{ID: 1, Parent: 1, Valid: true},
		{ID: 2, Parent: 1, Valid: true},
		{ID: 3, Parent: 2, Valid: true},
		{ID: 4, Parent: 2, Valid: true},
	})
	if err != nil {
		t.Fatal(err)
	}
	return tl
}

func countAllNodes(s *SubTree[Count]) int {
	n := 1
	for _, c := range s.Children {
		n += countAllNodes(c)
	}
	return n
}

func TestBuildSubTreeMinimality(t *testing.T) {
	tl := triangleTaxonomy(t)
	counts := CountTaxa([]TaxonID{3, 4})

	subtree, err := BuildSubTree(tl.Root(), tl.Ancestry(), counts, CountMonoid{})
	if err != nil {
		t.Fatal(err)
	}

	// minimal covering tree for {3, 4} is root(1) -> 2 -> {3, 4}: 4 nodes.
	if n := countAllNodes(subtree); n != 4 {
		t.Fatalf("expected a minimal 4-node subtree, got %d nodes", n)
	}
}

func TestBuildSubTreeUnknownTaxon(t *testing.T) {
	tl := triangleTaxonomy(t)
	counts := CountTaxa([]TaxonID{99})

	if _, err := BuildSubTree(tl.Root(), tl.Ancestry(), counts, CountMonoid{}); err == nil {
		t.Fatal("expected an error for an unknown taxon")
	}
}

func TestSubTreeCollapseToLCA(t *testing.T) {
	tl := triangleTaxonomy(t)
	counts := CountTaxa([]TaxonID{3, 4})

	subtree, err := BuildSubTree(tl.Root(), tl.Ancestry(), counts, CountMonoid{})
	if err != nil {
		t.Fatal(err)
	}

	collapsed := subtree.Collapse(CountMonoid{})
	if collapsed.Root != 2 {
		t.Fatalf("expected collapse to skip the single-child root chain and land on 2, got %d", collapsed.Root)
	}
}

func TestSubTreeAggregateSumsWeights(t *testing.T) {
	tl := triangleTaxonomy(t)
	counts := CountTaxa([]TaxonID{3, 3, 4})

	subtree, err := BuildSubTree(tl.Root(), tl.Ancestry(), counts, CountMonoid{})
	if err != nil {
		t.Fatal(err)
	}

	aggregated := subtree.Aggregate(CountMonoid{})
	if aggregated.Weight != 3 {
		t.Fatalf("expected root weight 3 (2+1 folded up), got %d", aggregated.Weight)
	}
}
