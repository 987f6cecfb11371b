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

// chain of 3: 1 -> 2 -> 3 (1 is root)
func chainTaxonomy(t *testing.T) *TaxonList {
	t.Helper()
	tl, err := Load([]Taxon{
		{ID: 1, Parent: 1, Valid: true},
		{ID: 2, Parent: 1, Valid: true},
		{ID: 3, Parent: 2, Valid: true},
	})
	if err != nil {
		t.Fatal(err)
	}
	return tl
}

// star of root + two leaves: 1 is root, 2 and 3 are children.
func starTaxonomy(t *testing.T) *TaxonList {
	t.Helper()
	tl, err := Load([]Taxon{
		{ID: 1, Parent: 1, Valid: true},
		{ID: 2, Parent: 1, Valid: true},
		{ID: 3, Parent: 1, Valid: true},
	})
	if err != nil {
		t.Fatal(err)
	}
	return tl
}

func TestBuildTourLength(t *testing.T) {
	tl := starTaxonomy(t)
	tour := BuildTour(tl.Root(), tl.MaxID(), tl.ChildrenOf)
	if len(tour.Tour) != 2*3-1 {
		t.Fatalf("expected tour length 5, got %d", len(tour.Tour))
	}
	if len(tour.Depth) != len(tour.Tour) {
		t.Fatalf("depth length %d != tour length %d", len(tour.Depth), len(tour.Tour))
	}
}

func TestBuildTourFirstOccurrence(t *testing.T) {
	tl := chainTaxonomy(t)
	tour := BuildTour(tl.Root(), tl.MaxID(), tl.ChildrenOf)

	for _, id := range []TaxonID{1, 2, 3} {
		pos := tour.First[id]
		if pos < 0 || pos >= len(tour.Tour) {
			t.Fatalf("taxon %d has no valid first occurrence: %d", id, pos)
		}
		if tour.Tour[pos] != id {
			t.Fatalf("tour[First[%d]] = %d, want %d", id, tour.Tour[pos], id)
		}
	}

	// depth increases strictly along the chain.
	if tour.Depth[tour.First[1]] >= tour.Depth[tour.First[2]] ||
		tour.Depth[tour.First[2]] >= tour.Depth[tour.First[3]] {
		t.Fatal("expected strictly increasing depth along the chain")
	}
}

func TestBuildTourStarDepths(t *testing.T) {
	tl := starTaxonomy(t)
	tour := BuildTour(tl.Root(), tl.MaxID(), tl.ChildrenOf)

	if tour.Depth[tour.First[1]] != 0 {
		t.Fatalf("expected root depth 0, got %d", tour.Depth[tour.First[1]])
	}
	if tour.Depth[tour.First[2]] != 1 || tour.Depth[tour.First[3]] != 1 {
		t.Fatal("expected both leaves at depth 1")
	}
}
