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

import "sort"

// Monoid is the capability SubTree.Collapse and SubTree.Aggregate need
// from a weight type: an identity element and an associative combining
// operation. Count (plain occurrence counts) is the only instantiation
// the built-in aggregators use, but the subtree machinery never hard-codes
// it.
type Monoid[W any] interface {
	Zero() W
	Combine(a, b W) W
}

// Count is the occurrence-count weight used by the LCA, RMQ-LCA, RTL and
// hybrid aggregators.
type Count = uint32

// CountMonoid is the commutative monoid (Count, +, 0).
type CountMonoid struct{}

// Zero returns the Count identity.
func (CountMonoid) Zero() Count { return 0 }

// Combine adds two counts.
func (CountMonoid) Combine(a, b Count) Count { return a + b }

// CountTaxa reduces a multiset of taxon IDs to unique-key counts. Zero
// counts are never stored explicitly.
func CountTaxa(taxa []TaxonID) map[TaxonID]Count {
	counts := make(map[TaxonID]Count, len(taxa))
	for _, t := range taxa {
		counts[t]++
	}
	return counts
}

// sortedKeys returns the keys of a count map in ascending order, giving
// every consumer that needs a deterministic scan order (tiebreaks, test
// fixtures) the same order regardless of Go's randomised map iteration.
func sortedKeys(counts map[TaxonID]Count) []TaxonID {
	keys := make([]TaxonID, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// WeightedCount pairs an integer occurrence count with a caller-supplied
// score (e.g. an FST match confidence from package record). No aggregator
// in this package takes it: RTLAggregator and HybridAggregator score by
// occurrence counts only.
type WeightedCount struct {
	Count Count
	Score float64
}
