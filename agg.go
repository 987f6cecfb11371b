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

// Aggregator reduces a multiset of taxon IDs to one consensus taxon ID.
// Implementations are immutable after construction and are safe to call
// concurrently from many goroutines; a call allocates only query-scoped
// working structures (count maps, subtrees) which it releases on return.
type Aggregator interface {
	Aggregate(taxa []TaxonID) (TaxonID, error)
}

// chainScore sums counts[a] over every taxon a on cur's ancestor chain,
// including cur itself and the root, stopping at the root (ancestors[cur]
// == 0 marks the root, per TaxonList.Ancestry's sentinel convention).
// Shared by RTLAggregator and HybridAggregator.
func chainScore(ancestors []TaxonID, counts map[TaxonID]Count, cur TaxonID) Count {
	var score Count
	for {
		score += counts[cur]
		next := ancestors[cur]
		if next == 0 {
			return score
		}
		cur = next
	}
}
