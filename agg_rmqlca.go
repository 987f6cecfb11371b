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

// RMQLCAAggregator computes the same LCA as LCAAggregator, but from an
// Euler tour of the taxonomy plus an O(1)-query RMQ index over the tour's
// depth array, trading O(n) preprocessing for O(1) work per pairwise
// reduction instead of per-query subtree construction.
type RMQLCAAggregator struct {
	tour  []TaxonID
	first []int
	index *RMQIndex[uint32]
}

// NewRMQLCAAggregator builds the Euler tour and sparse RMQ index for
// taxonomy. Both are immutable and shared by every Aggregate call.
func NewRMQLCAAggregator(taxonomy *TaxonList) (*RMQLCAAggregator, error) {
	tour := BuildTour(taxonomy.Root(), taxonomy.MaxID(), taxonomy.ChildrenOf)
	index, err := NewRMQIndex(tour.Depth)
	if err != nil {
		return nil, err
	}
	return &RMQLCAAggregator{tour: tour.Tour, first: tour.First, index: index}, nil
}

// Aggregate reduces taxa pairwise left to right: acc starts at taxa[0],
// and for each subsequent taxon t, m = tour[rmq(first[acc], first[t])]
// is their pairwise LCA. If m is t (t is acc or one of its ancestors),
// acc is kept. If m is acc (t lies below acc), acc moves down to t while
// every taxon seen so far lies on one path, and is kept once acc is a
// branching point. Otherwise acc becomes m. This gives the same result
// as LCAAggregator's collapsed subtree: a query that is an ancestor of
// another query does not pull the result up.
func (a *RMQLCAAggregator) Aggregate(taxa []TaxonID) (TaxonID, error) {
	if len(taxa) == 0 {
		return 0, ErrEmptyInput
	}

	branched := false
	accTaxon := taxa[0]
	accFirst, err := a.firstOf(accTaxon)
	if err != nil {
		return 0, err
	}

	for _, t := range taxa[1:] {
		tFirst, err := a.firstOf(t)
		if err != nil {
			return 0, err
		}

		lo, hi := accFirst, tFirst
		if lo > hi {
			lo, hi = hi, lo
		}
		pos, err := a.index.Query(lo, hi)
		if err != nil {
			return 0, err
		}

		switch m := a.tour[pos]; {
		case m == t:
			continue
		case m == accTaxon:
			if branched {
				continue
			}
			accTaxon = t
		default:
			accTaxon, branched = m, true
		}
		accFirst = a.first[accTaxon]
	}

	return accTaxon, nil
}

func (a *RMQLCAAggregator) firstOf(t TaxonID) (int, error) {
	if int(t) >= len(a.first) || a.first[t] == -1 {
		return 0, &UnknownTaxonError{ID: t}
	}
	return a.first[t], nil
}
