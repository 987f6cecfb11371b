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

// LCAStarAggregator is a weighted variant of LCAAggregator: it starts from
// LCAAggregator's result (the collapsed subtree's root) and descends into the
// heaviest child repeatedly while that child still carries at least
// Threshold of the total input weight. Threshold 1.0 never descends,
// degenerating to plain LCA.
type LCAStarAggregator struct {
	root      TaxonID
	ancestors []TaxonID
	Threshold float64
}

// NewLCAStarAggregator builds an LCAStarAggregator with the given
// threshold (0 <= Threshold <= 1).
func NewLCAStarAggregator(taxonomy *TaxonList, threshold float64) *LCAStarAggregator {
	return &LCAStarAggregator{root: taxonomy.Root(), ancestors: taxonomy.Ancestry(), Threshold: threshold}
}

// Aggregate returns the LCA*-weighted consensus taxon.
func (a *LCAStarAggregator) Aggregate(taxa []TaxonID) (TaxonID, error) {
	if len(taxa) == 0 {
		return 0, ErrEmptyInput
	}

	counts := CountTaxa(taxa)
	subtree, err := BuildSubTree(a.root, a.ancestors, counts, CountMonoid{})
	if err != nil {
		return 0, err
	}
	node := subtree.Collapse(CountMonoid{})

	total := Count(len(taxa))
	for len(node.Children) > 0 {
		heaviest := node.Children[0]
		heaviestWeight := heaviest.Aggregate(CountMonoid{}).Weight
		for _, c := range node.Children[1:] {
			w := c.Aggregate(CountMonoid{}).Weight
			if w > heaviestWeight {
				heaviest, heaviestWeight = c, w
			}
		}
		if float64(heaviestWeight)/float64(total) < a.Threshold {
			break
		}
		node = heaviest
	}

	return node.Root, nil
}

// HybridAggregator walks from the RTL winner toward the root and stops at
// the first taxon whose own ancestor-chain weight share is at least
// Factor, or at the root. Factor 0 returns the RTL winner (MRTL). A
// chain's share never grows toward the root, so the result is either the
// RTL winner or the root; Factor 1 returns the root unless the winner's
// chain carries every input.
type HybridAggregator struct {
	rtl       *RTLAggregator
	ancestors []TaxonID
	Factor    float64
}

// NewHybridAggregator builds a HybridAggregator over taxonomy with the
// given interpolation factor (0 <= Factor <= 1).
func NewHybridAggregator(taxonomy *TaxonList, factor float64) *HybridAggregator {
	return &HybridAggregator{
		rtl:       NewRTLAggregator(taxonomy),
		ancestors: taxonomy.Ancestry(),
		Factor:    factor,
	}
}

// Aggregate returns the hybrid consensus taxon.
func (a *HybridAggregator) Aggregate(taxa []TaxonID) (TaxonID, error) {
	if len(taxa) == 0 {
		return 0, ErrEmptyInput
	}

	counts := CountTaxa(taxa)
	winner, err := a.rtl.Aggregate(taxa)
	if err != nil {
		return 0, err
	}

	total := Count(len(taxa))
	cur := winner
	for {
		share := float64(chainScore(a.ancestors, counts, cur)) / float64(total)
		if share >= a.Factor {
			return cur, nil
		}
		next := a.ancestors[cur]
		if next == 0 {
			return cur, nil
		}
		cur = next
	}
}
