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

// RTLAggregator scores each distinct input taxon by the summed occurrence
// counts of its whole ancestor chain (root-to-leaf), and returns the
// taxon with the largest score.
type RTLAggregator struct {
	ancestors []TaxonID
}

// NewRTLAggregator builds an RTLAggregator over taxonomy's ancestor
// vector.
func NewRTLAggregator(taxonomy *TaxonList) *RTLAggregator {
	return &RTLAggregator{ancestors: taxonomy.Ancestry()}
}

// Aggregate scores every distinct taxon in taxa by its ancestor-chain
// count sum and returns the maximiser. Ties are broken deterministically
// by lowest taxon ID among the maximal-score candidates - not by map
// iteration order, which Go randomises per process and would make the
// tie impossible to reproduce across runs.
func (a *RTLAggregator) Aggregate(taxa []TaxonID) (TaxonID, error) {
	if len(taxa) == 0 {
		return 0, ErrEmptyInput
	}

	counts := CountTaxa(taxa)
	keys := sortedKeys(counts)

	best := keys[0]
	bestScore := chainScore(a.ancestors, counts, best)
	for _, id := range keys[1:] {
		score := chainScore(a.ancestors, counts, id)
		if score > bestScore {
			best, bestScore = id, score
		}
	}
	return best, nil
}

// MRTLAggregator is the maximum-root-to-leaf-path aggregator: identical to
// RTLAggregator when weights are plain occurrence counts, per the
// Hybrid/MRTL contract.
type MRTLAggregator = RTLAggregator

// NewMRTLAggregator is an alias for NewRTLAggregator, kept distinct so
// callers can spell out the strategy they asked for.
func NewMRTLAggregator(taxonomy *TaxonList) *MRTLAggregator {
	return NewRTLAggregator(taxonomy)
}
