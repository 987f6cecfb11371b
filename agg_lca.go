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

// LCAAggregator computes the Lowest Common Ancestor of a multiset of taxa
// by projecting them into a SubTree and collapsing it.
type LCAAggregator struct {
	root      TaxonID
	ancestors []TaxonID
}

// NewLCAAggregator builds an LCAAggregator over taxonomy. The ancestor
// vector is computed once and reused by every Aggregate call.
func NewLCAAggregator(taxonomy *TaxonList) *LCAAggregator {
	return &LCAAggregator{root: taxonomy.Root(), ancestors: taxonomy.Ancestry()}
}

// Aggregate returns the root of the collapsed subtree: the deepest node
// whose subtree contains every queried taxon that has no queried
// descendant. A queried taxon that is an ancestor of another queried
// taxon does not pull the result up, so two taxa on one path give the
// deeper of the two.
func (a *LCAAggregator) Aggregate(taxa []TaxonID) (TaxonID, error) {
	if len(taxa) == 0 {
		return 0, ErrEmptyInput
	}
	counts := CountTaxa(taxa)
	subtree, err := BuildSubTree(a.root, a.ancestors, counts, CountMonoid{})
	if err != nil {
		return 0, err
	}
	return subtree.Collapse(CountMonoid{}).Root, nil
}
