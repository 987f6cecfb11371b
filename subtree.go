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

// SubTree is a minimal tree covering a weighted multiset of taxa plus the
// ancestors needed to connect them. Leaves carry the caller's weights;
// synthesised internal nodes carry the monoid's zero value until Aggregate
// folds weights bottom-up.
type SubTree[W any] struct {
	Root     TaxonID
	Weight   W
	Children []*SubTree[W]
}

type edgeSet struct {
	children map[TaxonID][]TaxonID
	seen     map[TaxonID]map[TaxonID]bool
}

func newEdgeSet() *edgeSet {
	return &edgeSet{children: map[TaxonID][]TaxonID{}, seen: map[TaxonID]map[TaxonID]bool{}}
}

func (e *edgeSet) add(parent, child TaxonID) {
	if e.seen[parent] == nil {
		e.seen[parent] = map[TaxonID]bool{}
	}
	if e.seen[parent][child] {
		return
	}
	e.seen[parent][child] = true
	e.children[parent] = append(e.children[parent], child)
}

// BuildSubTree projects (root, ancestors, counts) into a minimal tree
// containing every counted taxon plus the intermediate ancestors needed
// to connect them to root, in work linear in the size of the result.
// Fails with *UnknownTaxonError if a counted taxon is absent from
// ancestors.
func BuildSubTree[W any](root TaxonID, ancestors []TaxonID, counts map[TaxonID]W, m Monoid[W]) (*SubTree[W], error) {
	needed := map[TaxonID]bool{root: true}
	edges := newEdgeSet()

	for id := range counts {
		if !isPresent(ancestors, root, id) {
			return nil, &UnknownTaxonError{ID: id}
		}
		cur := id
		for {
			if needed[cur] {
				break
			}
			needed[cur] = true
			if cur == root {
				break
			}
			parent := ancestors[cur]
			edges.add(parent, cur)
			cur = parent
		}
	}

	return buildSubTreeNode(root, edges, counts, m), nil
}

// buildSubTreeNode builds the tree bottom-up with an explicit stack
// (taxonomy depth is unbounded along a single path, so this avoids
// recursing once per tree level).
func buildSubTreeNode[W any](root TaxonID, edges *edgeSet, counts map[TaxonID]W, m Monoid[W]) *SubTree[W] {
	type frame struct {
		id   TaxonID
		idx  int
		node *SubTree[W]
	}

	rootNode := &SubTree[W]{Root: root}
	stack := []*frame{{id: root, node: rootNode}}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		kids := edges.children[top.id]
		if top.idx < len(kids) {
			childID := kids[top.idx]
			top.idx++
			childNode := &SubTree[W]{Root: childID}
			top.node.Children = append(top.node.Children, childNode)
			stack = append(stack, &frame{id: childID, node: childNode})
			continue
		}

		if w, ok := counts[top.id]; ok {
			top.node.Weight = w
		} else {
			top.node.Weight = m.Zero()
		}
		stack = stack[:len(stack)-1]
	}

	return rootNode
}

// Collapse repeatedly replaces any node whose children set contains
// exactly one child by that child, summing weights with m.Combine. The
// result is a tree in which every internal node is a true branching point
// (or the root); its root is the deepest node whose subtree contains every
// leaf of s. A counted taxon with counted descendants is not a leaf, so
// it does not keep the root from moving below it.
func (s *SubTree[W]) Collapse(m Monoid[W]) *SubTree[W] {
	type frame struct {
		node    *SubTree[W]
		visited bool
	}

	stack := []*frame{{node: s}}
	collapsed := map[*SubTree[W]]*SubTree[W]{}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if !top.visited {
			top.visited = true
			for _, c := range top.node.Children {
				stack = append(stack, &frame{node: c})
			}
			continue
		}
		stack = stack[:len(stack)-1]

		children := make([]*SubTree[W], 0, len(top.node.Children))
		for _, c := range top.node.Children {
			children = append(children, collapsed[c])
		}

		var out *SubTree[W]
		if len(children) == 1 {
			only := children[0]
			only.Weight = m.Combine(only.Weight, top.node.Weight)
			out = only
		} else {
			out = &SubTree[W]{Root: top.node.Root, Weight: top.node.Weight, Children: children}
		}
		collapsed[top.node] = out
	}

	return collapsed[s]
}

// Aggregate folds weights bottom-up with m.Combine, returning a subtree of
// the same shape whose every node's Weight is the sum of its own weight
// and every descendant's.
func (s *SubTree[W]) Aggregate(m Monoid[W]) *SubTree[W] {
	type frame struct {
		node    *SubTree[W]
		visited bool
	}

	stack := []*frame{{node: s}}
	folded := map[*SubTree[W]]*SubTree[W]{}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if !top.visited {
			top.visited = true
			for _, c := range top.node.Children {
				stack = append(stack, &frame{node: c})
			}
			continue
		}
		stack = stack[:len(stack)-1]

		total := top.node.Weight
		children := make([]*SubTree[W], 0, len(top.node.Children))
		for _, c := range top.node.Children {
			fc := folded[c]
			total = m.Combine(total, fc.Weight)
			children = append(children, fc)
		}
		folded[top.node] = &SubTree[W]{Root: top.node.Root, Weight: total, Children: children}
	}

	return folded[s]
}
