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

// EulerTour is the linearised DFS visit sequence of a taxonomy tree, used
// to drive the RMQ-LCA aggregator: the LCA of u and v is
// tour[argmin(depth[first[u]:first[v]+1])].
type EulerTour struct {
	Tour  []TaxonID // visit sequence, length 2n-1 for n nodes
	Depth []uint32  // depth at each tour position
	First []int     // first tour index at which each taxon appears, -1 if never visited
}

type tourFrame struct {
	node     TaxonID
	depth    uint32
	children []TaxonID
	idx      int
}

// BuildTour walks the taxonomy from root via childrenOf using an explicit
// stack (taxonomies may be thousands of nodes deep along one path, and a
// recursive DFS would risk stack overflow), emitting every entry and
// re-entry into the tour.
func BuildTour(root TaxonID, maxID TaxonID, childrenOf func(TaxonID) []TaxonID) *EulerTour {
	first := make([]int, maxID+1)
	for i := range first {
		first[i] = -1
	}

	tour := make([]TaxonID, 0, 2*int(maxID)+1)
	depth := make([]uint32, 0, 2*int(maxID)+1)

	visit := func(id TaxonID, d uint32) {
		tour = append(tour, id)
		depth = append(depth, d)
		if first[id] == -1 {
			first[id] = len(tour) - 1
		}
	}

	visit(root, 0)
	stack := []*tourFrame{{node: root, depth: 0, children: childrenOf(root)}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if top.idx < len(top.children) {
			child := top.children[top.idx]
			top.idx++
			childDepth := top.depth + 1
			visit(child, childDepth)
			stack = append(stack, &tourFrame{node: child, depth: childDepth, children: childrenOf(child)})
		} else {
			stack = stack[:len(stack)-1]
			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				visit(parent.node, parent.depth)
			}
		}
	}

	return &EulerTour{Tour: tour, Depth: depth, First: first}
}
