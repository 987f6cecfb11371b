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

import (
	"cmp"
	"math/bits"
)

// blockSize is the Fischer-Heun block width this implementation is tuned
// for. The labels bitmask is a uint32, one bit per in-block position;
// moving to 64-wide blocks is a valid variant but touches every mask and
// shift constant below.
const blockSize = 32

// RMQIndex answers "where is the minimum in A[l..=r]?" in O(1) after O(n)
// preprocessing, using the block-sparse-table-plus-bitmask scheme: a
// per-block minimum array, a sparse table of inter-block minima, and a
// per-position 32-bit label encoding the nearest smaller in-block
// predecessors.
type RMQIndex[T cmp.Ordered] struct {
	array    []T
	blockMin []int   // blockMin[b] = index in array of the minimum of block b
	sparse   [][]int // sparse[k][b] = index of the minimum across blocks [b, b+2^(k+1))
	labels   []uint32
}

// NewRMQIndex preprocesses array for O(1) range-minimum queries. Ties
// within a range are broken by lowest index throughout. Fails with
// ErrEmptyArray if array has zero length.
func NewRMQIndex[T cmp.Ordered](array []T) (*RMQIndex[T], error) {
	if len(array) == 0 {
		return nil, ErrEmptyArray
	}

	blockMin := computeBlockMin(array)
	sparse := computeSparse(array, blockMin)
	labels := computeLabels(array)

	return &RMQIndex[T]{
		array:    array,
		blockMin: blockMin,
		sparse:   sparse,
		labels:   labels,
	}, nil
}

func computeBlockMin[T cmp.Ordered](array []T) []int {
	n := len(array)
	numBlocks := (n + blockSize - 1) / blockSize
	blockMin := make([]int, numBlocks)
	for b := 0; b < numBlocks; b++ {
		start := b * blockSize
		end := start + blockSize
		if end > n {
			end = n
		}
		best := start
		for i := start + 1; i < end; i++ {
			if array[i] < array[best] {
				best = i
			}
		}
		blockMin[b] = best
	}
	return blockMin
}

// aggregateMinima collapses adjacent pairs of a minima-index array
// `shift` apart into one level, breaking ties toward the left index.
func aggregateMinima[T cmp.Ordered](array []T, shift int, minima []int) []int {
	if shift >= len(minima) {
		return nil
	}
	out := make([]int, len(minima)-shift)
	for i := range out {
		l, r := minima[i], minima[i+shift]
		if array[l] <= array[r] {
			out[i] = l
		} else {
			out[i] = r
		}
	}
	return out
}

func computeSparse[T cmp.Ordered](array []T, blockMin []int) [][]int {
	length := intLog2(len(blockMin))
	if length == 0 {
		return nil
	}
	sparse := make([][]int, length)
	sparse[0] = aggregateMinima(array, 1, blockMin)
	for k := 1; k < length; k++ {
		sparse[k] = aggregateMinima(array, 1<<k, sparse[k-1])
	}
	return sparse
}

func computeLabels[T cmp.Ordered](array []T) []uint32 {
	labels := make([]uint32, len(array))
	stack := make([]int, 0, blockSize)
	for i := range array {
		if i%blockSize == 0 {
			stack = stack[:0]
		}
		for len(stack) > 0 && array[i] < array[stack[len(stack)-1]] {
			stack = stack[:len(stack)-1]
		}
		if len(stack) > 0 {
			g := stack[len(stack)-1]
			labels[i] = labels[g] | (1 << uint(g%blockSize))
		}
		stack = append(stack, i)
	}
	return labels
}

// intLog2 returns floor(log2(n)) for n >= 1.
func intLog2(n int) int {
	return bits.Len(uint(n)) - 1
}

// clearLowBits clears the low x bits of n.
func clearLowBits(n, x int) int {
	return (n >> uint(x)) << uint(x)
}

// clearLowBits32 clears the low x bits of a label bitmask.
func clearLowBits32(n uint32, x int) uint32 {
	return (n >> uint(x)) << uint(x)
}

func (x *RMQIndex[T]) minInBlock(left, right int) int {
	v := clearLowBits32(x.labels[right], left%blockSize)
	if v == 0 {
		return right
	}
	return clearLowBits(left, 5) + bits.TrailingZeros32(v)
}

func tieBreak[T cmp.Ordered](array []T, a, b int) int {
	if array[a] <= array[b] {
		return a
	}
	return b
}

// Query returns an index i in [l, r] (l, r inclusive, l <= r) such that
// array[i] is minimal, breaking ties toward the lowest index. l > r is a
// caller error, not a range to normalise, and is rejected.
func (x *RMQIndex[T]) Query(l, r int) (int, error) {
	if l < 0 || r < 0 || l >= len(x.array) || r >= len(x.array) || l > r {
		return 0, &IndexOutOfBoundsError{Left: l, Right: r, Length: len(x.array)}
	}
	if l == r {
		return l, nil
	}
	left, right := l, r

	blockDiff := (right >> 5) - (left >> 5)
	switch blockDiff {
	case 0:
		return x.minInBlock(left, right), nil
	case 1:
		lm := x.minInBlock(left, clearLowBits(left, 5)+blockSize-1)
		rm := x.minInBlock(clearLowBits(right, 5), right)
		return tieBreak(x.array, lm, rm), nil
	default:
		lm := x.minInBlock(left, clearLowBits(left, 5)+blockSize-1)
		rm := x.minInBlock(clearLowBits(right, 5), right)

		var mid int
		if blockDiff == 2 {
			mid = x.blockMin[(left>>5)+1]
		} else {
			k := intLog2(blockDiff-1) - 1
			t1 := x.sparse[k][(left>>5)+1]
			t2 := x.sparse[k][(right>>5)-(1<<uint(k+1))]
			mid = tieBreak(x.array, t1, t2)
		}

		best := tieBreak(x.array, lm, mid)
		best = tieBreak(x.array, best, rm)
		return best, nil
	}
}
