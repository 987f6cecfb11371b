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
	"math/rand"
	"testing"
)

func bruteMinPos(array []int, l, r int) int {
	best := l
	for i := l + 1; i <= r; i++ {
		if array[i] < array[best] {
			best = i
		}
	}
	return best
}

func TestRMQIndexAgainstBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for _, n := range []int{1, 2, 3, 31, 32, 33, 63, 64, 65, 200, 2048} {
		array := make([]int, n)
		for i := range array {
			array[i] = rng.Intn(50)
		}
		idx, err := NewRMQIndex(array)
		if err != nil {
			t.Fatalf("n=%d: unexpected error: %v", n, err)
		}

		for trial := 0; trial < 200; trial++ {
			l := rng.Intn(n)
			r := rng.Intn(n)
			if l > r {
				l, r = r, l
			}
			got, err := idx.Query(l, r)
			if err != nil {
				t.Fatalf("n=%d, l=%d, r=%d: unexpected error: %v", n, l, r, err)
			}
			if array[got] != array[bruteMinPos(array, l, r)] {
				t.Fatalf("n=%d, l=%d, r=%d: got value %d at pos %d, want value %d",
					n, l, r, array[got], got, array[bruteMinPos(array, l, r)])
			}
		}
	}
}

func TestRMQIndexRejectsEmpty(t *testing.T) {
	if _, err := NewRMQIndex([]int{}); err != ErrEmptyArray {
		t.Fatalf("expected ErrEmptyArray, got %v", err)
	}
}

func TestRMQIndexRejectsOutOfBounds(t *testing.T) {
	idx, err := NewRMQIndex([]int{3, 1, 2})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := idx.Query(-1, 1); err == nil {
		t.Fatal("expected an error for a negative left bound")
	}
	if _, err := idx.Query(0, 5); err == nil {
		t.Fatal("expected an error for a right bound past the array")
	}
	if _, err := idx.Query(2, 1); err == nil {
		t.Fatal("expected an error for l > r")
	}
}

func TestRMQIndexSinglePoint(t *testing.T) {
	idx, err := NewRMQIndex([]int{7, 2, 9})
	if err != nil {
		t.Fatal(err)
	}
	pos, err := idx.Query(1, 1)
	if err != nil {
		t.Fatal(err)
	}
	if pos != 1 {
		t.Fatalf("expected pos 1, got %d", pos)
	}
}
