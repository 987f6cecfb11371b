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

import "testing"

func TestCountTaxaTalliesOccurrences(t *testing.T) {
	counts := CountTaxa([]TaxonID{4, 4, 2, 4, 2, 9})
	want := map[TaxonID]Count{4: 3, 2: 2, 9: 1}
	if len(counts) != len(want) {
		t.Fatalf("got %d distinct keys, want %d", len(counts), len(want))
	}
	for k, v := range want {
		if counts[k] != v {
			t.Fatalf("counts[%d] = %d, want %d", k, counts[k], v)
		}
	}
}

func TestCountTaxaEmptyInput(t *testing.T) {
	counts := CountTaxa(nil)
	if len(counts) != 0 {
		t.Fatalf("expected an empty map, got %d entries", len(counts))
	}
}

func TestSortedKeysIsDeterministicAndAscending(t *testing.T) {
	counts := CountTaxa([]TaxonID{50, 3, 7, 3, 1000, 7})
	want := []TaxonID{3, 7, 50, 1000}

	for i := 0; i < 10; i++ {
		keys := sortedKeys(counts)
		if len(keys) != len(want) {
			t.Fatalf("got %d keys, want %d", len(keys), len(want))
		}
		for j, k := range keys {
			if k != want[j] {
				t.Fatalf("run %d: keys[%d] = %d, want %d", i, j, k, want[j])
			}
		}
	}
}

func TestCountMonoidIsIdentityForCombine(t *testing.T) {
	m := CountMonoid{}
	if m.Combine(m.Zero(), 7) != 7 {
		t.Fatal("zero should be a left identity for Combine")
	}
	if m.Combine(7, m.Zero()) != 7 {
		t.Fatal("zero should be a right identity for Combine")
	}
	if m.Combine(3, 4) != 7 {
		t.Fatal("Combine should add")
	}
}
