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

import "fmt"

// ErrEmptyInput is returned when an aggregator is called with no taxa.
var ErrEmptyInput = fmt.Errorf("unitax: aggregation called on an empty list of taxa")

// ErrEmptyArray is returned when an RMQ index is built from a zero-length
// array. This is a programming error, not a data error.
var ErrEmptyArray = fmt.Errorf("unitax: rmq index built from an empty array")

// UnknownTaxonError means an input taxon ID is absent from the taxonomy
// (or, for the subtree builder, from the ancestry table it was given).
type UnknownTaxonError struct {
	ID TaxonID
}

func (e *UnknownTaxonError) Error() string {
	return fmt.Sprintf("unitax: unknown taxon id %d", e.ID)
}

// MalformedTaxonomyError means a taxonomy-construction invariant was
// violated: a duplicate ID, or a row referencing a missing parent.
type MalformedTaxonomyError struct {
	Detail string
}

func (e *MalformedTaxonomyError) Error() string {
	return fmt.Sprintf("unitax: malformed taxonomy: %s", e.Detail)
}

// IndexOutOfBoundsError means an RMQ query fell outside the indexed array.
// This is a programming error, not a data error.
type IndexOutOfBoundsError struct {
	Left, Right, Length int
}

func (e *IndexOutOfBoundsError) Error() string {
	return fmt.Sprintf("unitax: rmq query (%d, %d) out of bounds for array of length %d", e.Left, e.Right, e.Length)
}
