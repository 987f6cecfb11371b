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

// Package fstindex builds and queries a string -> uint64 index backed by a
// finite state transducer, for the opaque peptide/k-mer lookup §6 of the
// taxonomic aggregation spec describes. The FST itself is
// github.com/blevesearch/vellum; fstindex wraps it in a small binary
// envelope so a truncated or foreign file is rejected before it ever
// reaches vellum.
package fstindex

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"io/ioutil"

	"github.com/blevesearch/vellum"
	"github.com/shenwei356/unitax"
)

// Version is the envelope format version.
const Version uint8 = 1

// Magic identifies an fstindex file.
var Magic = [8]byte{'.', 'u', 'n', 'i', 't', 'a', 'x', 'i'}

// ErrInvalidFormat means the magic number didn't match.
var ErrInvalidFormat = errors.New("fstindex: invalid index file format")

// ErrUnsupportedVersion means the envelope version differs from Version.
var ErrUnsupportedVersion = errors.New("fstindex: unsupported index format version")

var be = binary.BigEndian

// Lookup resolves a key to a taxon ID; Index.AsLookup returns one. The
// pept2lca and prot2kmer2lca CLI commands call Index.Get directly.
type Lookup func(key []byte) (unitax.TaxonID, bool)

// Build writes an envelope-wrapped FST to w from entries, which must
// yield keys in strictly increasing lexicographic order - vellum's
// requirement, carried over from the teacher's buildindex convention of
// taking already-sorted TSV input.
func Build(w io.Writer, entries func(yield func(string, uint64) bool)) error {
	if err := writeHeader(w); err != nil {
		return err
	}

	builder, err := vellum.New(w, nil)
	if err != nil {
		return fmt.Errorf("fstindex: %w", err)
	}

	var buildErr error
	entries(func(key string, val uint64) bool {
		if err := builder.Insert([]byte(key), val); err != nil {
			buildErr = fmt.Errorf("fstindex: inserting %q: %w", key, err)
			return false
		}
		return true
	})
	if buildErr != nil {
		return buildErr
	}

	if err := builder.Close(); err != nil {
		return fmt.Errorf("fstindex: %w", err)
	}
	return nil
}

func writeHeader(w io.Writer) error {
	if err := binary.Write(w, be, Magic); err != nil {
		return err
	}
	return binary.Write(w, be, Version)
}

// headerLen is the fixed size in bytes of Magic plus the version byte.
const headerLen = len(Magic) + 1

// Index is an opened, queryable fstindex file.
type Index struct {
	fst *vellum.FST
}

// Open reads and validates the envelope header from r, then loads the
// remaining size-headerLen bytes as a vellum FST.
func Open(r io.ReaderAt, size int64) (*Index, error) {
	if size < int64(headerLen) {
		return nil, ErrInvalidFormat
	}

	header := make([]byte, headerLen)
	if _, err := r.ReadAt(header, 0); err != nil {
		return nil, fmt.Errorf("fstindex: %w", err)
	}
	if !bytes.Equal(header[:len(Magic)], Magic[:]) {
		return nil, ErrInvalidFormat
	}
	if header[len(Magic)] != Version {
		return nil, ErrUnsupportedVersion
	}

	body := io.NewSectionReader(r, int64(headerLen), size-int64(headerLen))
	data, err := ioutil.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("fstindex: %w", err)
	}

	fst, err := vellum.Load(data)
	if err != nil {
		return nil, fmt.Errorf("fstindex: %w", err)
	}
	return &Index{fst: fst}, nil
}

// Get looks up key and returns the stored taxon ID.
func (idx *Index) Get(key []byte) (unitax.TaxonID, bool, error) {
	val, found, err := idx.fst.Get(key)
	if err != nil {
		return 0, false, fmt.Errorf("fstindex: %w", err)
	}
	if !found {
		return 0, false, nil
	}
	return unitax.TaxonID(val), true, nil
}

// AsLookup adapts idx to the Lookup function type, swallowing lookup
// errors as misses - callers needing the error should call Get directly.
func (idx *Index) AsLookup() Lookup {
	return func(key []byte) (unitax.TaxonID, bool) {
		id, ok, err := idx.Get(key)
		if err != nil {
			return 0, false
		}
		return id, ok
	}
}

// Close releases the underlying FST's resources.
func (idx *Index) Close() error {
	return idx.fst.Close()
}
