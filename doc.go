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

// Package unitax reduces multisets of taxon IDs, produced by peptide or
// k-mer lookups against a taxonomy-labelled index, to a single consensus
// taxon.
//
// Three aggregation strategies are provided: a tree-based LCA aggregator
// (package-local SubTree projection + collapse), an O(1)-query RMQ-based
// LCA aggregator (Euler tour + Fischer-Heun sparse table), and a
// root-to-leaf (RTL) aggregator that scores each candidate by the summed
// occurrence counts along its ancestor chain. The two LCA flavours agree
// on every well-formed input; they differ only in preprocessing cost and
// per-query asymptotics.
//
// The package owns no I/O: taxonomy loading, FST-backed peptide indices,
// and the CLI live in sibling packages (taxonomyio, fstindex, cmd) that
// import unitax, never the reverse.
package unitax

// VERSION is the package version, a build-time constant like the rest of
// this repository's ambient metadata.
const VERSION = "0.1.0"
