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

package taxonomyio

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "taxonomy.tsv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadWellFormed(t *testing.T) {
	path := writeTemp(t, ""+
		"1\troot\tno rank\t1\t1\n"+
		"2\tbacteria\tsuperkingdom\t1\t1\n"+
		"3\tecoli\tspecies\t2\t1\n")

	tl, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tl.Root() != 1 {
		t.Fatalf("expected root 1, got %d", tl.Root())
	}
	taxon, ok := tl.Get(3)
	if !ok {
		t.Fatal("expected taxon 3 to be present")
	}
	if taxon.Name != "ecoli" || taxon.Parent != 2 {
		t.Fatalf("unexpected taxon: %+v", taxon)
	}
}

func TestLoadDefaultsValidColumnMissing(t *testing.T) {
	path := writeTemp(t, ""+
		"1\troot\tno rank\t1\n"+
		"2\tbacteria\tsuperkingdom\t1\n")

	tl, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	taxon, _ := tl.Get(2)
	if !taxon.Valid {
		t.Fatal("expected taxon with omitted valid column to default to valid")
	}
}

func TestLoadMissingParentFails(t *testing.T) {
	path := writeTemp(t, ""+
		"1\troot\tno rank\t1\t1\n"+
		"2\tbacteria\tsuperkingdom\t99\t1\n")

	if _, err := Load(path); err == nil {
		t.Fatal("expected an error for a row referencing a missing parent")
	}
}

func TestLoadEmptyFileFails(t *testing.T) {
	path := writeTemp(t, "")
	if _, err := Load(path); err == nil {
		t.Fatal("expected an error for an empty taxonomy file")
	}
}

func TestLoadMalformedIDFails(t *testing.T) {
	path := writeTemp(t, "notanumber\troot\tno rank\t1\t1\n")
	if _, err := Load(path); err == nil {
		t.Fatal("expected an error for a non-numeric taxon id")
	}
}
