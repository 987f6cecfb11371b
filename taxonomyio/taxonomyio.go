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

// Package taxonomyio loads unitax.TaxonList values from tab-separated
// taxonomy files, the way the teacher package loaded NCBI's nodes.dmp.
package taxonomyio

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shenwei356/breader"
	"github.com/shenwei356/unitax"
)

// row is the intermediate record breader parses each line into, before
// it is validated and converted to a unitax.Taxon.
type row struct {
	line   int
	ID     uint32
	Name   string
	Rank   string
	Parent uint32
	Valid  bool
}

// Load reads a taxonomy file of tab-separated "id\tname\trank\tparent\tvalid"
// rows from file and builds a unitax.TaxonList. Malformed rows are reported
// as *unitax.MalformedTaxonomyError carrying the offending line number.
//
// valid accepts exactly "1"/"true"/"T"/"Y"/"y" (case sensitive) as true; an empty valid column defaults to true, matching files that omit
// the column entirely for taxonomies with no obsolete/merged nodes.
func Load(file string) (*unitax.TaxonList, error) {
	lineNo := 0
	parseFunc := func(line string) (interface{}, bool, error) {
		lineNo++
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			return nil, false, nil
		}
		fields := strings.Split(line, "\t")
		if len(fields) < 4 {
			return nil, false, fmt.Errorf("line %d: expected at least 4 tab-separated fields, got %d", lineNo, len(fields))
		}

		id, err := strconv.ParseUint(fields[0], 10, 32)
		if err != nil {
			return nil, false, fmt.Errorf("line %d: invalid taxon id %q: %w", lineNo, fields[0], err)
		}
		parent, err := strconv.ParseUint(fields[3], 10, 32)
		if err != nil {
			return nil, false, fmt.Errorf("line %d: invalid parent id %q: %w", lineNo, fields[3], err)
		}

		valid := true
		if len(fields) >= 5 && fields[4] != "" {
			valid = parseBool(fields[4])
		}

		return row{
			line:   lineNo,
			ID:     uint32(id),
			Name:   fields[1],
			Rank:   fields[2],
			Parent: uint32(parent),
			Valid:  valid,
		}, true, nil
	}

	reader, err := breader.NewBufferedReader(file, 8, 100, parseFunc)
	if err != nil {
		return nil, fmt.Errorf("taxonomyio: %w", err)
	}

	var rows []unitax.Taxon
	for chunk := range reader.Ch {
		if chunk.Err != nil {
			return nil, &unitax.MalformedTaxonomyError{Detail: chunk.Err.Error()}
		}
		for _, data := range chunk.Data {
			r := data.(row)
			rows = append(rows, unitax.Taxon{
				ID:     unitax.TaxonID(r.ID),
				Name:   r.Name,
				Rank:   unitax.ParseRank(r.Rank),
				Parent: unitax.TaxonID(r.Parent),
				Valid:  r.Valid,
			})
		}
	}

	if len(rows) == 0 {
		return nil, &unitax.MalformedTaxonomyError{Detail: "empty taxonomy file: " + file}
	}

	return unitax.Load(rows)
}

func parseBool(s string) bool {
	switch s {
	case "1", "true", "T", "Y", "y":
		return true
	default:
		return false
	}
}
