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

import "sort"

// TaxonID identifies a node in the taxonomy. IDs are 1-based and dense; 0
// is never a valid taxon and is used internally as a "no taxon" sentinel.
type TaxonID uint32

// Rank is one of the standard biological ranks, plus NoRank. It is totally
// ordered only for the purposes of SnapToRank; the aggregators never
// compare ranks.
type Rank int

// The standard ranks, ordered from broadest to narrowest.
const (
	NoRank Rank = iota
	Superkingdom
	Kingdom
	Subkingdom
	Superphylum
	Phylum
	Subphylum
	Superclass
	Class
	Subclass
	Infraclass
	Cohort
	Subcohort
	Superorder
	Order
	Suborder
	Infraorder
	Parvorder
	Superfamily
	Family
	Subfamily
	Tribe
	Subtribe
	Genus
	Subgenus
	SpeciesGroup
	SpeciesSubgroup
	Species
	Subspecies
	Varietas
	Forma
)

var rankNames = [...]string{
	NoRank:          "no rank",
	Superkingdom:    "superkingdom",
	Kingdom:         "kingdom",
	Subkingdom:      "subkingdom",
	Superphylum:     "superphylum",
	Phylum:          "phylum",
	Subphylum:       "subphylum",
	Superclass:      "superclass",
	Class:           "class",
	Subclass:        "subclass",
	Infraclass:      "infraclass",
	Cohort:          "cohort",
	Subcohort:       "subcohort",
	Superorder:      "superorder",
	Order:           "order",
	Suborder:        "suborder",
	Infraorder:      "infraorder",
	Parvorder:       "parvorder",
	Superfamily:     "superfamily",
	Family:          "family",
	Subfamily:       "subfamily",
	Tribe:           "tribe",
	Subtribe:        "subtribe",
	Genus:           "genus",
	Subgenus:        "subgenus",
	SpeciesGroup:    "species group",
	SpeciesSubgroup: "species subgroup",
	Species:         "species",
	Subspecies:      "subspecies",
	Varietas:        "varietas",
	Forma:           "forma",
}

var rankByName = func() map[string]Rank {
	m := make(map[string]Rank, len(rankNames))
	for r, name := range rankNames {
		m[name] = Rank(r)
	}
	return m
}()

// String returns the rank's canonical lower-case name.
func (r Rank) String() string {
	if int(r) < 0 || int(r) >= len(rankNames) {
		return "no rank"
	}
	return rankNames[r]
}

// ParseRank maps a canonical rank name back to a Rank. Unrecognised names
// map to NoRank.
func ParseRank(name string) Rank {
	if r, ok := rankByName[name]; ok {
		return r
	}
	return NoRank
}

// Taxon is a single node of the taxonomy.
type Taxon struct {
	ID     TaxonID
	Name   string
	Rank   Rank
	Parent TaxonID
	Valid  bool
}

// TaxonList is a dense id -> Taxon mapping, sized to the largest ID seen
// at Load time. Missing slots hold a nil *Taxon.
type TaxonList struct {
	taxa     []*Taxon
	root     TaxonID
	children [][]TaxonID // children[parent] = sorted child IDs, root excluded from its own list
}

// Load builds a TaxonList from taxon rows. It fails with
// *MalformedTaxonomyError if two rows share an ID, if a row's parent is
// never defined by another row, or if the root (a row with ID == Parent)
// is missing or not unique.
func Load(rows []Taxon) (*TaxonList, error) {
	var maxID TaxonID
	for _, row := range rows {
		if row.ID > maxID {
			maxID = row.ID
		}
	}

	taxa := make([]*Taxon, maxID+1)
	var root TaxonID
	var haveRoot bool

	for i := range rows {
		row := rows[i]
		if row.ID == 0 {
			return nil, &MalformedTaxonomyError{Detail: "taxon id 0 is reserved"}
		}
		if taxa[row.ID] != nil {
			return nil, &MalformedTaxonomyError{Detail: "duplicate taxon id"}
		}
		taxa[row.ID] = &row

		if row.ID == row.Parent {
			if haveRoot {
				return nil, &MalformedTaxonomyError{Detail: "more than one self-referencing root row"}
			}
			root = row.ID
			haveRoot = true
		}
	}
	if !haveRoot {
		return nil, &MalformedTaxonomyError{Detail: "no root row (id == parent) found"}
	}

	children := make([][]TaxonID, maxID+1)
	for _, row := range rows {
		if row.ID == root {
			continue
		}
		if int(row.Parent) >= len(taxa) || taxa[row.Parent] == nil {
			return nil, &MalformedTaxonomyError{Detail: "row references a missing parent"}
		}
		children[row.Parent] = append(children[row.Parent], row.ID)
	}
	for i := range children {
		sort.Slice(children[i], func(a, b int) bool { return children[i][a] < children[i][b] })
	}

	return &TaxonList{taxa: taxa, root: root, children: children}, nil
}

// Get returns the taxon stored at id, and whether one is present.
func (tl *TaxonList) Get(id TaxonID) (*Taxon, bool) {
	if int(id) >= len(tl.taxa) || tl.taxa[id] == nil {
		return nil, false
	}
	return tl.taxa[id], true
}

// MaxID returns the largest ID the TaxonList was sized for.
func (tl *TaxonList) MaxID() TaxonID {
	return TaxonID(len(tl.taxa) - 1)
}

// Root returns the taxonomy's root ID.
func (tl *TaxonList) Root() TaxonID {
	return tl.root
}

// ChildrenOf returns the sorted, direct children of id. The root is never
// its own child, so walking ChildrenOf from the root always terminates.
func (tl *TaxonList) ChildrenOf(id TaxonID) []TaxonID {
	if int(id) >= len(tl.children) {
		return nil
	}
	return tl.children[id]
}

// Ancestry derives the ancestor vector: ancestors[id] is the parent of id,
// or 0 ("None") at the root and at every missing slot. Because every
// present non-root taxon has a non-zero parent by the Load-time invariant,
// ancestors[id] == 0 && id != Root() also identifies an absent taxon -
// this is how BuildSubTree and the aggregators detect UnknownTaxon without
// a second presence bitmap.
func (tl *TaxonList) Ancestry() []TaxonID {
	anc := make([]TaxonID, len(tl.taxa))
	for id, t := range tl.taxa {
		if t == nil || TaxonID(id) == tl.root {
			continue
		}
		anc[id] = t.Parent
	}
	return anc
}

// SnapToRank walks id's ancestor chain until it finds a taxon of the given
// rank, or the root is reached without a match. The second return value is
// false when id itself is absent, or the walk reaches the root with no
// matching rank along the way.
func (tl *TaxonList) SnapToRank(id TaxonID, rank Rank) (TaxonID, bool) {
	cur := id
	for {
		t, ok := tl.Get(cur)
		if !ok {
			return 0, false
		}
		if t.Rank == rank {
			return cur, true
		}
		if cur == tl.root {
			return 0, false
		}
		cur = t.Parent
	}
}

// FilterValid walks id's ancestor chain until it finds a taxon marked
// valid, or overruns the root without one.
func (tl *TaxonList) FilterValid(id TaxonID) (TaxonID, bool) {
	cur := id
	for {
		t, ok := tl.Get(cur)
		if !ok {
			return 0, false
		}
		if t.Valid {
			return cur, true
		}
		if cur == tl.root {
			return 0, false
		}
		cur = t.Parent
	}
}

// isPresent reports whether id names a taxon reachable from ancestors, per
// the sentinel convention documented on TaxonList.Ancestry.
func isPresent(ancestors []TaxonID, root, id TaxonID) bool {
	if id == 0 || int(id) >= len(ancestors) {
		return false
	}
	return id == root || ancestors[id] != 0
}
