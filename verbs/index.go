// Copyright 2025 The Conjugueur Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package verbs

import (
	"slices"
	"strings"

	"github.com/conjugueur/conjugueur/internal/folding"
	"github.com/conjugueur/conjugueur/internal/index"
)

// MaxSearchResults is the cap on the number of records returned by
// [Index.Search].
const MaxSearchResults = 20

// foldedVerb pairs a record's folded spelling with its position in the
// verb-sorted record list.
type foldedVerb struct {
	folded string
	pos    int
}

func (v *foldedVerb) String() string {
	return v.folded
}

// Index supports exact lookup and accent-insensitive prefix search over a
// verb list. It is immutable after construction and safe for concurrent use.
type Index struct {
	// records is sorted by Verb in dictionary order.
	records []VerbRecord

	// folded is sorted by the folded verb spelling.
	folded *index.Index[*foldedVerb]
}

// NewIndex builds an index over a copy of records.
func NewIndex(records []VerbRecord) *Index {
	sorted := slices.Clone(records)
	slices.SortFunc(sorted, compareByVerb)

	entries := make([]*foldedVerb, 0, len(sorted))
	for i, rec := range sorted {
		entries = append(entries, &foldedVerb{
			folded: folding.Fold(rec.Verb),
			pos:    i,
		})
	}

	return &Index{
		records: sorted,
		folded:  index.NewIndex(entries, strings.Compare),
	}
}

// Len returns the number of indexed records.
func (idx *Index) Len() int {
	return len(idx.records)
}

// Lookup returns the record whose spelling equals verb exactly. The match is
// literal: case and accents are significant.
func (idx *Index) Lookup(verb string) (VerbRecord, bool) {
	i, found := slices.BinarySearchFunc(idx.records, VerbRecord{Verb: verb}, compareByVerb)
	if !found {
		return VerbRecord{}, false
	}
	return idx.records[i], true
}

// Search returns records whose folded spelling starts with the folded query,
// capped at [MaxSearchResults]. Results come back in dictionary order.
//
// The cap is applied over the folded run before the final sort, so for runs
// longer than the cap the selected records are the first by folded form. The
// empty query matches every record, subject to the same selection.
func (idx *Index) Search(query string) []VerbRecord {
	matches := idx.folded.SearchPrefix(folding.Fold(query), MaxSearchResults)

	results := make([]VerbRecord, 0, len(matches))
	for _, m := range matches {
		results = append(results, idx.records[m.pos])
	}
	slices.SortFunc(results, compareByVerb)

	return results
}
