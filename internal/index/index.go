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

// Package index implements a generic sorted array index.
package index

import (
	"fmt"
	"slices"
	"sort"
	"strings"
)

// Index is a generic sorted array index.
type Index[V fmt.Stringer] struct {
	// index is sorted by the entry's String value.
	index []V

	cmp func(string, string) int
}

// NewIndex creates an index from the given slice and comparison function.
// cmp(a, b) should return a negative number when a < b, a positive number when
// a > b and zero when a == b or a and b are incomparable in the sense of a
// strict weak ordering.
func NewIndex[V fmt.Stringer](index []V, cmp func(string, string) int) *Index[V] {
	sorted := make([]V, len(index))
	copy(sorted, index)
	slices.SortFunc(sorted, func(a, b V) int {
		return cmp(a.String(), b.String())
	})

	return &Index[V]{
		index: sorted,
		cmp:   cmp,
	}
}

// Search performs a binary search over the index and returns exactly matching
// entries.
func (idx *Index[V]) Search(query string) []V {
	i, found := sort.Find(len(idx.index), func(i int) int {
		return idx.cmp(query, idx.index[i].String())
	})

	if !found {
		return nil
	}

	j := i
	//nolint:revive // This block increments j.
	for ; j < len(idx.index) && idx.cmp(query, idx.index[j].String()) == 0; j++ {
	}
	return idx.index[i:j]
}

// SearchPrefix returns up to limit entries whose String value starts with
// prefix, in index order. A limit of zero or less means no limit. SearchPrefix
// assumes cmp is consistent with byte-wise ordering so that all entries
// sharing a prefix form one contiguous run.
func (idx *Index[V]) SearchPrefix(prefix string, limit int) []V {
	i, _ := sort.Find(len(idx.index), func(i int) int {
		return idx.cmp(prefix, idx.index[i].String())
	})

	// The binary search can land anywhere inside a run of entries sharing
	// the prefix. Back up to the start of the run.
	for i > 0 && strings.HasPrefix(idx.index[i-1].String(), prefix) {
		i--
	}

	var matches []V
	for j := i; j < len(idx.index); j++ {
		if !strings.HasPrefix(idx.index[j].String(), prefix) {
			break
		}
		matches = append(matches, idx.index[j])
		if limit > 0 && len(matches) >= limit {
			break
		}
	}
	return matches
}
