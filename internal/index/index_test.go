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

package index

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type String string

func (s String) String() string {
	return string(s)
}

func TestIndex_Search(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		index    []String
		query    string
		expected []String
	}{
		{
			name:     "single result",
			index:    []String{"foo", "bar", "baz", "bar"},
			query:    "foo",
			expected: []String{"foo"},
		},
		{
			name:     "multiple results",
			index:    []String{"foo", "bar", "baz", "bar"},
			query:    "bar",
			expected: []String{"bar", "bar"},
		},
		{
			name:     "no results",
			index:    []String{"foo", "bar", "baz", "bar"},
			query:    "none",
			expected: nil,
		},
		{
			name:     "prefix is not a match",
			index:    []String{"foo", "foobar"},
			query:    "foob",
			expected: nil,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			index := NewIndex(test.index, strings.Compare)

			if diff := cmp.Diff(test.expected, index.Search(test.query)); diff != "" {
				t.Fatalf("Search (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestIndex_SearchPrefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		index    []String
		prefix   string
		limit    int
		expected []String
	}{
		{
			name:     "empty index",
			index:    []String{},
			prefix:   "foo",
			limit:    0,
			expected: nil,
		},
		{
			name:     "no match",
			index:    []String{"bar", "baz", "foo"},
			prefix:   "hoge",
			limit:    0,
			expected: nil,
		},
		{
			name:     "whole run",
			index:    []String{"foo", "foobar", "foobaz", "fop"},
			prefix:   "foo",
			limit:    0,
			expected: []String{"foo", "foobar", "foobaz"},
		},
		{
			name:     "run start found by backward scan",
			index:    []String{"abs", "absorber", "absoudre", "abstenir", "abstraire"},
			prefix:   "abs",
			limit:    0,
			expected: []String{"abs", "absorber", "absoudre", "abstenir", "abstraire"},
		},
		{
			name:     "limit caps results",
			index:    []String{"aa", "ab", "ac", "ad"},
			prefix:   "a",
			limit:    2,
			expected: []String{"aa", "ab"},
		},
		{
			name:     "empty prefix matches everything",
			index:    []String{"bar", "baz", "foo"},
			prefix:   "",
			limit:    0,
			expected: []String{"bar", "baz", "foo"},
		},
		{
			name:     "empty prefix with limit",
			index:    []String{"bar", "baz", "foo"},
			prefix:   "",
			limit:    2,
			expected: []String{"bar", "baz"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			index := NewIndex(test.index, strings.Compare)

			if diff := cmp.Diff(test.expected, index.SearchPrefix(test.prefix, test.limit)); diff != "" {
				t.Fatalf("SearchPrefix (-want, +got):\n%s", diff)
			}
		})
	}
}
