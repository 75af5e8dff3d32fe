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

// Package folding implements text folding used to build and query the
// accent-insensitive verb index. Folded forms are used only for comparison,
// never for display.
package folding

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Accents returns a [transform.Transformer] that removes diacritics and
// expands latin ligatures. Characters with no ASCII equivalent pass through
// unchanged.
func Accents() transform.Transformer {
	return transform.Chain(
		&LigatureFolder{},
		norm.NFD,
		runes.Remove(runes.In(unicode.Mn)),
		norm.NFC,
	)
}

// Fold returns the canonical folded form of s: diacritics stripped,
// ligatures expanded, lowercased. It is total over any input and idempotent.
func Fold(s string) string {
	folded, _, err := transform.String(Accents(), s)
	if err != nil {
		// The chain never fails on valid UTF-8. Invalid input is folded
		// as-is so that lookups still behave deterministically.
		folded = s
	}
	return strings.ToLower(folded)
}
