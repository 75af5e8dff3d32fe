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

package folding

import (
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// ligatures maps latin ligature runes to their two-letter expansions.
// Unicode normalization does not decompose these (œ has no canonical
// decomposition) so they need explicit handling.
var ligatures = map[rune]string{
	'œ': "oe",
	'Œ': "OE",
	'æ': "ae",
	'Æ': "AE",
}

// LigatureFolder expands latin ligature runes (œ, æ) to their two-letter
// ASCII equivalents. All other runes are passed through unchanged.
type LigatureFolder struct{}

// Transform implements [transform.Transformer.Transform].
func (*LigatureFolder) Transform(dst, src []byte, atEOF bool) (int, int, error) {
	var nSrc, nDst int
	for nSrc < len(src) {
		c, size := utf8.DecodeRune(src[nSrc:])
		if c == utf8.RuneError && !atEOF {
			return nDst, nSrc, transform.ErrShortSrc
		}

		if expanded, ok := ligatures[c]; ok {
			if nDst+len(expanded) > len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			nDst += copy(dst[nDst:], expanded)
			nSrc += size
			continue
		}

		// NOTE: we cannot use size here because c could be utf8.RuneError in
		// which case size would be 1 but the length of utf8.RuneError is 3.
		if nDst+utf8.RuneLen(c) > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += utf8.EncodeRune(dst[nDst:], c)
		nSrc += size
	}

	return nDst, nSrc, nil
}

// Reset implements [transform.Transformer.Reset].
func (*LigatureFolder) Reset() {}
