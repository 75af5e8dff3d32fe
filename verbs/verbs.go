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

// Package verbs implements reading the French verb list and searching it.
//
// The verb list is an XML document of <v> elements. Each <v> contains the
// infinitive in an <i> element, the name of its conjugation template in a
// <t> element, and an optional empty <aspirate-h/> marker:
//
//	<v><i>haïr</i><t>haïr:aïr</t><aspirate-h/></v>
//
// A <v> missing either the infinitive or the template reference is silently
// dropped. Clients depend on this leniency; incomplete records must never
// abort a parse.
package verbs

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/conjugueur/conjugueur/internal/folding"
)

// ErrMalformedDocument indicates that the verb list XML could not be
// tokenized. It is never returned for records with missing fields.
var ErrMalformedDocument = errors.New("malformed verb document")

// VerbRecord is one inflectable verb.
type VerbRecord struct {
	// Verb is the canonical spelling of the infinitive. It may contain
	// accents, hyphens or apostrophes.
	Verb string `json:"verb"`

	// TemplateName names the conjugation template, e.g. "aimer:er".
	// Referential integrity is not enforced; a dangling name resolves to
	// not-found at lookup time.
	TemplateName string `json:"templateName"`

	// AspirateH marks verbs beginning with an aspirate h. It affects
	// elision in clients and is carried as opaque metadata.
	AspirateH bool `json:"aspirateH"`
}

// Parse reads the verb list from r and returns the records sorted by verb in
// dictionary order. Incomplete records are dropped; an error is returned only
// when the XML itself is malformed.
func Parse(r io.Reader) ([]VerbRecord, error) {
	d := xml.NewDecoder(r)

	var records []VerbRecord
	var verb, templateName strings.Builder
	var inV, inI, inT, aspirateH bool

	for {
		tok, err := d.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "v":
				inV = true
				verb.Reset()
				templateName.Reset()
				aspirateH = false
			case "i":
				if inV {
					inI = true
				}
			case "t":
				if inV {
					inT = true
				}
			case "aspirate-h":
				if inV {
					aspirateH = true
				}
			}
		case xml.CharData:
			if inI {
				verb.Write(t)
			} else if inT {
				templateName.Write(t)
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "v":
				v := strings.TrimSpace(verb.String())
				tn := strings.TrimSpace(templateName.String())
				if v != "" && tn != "" {
					records = append(records, VerbRecord{
						Verb:         v,
						TemplateName: tn,
						AspirateH:    aspirateH,
					})
				}
				inV = false
				aspirateH = false
			case "i":
				inI = false
			case "t":
				inT = false
			}
		}
	}

	// Exact lookup binary searches this ordering.
	slices.SortFunc(records, compareByVerb)

	return records, nil
}

// compareByVerb orders records the way a French dictionary does: accents are
// ignored for ordering, so être sorts before étudier. Spellings that fold to
// the same string fall back to ordinal order, keeping the order total.
func compareByVerb(a, b VerbRecord) int {
	if c := strings.Compare(folding.Fold(a.Verb), folding.Fold(b.Verb)); c != 0 {
		return c
	}
	return strings.Compare(a.Verb, b.Verb)
}
