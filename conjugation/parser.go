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

// Package conjugation implements reading French conjugation templates.
//
// Templates are an XML forest of <template name="..."> elements. Each
// template contains mood sections (<indicative>, <conditional>,
// <subjunctive>) and tense elements. Tense element names like <present> are
// reused across moods, so the slot a tense fills depends on the enclosing
// mood section. Tense elements contain person groups (<p>), and person
// groups contain sub-parts (<i>) whose trimmed text is collected in document
// order.
//
// Parsing is lenient by contract: a <template> without a name attribute is
// skipped, a <p> with no sub-part text contributes nothing, and unknown
// elements are ignored. Only unparseable XML is an error.
package conjugation

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrMalformedDocument indicates that the template XML could not be
// tokenized. Missing or extra semantic fields are tolerated and never cause
// an error.
var ErrMalformedDocument = errors.New("malformed conjugation document")

type mood int

const (
	moodNone mood = iota
	moodIndicative
	moodConditional
	moodSubjunctive

	// moodAny marks decision table rows whose tense tag resolves to the
	// same slot regardless of the open mood section.
	moodAny
)

// slot identifies one concrete form group within a template.
type slot int

const (
	slotNone slot = iota
	slotInfinitivePresent
	slotIndicativePresent
	slotIndicativeImperfect
	slotIndicativeFuture
	slotIndicativeSimplePast
	slotConditionalPresent
	slotSubjunctivePresent
	slotSubjunctiveImperfect
	slotImperativePresent
	slotPresentParticiple
	slotPastParticiple
)

// flatSlots are the slots with no person agreement; their person groups are
// appended to one flat sequence instead of forming six person-forms.
var flatSlots = map[slot]bool{
	slotInfinitivePresent: true,
	slotPresentParticiple: true,
}

type slotKey struct {
	tag  string
	mood mood
}

// slotTable resolves a tense tag plus the open mood section to a concrete
// slot. Combinations not in the table are ignored: the active slot is left
// unchanged.
var slotTable = map[slotKey]slot{
	{"infinitive-present", moodAny}:  slotInfinitivePresent,
	{"present", moodIndicative}:      slotIndicativePresent,
	{"present", moodConditional}:     slotConditionalPresent,
	{"present", moodSubjunctive}:     slotSubjunctivePresent,
	{"imperfect", moodIndicative}:    slotIndicativeImperfect,
	{"imperfect", moodSubjunctive}:   slotSubjunctiveImperfect,
	{"future", moodAny}:              slotIndicativeFuture,
	{"simple-past", moodAny}:         slotIndicativeSimplePast,
	{"imperative-present", moodAny}:  slotImperativePresent,
	{"present-participle", moodAny}:  slotPresentParticiple,
	{"past-participle", moodAny}:     slotPastParticiple,
}

func resolveSlot(tag string, m mood) (slot, bool) {
	if s, ok := slotTable[slotKey{tag, m}]; ok {
		return s, true
	}
	if s, ok := slotTable[slotKey{tag, moodAny}]; ok {
		return s, true
	}
	return slotNone, false
}

// parserState is the full mutable state carried through the XML event
// stream for the template currently being read. It is reset as a whole at
// every </template> so that no state leaks between templates.
type parserState struct {
	name    string
	hasName bool

	mood mood
	slot slot

	inP   bool
	inI   bool
	part  strings.Builder
	parts []string

	flat    map[slot]FlatForms
	persons map[slot]PersonForms
}

func newParserState() *parserState {
	return &parserState{
		flat:    map[slot]FlatForms{},
		persons: map[slot]PersonForms{},
	}
}

func (st *parserState) reset() {
	*st = *newParserState()
}

func (st *parserState) start(e xml.StartElement) {
	switch tag := e.Name.Local; tag {
	case "template":
		for _, attr := range e.Attr {
			if attr.Name.Local == "name" {
				st.name = attr.Value
				st.hasName = true
			}
		}
	case "indicative":
		st.mood = moodIndicative
	case "conditional":
		st.mood = moodConditional
	case "subjunctive":
		st.mood = moodSubjunctive
	case "p":
		st.inP = true
		st.parts = nil
	case "i":
		if st.inP {
			st.inI = true
			st.part.Reset()
		}
	default:
		if s, ok := resolveSlot(tag, st.mood); ok {
			st.slot = s
			// Re-entering a tense element restarts its slot.
			delete(st.flat, s)
			delete(st.persons, s)
		}
	}
}

func (st *parserState) text(data xml.CharData) {
	if st.inP && st.inI {
		st.part.Write(data)
	}
}

func (st *parserState) end(e xml.EndElement, templates map[string]*Template) {
	switch e.Name.Local {
	case "template":
		if st.hasName {
			templates[st.name] = st.materialize()
		}
		st.reset()
	case "indicative", "conditional", "subjunctive":
		st.mood = moodNone
	case "p":
		st.inP = false
		if len(st.parts) > 0 && st.slot != slotNone {
			if flatSlots[st.slot] {
				st.flat[st.slot] = append(st.flat[st.slot], st.parts...)
			} else {
				st.persons[st.slot] = append(st.persons[st.slot], st.parts)
			}
		}
		st.parts = nil
	case "i":
		if st.inI {
			if text := strings.TrimSpace(st.part.String()); text != "" {
				st.parts = append(st.parts, text)
			}
			st.inI = false
		}
	}
}

func (st *parserState) materialize() *Template {
	return &Template{
		Name: st.name,
		Infinitive: Infinitive{
			InfinitivePresent: st.flatForms(slotInfinitivePresent),
		},
		Indicative: Indicative{
			Present:    st.personForms(slotIndicativePresent),
			Imperfect:  st.personForms(slotIndicativeImperfect),
			Future:     st.personForms(slotIndicativeFuture),
			SimplePast: st.personForms(slotIndicativeSimplePast),
		},
		Conditional: Conditional{
			Present: st.personForms(slotConditionalPresent),
		},
		Subjunctive: Subjunctive{
			Present:   st.personForms(slotSubjunctivePresent),
			Imperfect: st.personForms(slotSubjunctiveImperfect),
		},
		Imperative: Imperative{
			ImperativePresent: st.personForms(slotImperativePresent),
		},
		Participle: Participle{
			PresentParticiple: st.flatForms(slotPresentParticiple),
			PastParticiple:    st.personForms(slotPastParticiple),
		},
	}
}

// flatForms returns the accumulated flat slot, empty but never nil so that
// unused slots serialize as [] instead of null.
func (st *parserState) flatForms(s slot) FlatForms {
	if forms := st.flat[s]; forms != nil {
		return forms
	}
	return FlatForms{}
}

func (st *parserState) personForms(s slot) PersonForms {
	if forms := st.persons[s]; forms != nil {
		return forms
	}
	return PersonForms{}
}

// Parse reads conjugation templates from r and returns them keyed by
// template name. The returned error is non-nil only for malformed XML and
// wraps [ErrMalformedDocument].
func Parse(r io.Reader) (map[string]*Template, error) {
	d := xml.NewDecoder(r)

	templates := map[string]*Template{}
	st := newParserState()

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
			st.start(t)
		case xml.CharData:
			st.text(t)
		case xml.EndElement:
			st.end(t, templates)
		}
	}

	return templates, nil
}
