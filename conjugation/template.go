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

package conjugation

// PersonForms holds one inflected form per grammatical person (up to six).
// Each person-form is an ordered list of sub-parts (e.g. auxiliary followed
// by participle) that downstream rendering joins itself; the parts are never
// concatenated here.
type PersonForms [][]string

// FlatForms holds forms for a mood with no person agreement, as an ordered
// list of sub-parts.
type FlatForms []string

// Template is one conjugation template, keyed in the template table by Name.
// Every slot is always present; a slot unused by a template is an empty
// sequence, never null.
type Template struct {
	Name        string      `json:"name"`
	Infinitive  Infinitive  `json:"infinitive"`
	Indicative  Indicative  `json:"indicative"`
	Conditional Conditional `json:"conditional"`
	Subjunctive Subjunctive `json:"subjunctive"`
	Imperative  Imperative  `json:"imperative"`
	Participle  Participle  `json:"participle"`
}

// Infinitive holds the infinitive mood forms.
type Infinitive struct {
	InfinitivePresent FlatForms `json:"infinitive_present"`
}

// Indicative holds the indicative mood forms.
type Indicative struct {
	Present    PersonForms `json:"present"`
	Imperfect  PersonForms `json:"imperfect"`
	Future     PersonForms `json:"future"`
	SimplePast PersonForms `json:"simple_past"`
}

// Conditional holds the conditional mood forms.
type Conditional struct {
	Present PersonForms `json:"present"`
}

// Subjunctive holds the subjunctive mood forms.
type Subjunctive struct {
	Present   PersonForms `json:"present"`
	Imperfect PersonForms `json:"imperfect"`
}

// Imperative holds the imperative mood forms.
type Imperative struct {
	ImperativePresent PersonForms `json:"imperative_present"`
}

// Participle holds the participle forms.
type Participle struct {
	PresentParticiple FlatForms   `json:"present_participle"`
	PastParticiple    PersonForms `json:"past_participle"`
}
