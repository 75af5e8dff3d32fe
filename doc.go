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

// Package conjugueur implements a lookup and search library for French verb
// conjugation data.
//
// The data set consists of two XML documents:
//  1. A verb list mapping each verb to the name of its conjugation
//     template (verbs-fr.xml).
//  2. A template list describing the inflected forms of each template,
//     grouped by mood and tense (conjugation-fr.xml).
//
// Both documents are parsed once, at startup. The resulting template table
// and verb search index are immutable afterwards and safe for use by any
// number of concurrent readers.
package conjugueur
