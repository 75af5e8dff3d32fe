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

package conjugueur

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/conjugueur/conjugueur/conjugation"
	"github.com/conjugueur/conjugueur/verbs"
)

// Conjugueur is a loaded conjugation data set. It is immutable and safe for
// concurrent use.
type Conjugueur struct {
	verbs     *verbs.Index
	templates map[string]*conjugation.Template
}

// Load reads the verb list and template list and builds the search index. A
// parse failure is returned as-is; callers must treat it as fatal rather
// than serve a partially built data set.
func Load(verbsXML, conjugationXML io.Reader) (*Conjugueur, error) {
	records, err := verbs.Parse(verbsXML)
	if err != nil {
		return nil, fmt.Errorf("loading verbs: %w", err)
	}

	templates, err := conjugation.Parse(conjugationXML)
	if err != nil {
		return nil, fmt.Errorf("loading conjugation templates: %w", err)
	}

	return &Conjugueur{
		verbs:     verbs.NewIndex(records),
		templates: templates,
	}, nil
}

// Open loads the data set from the given file paths. Files with a .gz
// extension are decompressed transparently.
func Open(verbsPath, conjugationPath string) (*Conjugueur, error) {
	verbsFile, err := openData(verbsPath)
	if err != nil {
		return nil, err
	}
	defer verbsFile.Close()

	conjugationFile, err := openData(conjugationPath)
	if err != nil {
		return nil, err
	}
	defer conjugationFile.Close()

	return Load(verbsFile, conjugationFile)
}

func openData(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", path, err)
	}

	if strings.ToLower(filepath.Ext(path)) != ".gz" {
		return f, nil
	}

	zr, err := gzip.NewReader(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("opening %q: %w", path, err)
	}
	return &gzipFile{Reader: zr, f: f}, nil
}

// gzipFile closes both the gzip stream and the underlying file.
type gzipFile struct {
	*gzip.Reader
	f *os.File
}

func (g *gzipFile) Close() error {
	zErr := g.Reader.Close()
	fErr := g.f.Close()
	if zErr != nil {
		return zErr
	}
	return fErr
}

// LookupVerb returns the record for the given verb spelling. The match is
// literal: case and accents are significant.
func (c *Conjugueur) LookupVerb(name string) (verbs.VerbRecord, bool) {
	return c.verbs.Lookup(name)
}

// SearchVerbs returns verbs matching the query as an accent-insensitive
// prefix, capped at [verbs.MaxSearchResults] and sorted by spelling.
func (c *Conjugueur) SearchVerbs(query string) []verbs.VerbRecord {
	return c.verbs.Search(query)
}

// Template returns the conjugation template with the given name.
func (c *Conjugueur) Template(name string) (*conjugation.Template, bool) {
	tmpl, ok := c.templates[name]
	return tmpl, ok
}

// VerbCount returns the number of loaded verb records.
func (c *Conjugueur) VerbCount() int {
	return c.verbs.Len()
}

// TemplateCount returns the number of loaded conjugation templates.
func (c *Conjugueur) TemplateCount() int {
	return len(c.templates)
}
