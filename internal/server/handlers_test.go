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

package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	conjugueur "github.com/conjugueur/conjugueur"
	"github.com/conjugueur/conjugueur/conjugation"
	"github.com/conjugueur/conjugueur/verbs"
)

const verbsXML = `<verbs>
<v><i>être</i><t>:être</t></v>
<v><i>étudier</i><t>aim:er</t></v>
<v><i>haïr</i><t>ha:ïr</t><aspirate-h/></v>
</verbs>`

const conjugationXML = `<conjugation>
<template name=":être">
<indicative><present>
<p><i>suis</i></p><p><i>es</i></p><p><i>est</i></p>
<p><i>sommes</i></p><p><i>êtes</i></p><p><i>sont</i></p>
</present></indicative>
</template>
<template name="aim:er"></template>
<template name="ha:ïr"></template>
</conjugation>`

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()

	data, err := conjugueur.Load(strings.NewReader(verbsXML), strings.NewReader(conjugationXML))
	require.NoError(t, err)

	h := &handler{data: data}
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/verb/{name}", h.verb)
	mux.HandleFunc("GET /api/t/{name}", h.template)
	mux.HandleFunc("GET /api/search", h.search)
	mux.HandleFunc("GET /healthz", h.health)
	return mux
}

func TestVerbHandler(t *testing.T) {
	t.Parallel()
	mux := newTestHandler(t)

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/verb/ha%C3%AFr", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var rec verbs.VerbRecord
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &rec))
	require.Equal(t, "haïr", rec.Verb)
	require.Equal(t, "ha:ïr", rec.TemplateName)
	require.True(t, rec.AspirateH)
}

func TestVerbHandler_notFound(t *testing.T) {
	t.Parallel()
	mux := newTestHandler(t)

	rr := httptest.NewRecorder()
	// Lookup is exact; a folded spelling of a known verb is a miss.
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/verb/etudier", nil))

	require.Equal(t, http.StatusNotFound, rr.Code)
	require.Empty(t, rr.Body.String())
}

func TestTemplateHandler(t *testing.T) {
	t.Parallel()
	mux := newTestHandler(t)

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/t/:%C3%AAtre", nil))

	require.Equal(t, http.StatusOK, rr.Code)

	var tmpl conjugation.Template
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &tmpl))
	require.Equal(t, ":être", tmpl.Name)
	require.Len(t, tmpl.Indicative.Present, 6)
	require.Equal(t, []string{"suis"}, tmpl.Indicative.Present[0])
	// Unused slots come back as empty arrays, never null.
	require.NotContains(t, rr.Body.String(), "null")
}

func TestTemplateHandler_notFound(t *testing.T) {
	t.Parallel()
	mux := newTestHandler(t)

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/t/no:such", nil))

	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestSearchHandler(t *testing.T) {
	t.Parallel()
	mux := newTestHandler(t)

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "folded prefix", query: "et", want: []string{"être", "étudier"}},
		{name: "accented prefix", query: "étu", want: []string{"étudier"}},
		{name: "no match", query: "zzz", want: []string{}},
		{name: "empty query", query: "", want: []string{"être", "étudier", "haïr"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			rr := httptest.NewRecorder()
			mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/search?q="+tc.query, nil))

			require.Equal(t, http.StatusOK, rr.Code)

			var got []verbs.VerbRecord
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
			names := make([]string, 0, len(got))
			for _, rec := range got {
				names = append(names, rec.Verb)
			}
			require.Equal(t, tc.want, names)
		})
	}
}

func TestSearchHandler_emptyIsArray(t *testing.T) {
	t.Parallel()
	mux := newTestHandler(t)

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/search?q=zzz", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	require.JSONEq(t, "[]", rr.Body.String())
}

func TestHealthHandler(t *testing.T) {
	t.Parallel()
	mux := newTestHandler(t)

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	require.Equal(t, http.StatusOK, rr.Code)

	var got healthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	require.Equal(t, "ok", got.Status)
	require.Equal(t, 3, got.Verbs)
	require.Equal(t, 3, got.Templates)
}
