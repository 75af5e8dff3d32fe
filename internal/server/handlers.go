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
	"time"

	"sigs.k8s.io/release-utils/version"

	"github.com/conjugueur/conjugueur"
)

type handler struct {
	data *conjugueur.Conjugueur
}

// verb serves GET /api/verb/{name}. The name must match a verb spelling
// exactly, accents included; the router has already unescaped the path
// segment.
func (h *handler) verb(w http.ResponseWriter, r *http.Request) {
	rec, ok := h.data.LookupVerb(r.PathValue("name"))
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// template serves GET /api/t/{name}.
func (h *handler) template(w http.ResponseWriter, r *http.Request) {
	tmpl, ok := h.data.Template(r.PathValue("name"))
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, tmpl)
}

// search serves GET /api/search?q=. It always responds 200 with a JSON
// array, possibly empty.
func (h *handler) search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	writeJSON(w, http.StatusOK, h.data.SearchVerbs(query))
}

// healthResponse is the JSON response for /healthz.
type healthResponse struct {
	Status    string    `json:"status"`
	Version   string    `json:"version,omitempty"`
	Verbs     int       `json:"verbs"`
	Templates int       `json:"templates"`
	Timestamp time.Time `json:"timestamp"`
}

// health reports readiness. The data set is loaded before the server
// starts, so a running server is always ready; the counts let operators
// spot an empty or truncated data set.
func (h *handler) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:    "ok",
		Version:   version.GetVersionInfo().GitVersion,
		Verbs:     h.data.VerbCount(),
		Templates: h.data.TemplateCount(),
		Timestamp: time.Now(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}
