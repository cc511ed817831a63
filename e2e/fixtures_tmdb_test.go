//go:build e2e && unix

package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

const fakeToken = "e2e-token"

// fakeTMDB serves canned listings and records what the app asked for
type fakeTMDB struct {
	srv *httptest.Server

	mu       sync.Mutex
	requests []*http.Request
	fail     bool
}

func newFakeTMDB(t *testing.T) *fakeTMDB {
	f := &fakeTMDB{}
	f.srv = httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(f.srv.Close)
	return f
}

func (f *fakeTMDB) URL() string {
	return f.srv.URL
}

// FailAll makes every following request answer 500
func (f *fakeTMDB) FailAll() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fail = true
}

// Searches returns the query of every search request, in order
func (f *fakeTMDB) Searches() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []string
	for _, r := range f.requests {
		if r.URL.Path == "/3/search/movie" {
			out = append(out, r.URL.Query().Get("query"))
		}
	}
	return out
}

// Count returns how many requests hit path
func (f *fakeTMDB) Count(path string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, r := range f.requests {
		if r.URL.Path == path {
			n++
		}
	}
	return n
}

func (f *fakeTMDB) serve(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.requests = append(f.requests, r.Clone(r.Context()))
	fail := f.fail
	f.mu.Unlock()

	if fail || r.Header.Get("Authorization") != "Bearer "+fakeToken {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	switch {
	case r.URL.Path == "/3/discover/movie":
		_, _ = w.Write([]byte(`{"page":1,"results":[
			{"id":603,"title":"The Matrix","vote_average":8.2,"original_language":"en","release_date":"1999-03-30"},
			{"id":949,"title":"Heat","vote_average":7.9,"original_language":"en","release_date":"1995-12-15"},
			{"id":129,"title":"Spirited Away","vote_average":8.5,"original_language":"ja","release_date":"2001-07-20"}
		]}`))
	case r.URL.Path == "/3/search/movie":
		q := strings.ToLower(r.URL.Query().Get("query"))
		if strings.Contains(q, "alien") {
			_, _ = w.Write([]byte(`{"page":1,"results":[{"id":348,"title":"Alien","vote_average":8.1,"original_language":"en","release_date":"1979-05-25"}]}`))
			return
		}
		// no results field at all
		_, _ = w.Write([]byte(`{"page":1}`))
	case r.URL.Path == "/3/movie/603":
		_, _ = w.Write([]byte(`{"id":603,"title":"The Matrix","tagline":"Welcome to the Real World.","runtime":136,"vote_average":8.2,"release_date":"1999-03-30","genres":[{"id":28,"name":"Action"}]}`))
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}
