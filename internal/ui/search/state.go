package search

import "cinefind/internal/domain"

// FailureMessage is the only error text users ever see for list fetches
const FailureMessage = "Failed to fetch movies. Please try again later."

// Request identifies one list fetch
type Request struct {
	Seq   uint64
	Mode  domain.Mode
	Query string
}

// NewRequest maps a query to its request: popular mode unless the query has
// visible text. The query is kept as typed.
func NewRequest(seq uint64, query string) Request {
	mode := domain.ModeForQuery(query)
	if mode == domain.ModePopular {
		query = ""
	}
	return Request{Seq: seq, Mode: mode, Query: query}
}

// RequestState is one of Idle, Loading, Success or Failure
type RequestState interface {
	isRequestState()
}

// Idle is the state before the first fetch
type Idle struct{}

// Loading means Request is outstanding
type Loading struct {
	Request Request
}

// Success holds the list returned for Request
type Success struct {
	Request Request
	Movies  []domain.Movie
}

// Failure means Request failed; Err is for logs, Message for users
type Failure struct {
	Request Request
	Message string
	Err     error
}

func (Idle) isRequestState()    {}
func (Loading) isRequestState() {}
func (Success) isRequestState() {}
func (Failure) isRequestState() {}

// IsLoading reports whether s is Loading
func IsLoading(s RequestState) bool {
	_, ok := s.(Loading)
	return ok
}

// MoviesOf returns the movies of a Success and nil otherwise
func MoviesOf(s RequestState) []domain.Movie {
	if ok, is := s.(Success); is {
		return ok.Movies
	}
	return nil
}

// ErrorOf returns the user-facing message of a Failure and "" otherwise
func ErrorOf(s RequestState) string {
	if f, ok := s.(Failure); ok {
		return f.Message
	}
	return ""
}

// RequestOf returns the request behind s; Idle has none
func RequestOf(s RequestState) (Request, bool) {
	switch s := s.(type) {
	case Loading:
		return s.Request, true
	case Success:
		return s.Request, true
	case Failure:
		return s.Request, true
	}
	return Request{}, false
}
