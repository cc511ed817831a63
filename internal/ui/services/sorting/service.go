// Package sorting orders the result cards on the client. The listing itself
// is never re-fetched for a new order.
package sorting

import (
	"sort"
	"strings"

	"cinefind/internal/domain"
)

// Service handles sorting logic
type Service struct {
	state *State
}

// NewService creates a new sorting service keeping TMDB's order
func NewService() *Service {
	return &Service{
		state: &State{
			CurrentMode: ByRelevance,
		},
	}
}

// GetCurrentMode returns the current sort mode
func (s *Service) GetCurrentMode() Mode {
	return s.state.CurrentMode
}

// SetMode sets the sort mode
func (s *Service) SetMode(mode Mode) {
	s.state.CurrentMode = mode
}

// NextMode cycles to the next sort mode
func (s *Service) NextMode() Mode {
	currentIndex := 0
	for i, mode := range modes {
		if mode == s.state.CurrentMode {
			currentIndex = i
			break
		}
	}

	s.state.CurrentMode = modes[(currentIndex+1)%len(modes)]
	return s.state.CurrentMode
}

// SortMovies returns movies in the current order. The input is not
// modified; ties keep TMDB's order.
func (s *Service) SortMovies(movies []domain.Movie) []domain.Movie {
	if s.state.CurrentMode == ByRelevance || len(movies) < 2 {
		return movies
	}

	sorted := make([]domain.Movie, len(movies))
	copy(sorted, movies)

	switch s.state.CurrentMode {
	case ByRating:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].VoteAverage > sorted[j].VoteAverage
		})

	case ByTitle:
		sort.SliceStable(sorted, func(i, j int) bool {
			return strings.ToLower(sorted[i].Title) < strings.ToLower(sorted[j].Title)
		})

	case ByYear:
		// newest first, undated last
		sort.SliceStable(sorted, func(i, j int) bool {
			yi, yj := sorted[i].ReleaseDate, sorted[j].ReleaseDate
			if yi == "" || yj == "" {
				return yj == "" && yi != ""
			}
			return yi > yj
		})
	}
	return sorted
}
