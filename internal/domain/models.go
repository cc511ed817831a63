package domain

import "strings"

// Mode selects which TMDB listing a fetch targets
type Mode int

const (
	ModePopular Mode = iota // discover, sorted by popularity
	ModeSearch              // title search
)

func (m Mode) String() string {
	switch m {
	case ModeSearch:
		return "search"
	default:
		return "popular"
	}
}

// ModeForQuery picks search mode for a query with visible text, popular otherwise
func ModeForQuery(query string) Mode {
	if strings.TrimSpace(query) != "" {
		return ModeSearch
	}
	return ModePopular
}

// Movie is a single entry of a TMDB result list.
// Only ID is relied on for identity; the rest is display data for cards.
type Movie struct {
	ID               int64   `json:"id"`
	Title            string  `json:"title"`
	Overview         string  `json:"overview"`
	PosterPath       string  `json:"poster_path"`
	ReleaseDate      string  `json:"release_date"`
	OriginalLanguage string  `json:"original_language"`
	VoteAverage      float64 `json:"vote_average"`
	VoteCount        int64   `json:"vote_count"`
	Popularity       float64 `json:"popularity"`
}

// Year returns the release year or "" when the date is unknown
func (m Movie) Year() string {
	if len(m.ReleaseDate) < 4 {
		return ""
	}
	return m.ReleaseDate[:4]
}

// Genre is a TMDB genre
type Genre struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// MovieDetails is the payload of /movie/{id}
type MovieDetails struct {
	Movie
	Tagline  string  `json:"tagline"`
	Runtime  int     `json:"runtime"` // minutes
	Status   string  `json:"status"`
	Homepage string  `json:"homepage"`
	Genres   []Genre `json:"genres"`
}

// GenreNames returns the genre names in TMDB order
func (d MovieDetails) GenreNames() []string {
	names := make([]string, 0, len(d.Genres))
	for _, g := range d.Genres {
		names = append(names, g.Name)
	}
	return names
}
