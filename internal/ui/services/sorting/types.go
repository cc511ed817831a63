package sorting

// Mode is the order the result cards are shown in
type Mode int

const (
	// ByRelevance keeps the order TMDB returned
	ByRelevance Mode = iota
	ByRating
	ByTitle
	ByYear
)

var modes = []Mode{ByRelevance, ByRating, ByTitle, ByYear}

func (m Mode) String() string {
	switch m {
	case ByRelevance:
		return "relevance"
	case ByRating:
		return "rating"
	case ByTitle:
		return "title"
	case ByYear:
		return "year"
	default:
		return "unknown"
	}
}

// State holds sorting state
type State struct {
	CurrentMode Mode
}
