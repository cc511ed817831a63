package ui

import (
	"cinefind/internal/domain"
	"cinefind/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// detailsMsg contains the result of a movie details fetch
type detailsMsg struct {
	movieID int64
	details *domain.MovieDetails
	err     error
}

// helpPagerMsg contains the result of a help pager command
type helpPagerMsg struct {
	err error
}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
