package ui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"cinefind/internal/cache"
	"cinefind/internal/config"
	"cinefind/internal/domain"
	"cinefind/internal/eventbus"
	"cinefind/internal/ui/input"
	inputtypes "cinefind/internal/ui/input/types"
	"cinefind/internal/ui/logic"
	"cinefind/internal/ui/search"
	"cinefind/internal/ui/services/sorting"
	"cinefind/internal/ui/views"
)

// detailsFailureMessage is shown in the popup when details cannot be loaded
const detailsFailureMessage = "Failed to load movie details. Please try again later."

// MovieService lists movies and loads the details of one
type MovieService interface {
	search.Fetcher
	Movie(ctx context.Context, id int64) (*domain.MovieDetails, error)
}

// Model represents the UI state
type Model struct {
	ctx    context.Context
	bus    eventbus.EventBus
	config *config.Config
	movies MovieService
	cache  cache.Service

	width       int
	height      int
	help        help.Model
	spinner     spinner.Model
	inPagerMode bool // tracks if we're currently in pager mode

	controller   *search.Controller
	navigator    *logic.Navigator
	renderer     *views.Renderer
	inputHandler *input.Handler
	helpRender   *HelpRenderer
	sorter       *sorting.Service

	initialQuery string
	shownSeq     uint64 // request whose movies the navigator covers
	searchCount  int64

	showDetails bool
	detailsID   int64
	details     views.DetailsState

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model. initialQuery, if set, is typed into the
// search box once the popular listing has been requested.
func NewModel(ctx context.Context, bus eventbus.EventBus, cfg *config.Config, movies MovieService, detailsCache cache.Service, initialQuery string) *Model {
	sp := spinner.New(spinner.WithSpinner(spinner.Dot))

	m := &Model{
		ctx:          ctx,
		bus:          bus,
		config:       cfg,
		movies:       movies,
		cache:        detailsCache,
		help:         help.New(),
		spinner:      sp,
		controller:   search.New(ctx, movies, bus, cfg.Search.Debounce.Duration),
		navigator:    logic.NewNavigator(),
		renderer:     views.NewRenderer(),
		inputHandler: input.New("Search for movies..."),
		helpRender:   NewHelpRenderer(),
		sorter:       sorting.NewService(),
		initialQuery: initialQuery,
	}
	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
}

// Stop aborts any list fetch in flight
func (m *Model) Stop() {
	m.controller.Stop()
}

// listing returns the movies on screen, in display order
func (m *Model) listing() []domain.Movie {
	return m.sorter.SortMovies(search.MoviesOf(m.controller.State()))
}

// MovieCount implements inputtypes.Context
func (m *Model) MovieCount() int {
	return len(search.MoviesOf(m.controller.State()))
}

// SelectedMovieID implements inputtypes.Context
func (m *Model) SelectedMovieID() int64 {
	movies := m.listing()
	idx := m.navigator.SelectedIndex()
	if idx < 0 || idx >= len(movies) {
		return 0
	}
	return movies[idx].ID
}

// Query implements inputtypes.Context
func (m *Model) Query() string {
	return m.controller.Query()
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.controller.Init(), m.spinner.Tick, textinput.Blink}
	if m.initialQuery != "" {
		m.inputHandler.SetQuery(m.initialQuery)
		cmds = append(cmds, m.controller.SetQuery(m.initialQuery))
	}
	return tea.Batch(cmds...)
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.updateGrid()
		return m, nil

	case tea.KeyMsg:
		actions, cmd := m.inputHandler.HandleKey(msg, m)

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
		return m, tea.Batch(cmds...)

	case spinner.TickMsg:
		// Don't continue the tick loop while the pager owns the terminal
		if m.inPagerMode {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	if cmd, ok := m.controller.Update(msg); ok {
		m.syncListing()
		return m, cmd
	}

	if cmd := m.inputHandler.Update(msg); cmd != nil {
		return m, cmd
	}
	return m.handleNonKeyboardMsg(msg)
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	state := m.controller.State()
	req, _ := search.RequestOf(state)

	selected := -1
	if m.inputHandler.CurrentMode() != inputtypes.ModeSearch {
		selected = m.navigator.SelectedIndex()
	}

	return m.renderer.Render(views.ViewState{
		Width:         m.width,
		Height:        m.height,
		SearchInput:   m.inputHandler.TextInput().View(),
		SearchFocused: m.inputHandler.CurrentMode() == inputtypes.ModeSearch,
		Mode:          req.Mode,
		Query:         req.Query,
		Loading:       search.IsLoading(state),
		Spinner:       m.spinner.View(),
		Error:         search.ErrorOf(state),
		Movies:        m.listing(),
		SortLabel:     m.sortLabel(),
		Selected:      selected,
		RowOffset:     m.navigator.RowOffset(),
		Columns:       m.navigator.Columns(),
		VisibleRows:   m.navigator.VisibleRows(),
		CardWidth:     m.config.UISettings.CardWidth,
		HelpLine:      m.help.View(m.helpKeys()),
		SearchCount:   m.searchCount,
		ShowDetails:   m.showDetails,
		Details:       m.details,
	})
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		m.navigator.Move(a.Direction)

	case inputtypes.UpdateQueryAction:
		return m.controller.SetQuery(a.Query)

	case inputtypes.OpenDetailsAction:
		return m.openDetails(a.MovieID)

	case inputtypes.CloseDetailsAction:
		m.showDetails = false
		m.detailsID = 0
		m.details = views.DetailsState{}

	case inputtypes.CycleSortAction:
		mode := m.sorter.NextMode()
		m.navigator.Reset(m.MovieCount())
		zap.S().Debugf("Sorting results by %s", mode)

	case inputtypes.ShowHelpAction:
		if m.program == nil {
			m.help.ShowAll = !m.help.ShowAll
			return nil
		}
		return m.fetchHelpPager(m.helpRender.RenderHelpContentPlain())

	case inputtypes.QuitAction:
		m.controller.Stop()
		return tea.Quit
	}
	return nil
}

// handleNonKeyboardMsg handles non-keyboard messages
func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case EventMsg:
		if e, ok := msg.Event.(eventbus.SearchCountedEvent); ok && e.Total > m.searchCount {
			m.searchCount = e.Total
		}
		return m, nil

	case detailsMsg:
		m.applyDetails(msg)
		return m, nil

	case helpPagerMsg:
		if msg.err != nil {
			// fall back to the inline key list
			zap.S().Warnf("Help pager failed: %v", msg.err)
			m.help.ShowAll = true
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, m.spinner.Tick

	default:
		return m, nil
	}
}

// syncListing resets the cursor whenever a different listing is shown
func (m *Model) syncListing() {
	if s, ok := m.controller.State().(search.Success); ok {
		if s.Request.Seq != m.shownSeq {
			m.shownSeq = s.Request.Seq
			m.navigator.Reset(len(s.Movies))
		}
		return
	}
	if m.shownSeq != 0 {
		m.shownSeq = 0
		m.navigator.Reset(0)
	}
}

func (m *Model) sortLabel() string {
	if mode := m.sorter.GetCurrentMode(); mode != sorting.ByRelevance {
		return "by " + mode.String()
	}
	return ""
}

func (m *Model) updateGrid() {
	columns, rows := views.GridSize(m.width, m.height, m.config.UISettings.CardWidth)
	m.navigator.Resize(columns, rows)
}

func (m *Model) helpKeys() help.KeyMap {
	keys := m.inputHandler.Keys()
	switch m.inputHandler.CurrentMode() {
	case inputtypes.ModeBrowse:
		return inputtypes.BrowseHelp{Keys: keys}
	case inputtypes.ModeDetails:
		return inputtypes.DetailsHelp{Keys: keys}
	default:
		return inputtypes.SearchHelp{Keys: keys}
	}
}

func detailsKey(id int64) string {
	return fmt.Sprintf("movie:%d", id)
}

// openDetails shows the popup for id, from the cache when possible
func (m *Model) openDetails(id int64) tea.Cmd {
	m.showDetails = true
	m.detailsID = id

	if v, ok := m.cache.Get(detailsKey(id)); ok {
		if d, ok := v.(*domain.MovieDetails); ok {
			m.details = views.DetailsState{Details: d}
			return nil
		}
	}

	m.details = views.DetailsState{Loading: true}
	ctx := m.ctx
	movies := m.movies
	return func() tea.Msg {
		d, err := movies.Movie(ctx, id)
		return detailsMsg{movieID: id, details: d, err: err}
	}
}

func (m *Model) applyDetails(msg detailsMsg) {
	if msg.err != nil {
		zap.S().Errorf("Error fetching details for movie %d: %v", msg.movieID, msg.err)
	} else {
		m.cache.Set(detailsKey(msg.movieID), msg.details, m.config.Details.CacheTTL.Duration)
	}

	// the popup was closed or moved on to another movie
	if !m.showDetails || msg.movieID != m.detailsID {
		return
	}
	if msg.err != nil {
		m.details = views.DetailsState{Err: detailsFailureMessage}
		return
	}
	m.details = views.DetailsState{Details: msg.details}
}

// fetchHelpPager returns a command that shows help using ov pager
func (m *Model) fetchHelpPager(helpContent string) tea.Cmd {
	return func() tea.Msg {
		// Send pause message to stop rendering
		m.program.Send(pauseRenderingMsg{})

		err := NewHelpOps(m.program).ShowHelpInPager(helpContent)

		// Send resume message to restart rendering
		m.program.Send(resumeRenderingMsg{})

		return helpPagerMsg{err: err}
	}
}
