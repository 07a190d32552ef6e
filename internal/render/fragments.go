package render

import (
	"sync"
	"time"

	"golang.org/x/net/html"

	"github.com/ppiankov/launchwatch/internal/model"
	"github.com/ppiankov/launchwatch/internal/pipeline"
	"github.com/ppiankov/launchwatch/internal/source"
)

var _ pipeline.Observer = (*Fragments)(nil)

type modeState struct {
	view    []model.Launch
	loading bool
	hasMore bool
	err     error
}

// Fragments keeps the latest renderable state of each mode.
// It is safe for concurrent use.
type Fragments struct {
	mu    sync.Mutex
	modes map[model.Mode]*modeState
	next  *model.Launch
	now   func() time.Time
}

// NewFragments creates an empty fragment set
func NewFragments() *Fragments {
	return &Fragments{
		modes: make(map[model.Mode]*modeState),
		now:   time.Now,
	}
}

func (f *Fragments) state(mode model.Mode) *modeState {
	s, ok := f.modes[mode]
	if !ok {
		s = &modeState{}
		f.modes[mode] = s
	}
	return s
}

func (f *Fragments) OnLoading(mode model.Mode, loading bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s := f.state(mode)
	s.loading = loading
	if loading {
		s.err = nil
		s.view = nil
	}
}

func (f *Fragments) OnResults(mode model.Mode, view []model.Launch) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s := f.state(mode)
	s.view = view
	s.err = nil
}

func (f *Fragments) OnPagination(mode model.Mode, hasMore bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state(mode).hasMore = hasMore
}

func (f *Fragments) OnNextLaunch(launch model.Launch) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.next = &launch
}

func (f *Fragments) OnError(mode model.Mode, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state(mode).err = err
}

// Nodes returns the node trees for a mode: loading indicator, error alert,
// card list and load-more button, whichever apply
func (f *Fragments) Nodes(mode model.Mode) []*html.Node {
	f.mu.Lock()
	defer f.mu.Unlock()
	s := f.state(mode)

	var nodes []*html.Node
	if s.loading {
		return append(nodes, LoadingIndicator())
	}
	if s.err != nil {
		nodes = append(nodes, ErrorAlert(source.UserMessage(s.err)))
		if len(s.view) == 0 {
			return nodes
		}
	}
	nodes = append(nodes, LaunchList(s.view, mode))
	if s.hasMore {
		nodes = append(nodes, LoadMoreButton())
	}
	return nodes
}

// Fragment renders the current HTML for a mode
func (f *Fragments) Fragment(mode model.Mode) (string, error) {
	return Render(f.Nodes(mode)...)
}

// NextLaunch renders the countdown banner, "" before the first upcoming page
func (f *Fragments) NextLaunch() (string, error) {
	f.mu.Lock()
	next := f.next
	now := f.now()
	f.mu.Unlock()
	if next == nil {
		return "", nil
	}
	return Render(NextLaunchBanner(*next, now))
}

// Next returns the published next launch, if any
func (f *Fragments) Next() (model.Launch, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.next == nil {
		return model.Launch{}, false
	}
	return *f.next, true
}
