package pipeline

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/ppiankov/launchwatch/internal/model"
	"github.com/ppiankov/launchwatch/internal/source"
)

var (
	ErrNoMorePages = errors.New("no more pages")
	ErrInvalidMode = errors.New("invalid mode")
)

// PageSource retrieves one page of launches
type PageSource interface {
	FetchPage(ctx context.Context, mode model.Mode, offset, limit int) ([]model.Launch, error)
}

// PageResult summarizes a completed fetch
type PageResult struct {
	Mode    model.Mode `json:"mode"`
	Offset  int        `json:"offset"`
	Fetched int        `json:"fetched"` // Records in this page
	Total   int        `json:"total"`   // Dataset length after the page
	HasMore bool       `json:"has_more"`
}

// Accumulator owns the per-mode datasets, cursors and filter criteria.
// Fetches for the same mode are serialized; different modes may overlap.
type Accumulator struct {
	source   PageSource
	observer Observer
	logger   zerolog.Logger

	fetchMu map[model.Mode]*sync.Mutex

	// emitMu orders view computation with its OnResults emission, so the last
	// view delivered always reflects the latest dataset and criteria
	emitMu sync.Mutex

	mu       sync.RWMutex
	datasets map[model.Mode][]model.Launch
	views    map[model.Mode][]model.Launch
	cursors  map[model.Mode]Cursor
	criteria map[model.Mode]Criteria
}

// NewAccumulator creates an empty accumulator. observer may be nil.
func NewAccumulator(src PageSource, observer Observer, logger zerolog.Logger) *Accumulator {
	if observer == nil {
		observer = NopObserver{}
	}
	a := &Accumulator{
		source:   src,
		observer: observer,
		logger:   logger.With().Str("component", "accumulator").Logger(),
		fetchMu:  make(map[model.Mode]*sync.Mutex),
		datasets: make(map[model.Mode][]model.Launch),
		views:    make(map[model.Mode][]model.Launch),
		cursors:  make(map[model.Mode]Cursor),
		criteria: make(map[model.Mode]Criteria),
	}
	for _, m := range model.Modes {
		a.fetchMu[m] = &sync.Mutex{}
		a.cursors[m] = idleCursor()
		a.criteria[m] = AnyCriteria()
	}
	return a
}

// Load starts a fresh session for mode at offset 0
func (a *Accumulator) Load(ctx context.Context, mode model.Mode) (PageResult, error) {
	return a.FetchPage(ctx, mode, 0, false)
}

// LoadMore appends the page after the current cursor. It issues no request
// and returns ErrNoMorePages when the previous page came back short or no
// fresh load has completed yet.
func (a *Accumulator) LoadMore(ctx context.Context, mode model.Mode) (PageResult, error) {
	if !mode.Valid() {
		return PageResult{}, fmt.Errorf("%w: %q", ErrInvalidMode, mode)
	}
	lock := a.fetchMu[mode]
	lock.Lock()
	defer lock.Unlock()

	cur := a.Cursor(mode)
	if !cur.CanLoadMore() {
		return PageResult{Mode: mode, Offset: cur.Offset, Total: a.Len(mode)}, ErrNoMorePages
	}
	return a.fetchPage(ctx, mode, cur.NextOffset(), true)
}

// FetchPage retrieves one page for mode at offset. With appendPage false the
// dataset and view are cleared first and loading is signalled around the
// network call. On failure nothing is appended.
func (a *Accumulator) FetchPage(ctx context.Context, mode model.Mode, offset int, appendPage bool) (PageResult, error) {
	if !mode.Valid() {
		return PageResult{}, fmt.Errorf("%w: %q", ErrInvalidMode, mode)
	}
	lock := a.fetchMu[mode]
	lock.Lock()
	defer lock.Unlock()

	return a.fetchPage(ctx, mode, offset, appendPage)
}

func (a *Accumulator) fetchPage(ctx context.Context, mode model.Mode, offset int, appendPage bool) (PageResult, error) {
	a.mu.Lock()
	prev := a.cursors[mode]
	if !appendPage {
		a.datasets[mode] = nil
		a.views[mode] = nil
	}
	a.cursors[mode] = Cursor{Offset: offset, PageSize: source.PageSize, HasMore: appendPage && prev.HasMore, State: StateLoading}
	a.mu.Unlock()

	if !appendPage {
		a.observer.OnLoading(mode, true)
	}

	page, err := a.source.FetchPage(ctx, mode, offset, source.PageSize)

	if !appendPage {
		a.observer.OnLoading(mode, false)
	}

	if err != nil {
		a.mu.Lock()
		if appendPage {
			a.cursors[mode] = prev
		} else {
			a.cursors[mode] = idleCursor()
		}
		restored := a.cursors[mode]
		total := len(a.datasets[mode])
		a.mu.Unlock()

		a.logger.Warn().Err(err).Str("mode", string(mode)).Int("offset", offset).Msg("page fetch failed")
		a.observer.OnError(mode, err)
		return PageResult{Mode: mode, Offset: offset, Total: total, HasMore: restored.HasMore},
			fmt.Errorf("fetch %s page at offset %d: %w", mode, offset, err)
	}

	hasMore := len(page) >= source.PageSize

	a.emitMu.Lock()
	defer a.emitMu.Unlock()

	a.mu.Lock()
	a.datasets[mode] = append(a.datasets[mode], page...)
	a.cursors[mode] = Cursor{Offset: offset, PageSize: source.PageSize, HasMore: hasMore, State: StateLoaded}
	view := Apply(a.datasets[mode], a.criteria[mode])
	a.views[mode] = view
	total := len(a.datasets[mode])
	a.mu.Unlock()

	a.logger.Debug().
		Str("mode", string(mode)).
		Int("offset", offset).
		Int("fetched", len(page)).
		Int("total", total).
		Bool("has_more", hasMore).
		Msg("page appended")

	if mode == model.ModeUpcoming && offset == 0 && len(page) > 0 {
		a.observer.OnNextLaunch(page[0])
	}
	a.observer.OnResults(mode, view)
	a.observer.OnPagination(mode, hasMore)

	return PageResult{Mode: mode, Offset: offset, Fetched: len(page), Total: total, HasMore: hasMore}, nil
}

// SetCriteria replaces the filter inputs for mode and immediately emits the
// recomputed view
func (a *Accumulator) SetCriteria(mode model.Mode, c Criteria) []model.Launch {
	a.emitMu.Lock()
	defer a.emitMu.Unlock()

	a.mu.Lock()
	a.criteria[mode] = c
	view := Apply(a.datasets[mode], c)
	a.views[mode] = view
	a.mu.Unlock()

	a.observer.OnResults(mode, view)
	return view
}

// Criteria returns the current filter inputs for mode
func (a *Accumulator) Criteria(mode model.Mode) Criteria {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.criteria[mode]
}

// View returns a copy of the current filtered view for mode
func (a *Accumulator) View(mode model.Mode) []model.Launch {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return append([]model.Launch{}, a.views[mode]...)
}

// Dataset returns a copy of every record accumulated for mode
func (a *Accumulator) Dataset(mode model.Mode) []model.Launch {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return append([]model.Launch{}, a.datasets[mode]...)
}

// Len returns the dataset length for mode
func (a *Accumulator) Len(mode model.Mode) int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.datasets[mode])
}

// Cursor returns the pagination state for mode
func (a *Accumulator) Cursor(mode model.Mode) Cursor {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.cursors[mode]
}
