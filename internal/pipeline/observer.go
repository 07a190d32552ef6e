package pipeline

import "github.com/ppiankov/launchwatch/internal/model"

// Observer receives everything the presentation layer needs to render.
// Callbacks run synchronously on the goroutine that triggered them and must
// not call back into the Accumulator.
type Observer interface {
	// OnLoading brackets the network call of a fresh (non-append) load
	OnLoading(mode model.Mode, loading bool)

	// OnResults delivers the recomputed filtered view
	OnResults(mode model.Mode, view []model.Launch)

	// OnPagination reports whether a "load more" affordance should be shown
	OnPagination(mode model.Mode, hasMore bool)

	// OnNextLaunch hands the first upcoming launch to a countdown
	OnNextLaunch(launch model.Launch)

	// OnError reports a failed fetch; the session stays usable
	OnError(mode model.Mode, err error)
}

// NopObserver ignores every event. Embed it to implement a subset.
type NopObserver struct{}

func (NopObserver) OnLoading(model.Mode, bool)           {}
func (NopObserver) OnResults(model.Mode, []model.Launch) {}
func (NopObserver) OnPagination(model.Mode, bool)        {}
func (NopObserver) OnNextLaunch(model.Launch)            {}
func (NopObserver) OnError(model.Mode, error)            {}

// Observers fans every event out to each member in order
type Observers []Observer

func (o Observers) OnLoading(mode model.Mode, loading bool) {
	for _, obs := range o {
		obs.OnLoading(mode, loading)
	}
}

func (o Observers) OnResults(mode model.Mode, view []model.Launch) {
	for _, obs := range o {
		obs.OnResults(mode, view)
	}
}

func (o Observers) OnPagination(mode model.Mode, hasMore bool) {
	for _, obs := range o {
		obs.OnPagination(mode, hasMore)
	}
}

func (o Observers) OnNextLaunch(launch model.Launch) {
	for _, obs := range o {
		obs.OnNextLaunch(launch)
	}
}

func (o Observers) OnError(mode model.Mode, err error) {
	for _, obs := range o {
		obs.OnError(mode, err)
	}
}
