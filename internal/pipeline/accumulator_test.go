package pipeline

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/ppiankov/launchwatch/internal/model"
	"github.com/ppiankov/launchwatch/internal/source"
)

// fakeSource serves pre-built pages in order and records every request
type fakeSource struct {
	mu       sync.Mutex
	pages    [][]model.Launch
	errs     []error
	requests []int // offsets
	modes    []model.Mode
}

func (f *fakeSource) FetchPage(ctx context.Context, mode model.Mode, offset, limit int) ([]model.Launch, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	i := len(f.requests)
	f.requests = append(f.requests, offset)
	f.modes = append(f.modes, mode)
	if i < len(f.errs) && f.errs[i] != nil {
		return nil, f.errs[i]
	}
	if i < len(f.pages) {
		return f.pages[i], nil
	}
	return []model.Launch{}, nil
}

func makePage(prefix string, n int) []model.Launch {
	page := make([]model.Launch, n)
	for i := range page {
		page[i] = model.Launch{ID: prefix + strconv.Itoa(i), Name: prefix + " " + strconv.Itoa(i), NET: "2024-01-01T00:00:00Z"}
	}
	return page
}

// recorder captures observer events in order
type recorder struct {
	events  []string
	views   [][]model.Launch
	next    []model.Launch
	errs    []error
	hasMore []bool
}

func (r *recorder) OnLoading(mode model.Mode, loading bool) {
	r.events = append(r.events, fmt.Sprintf("loading:%s:%v", mode, loading))
}

func (r *recorder) OnResults(mode model.Mode, view []model.Launch) {
	r.events = append(r.events, fmt.Sprintf("results:%s:%d", mode, len(view)))
	r.views = append(r.views, view)
}

func (r *recorder) OnPagination(mode model.Mode, hasMore bool) {
	r.events = append(r.events, fmt.Sprintf("pagination:%s:%v", mode, hasMore))
	r.hasMore = append(r.hasMore, hasMore)
}

func (r *recorder) OnNextLaunch(l model.Launch) {
	r.events = append(r.events, "next:"+l.ID)
	r.next = append(r.next, l)
}

func (r *recorder) OnError(mode model.Mode, err error) {
	r.events = append(r.events, fmt.Sprintf("error:%s", mode))
	r.errs = append(r.errs, err)
}

func TestAccumulator_FreshLoadEvents(t *testing.T) {
	src := &fakeSource{pages: [][]model.Launch{makePage("u", 30)}}
	rec := &recorder{}
	acc := NewAccumulator(src, rec, zerolog.Nop())

	res, err := acc.Load(context.Background(), model.ModeUpcoming)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if res.Fetched != 30 || res.Total != 30 || !res.HasMore {
		t.Errorf("unexpected result %+v", res)
	}

	want := []string{
		"loading:upcoming:true",
		"loading:upcoming:false",
		"next:u0",
		"results:upcoming:30",
		"pagination:upcoming:true",
	}
	if fmt.Sprint(rec.events) != fmt.Sprint(want) {
		t.Errorf("expected events %v, got %v", want, rec.events)
	}

	cur := acc.Cursor(model.ModeUpcoming)
	if cur.State != StateLoaded || cur.Offset != 0 || !cur.HasMore {
		t.Errorf("unexpected cursor %+v", cur)
	}
}

func TestAccumulator_MonotonicAccumulation(t *testing.T) {
	src := &fakeSource{pages: [][]model.Launch{
		makePage("a", 30),
		makePage("b", 30),
		makePage("c", 12),
	}}
	acc := NewAccumulator(src, nil, zerolog.Nop())
	ctx := context.Background()

	if _, err := acc.Load(ctx, model.ModePast); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if _, err := acc.LoadMore(ctx, model.ModePast); err != nil {
		t.Fatalf("LoadMore 1 failed: %v", err)
	}
	res, err := acc.LoadMore(ctx, model.ModePast)
	if err != nil {
		t.Fatalf("LoadMore 2 failed: %v", err)
	}

	if res.Total != 72 || acc.Len(model.ModePast) != 72 {
		t.Errorf("expected 72 records, got result %d / len %d", res.Total, acc.Len(model.ModePast))
	}
	if fmt.Sprint(src.requests) != "[0 30 60]" {
		t.Errorf("expected offsets [0 30 60], got %v", src.requests)
	}

	ds := acc.Dataset(model.ModePast)
	if ds[0].ID != "a0" || ds[30].ID != "b0" || ds[71].ID != "c11" {
		t.Errorf("dataset not in retrieval order: %s %s %s", ds[0].ID, ds[30].ID, ds[71].ID)
	}
}

func TestAccumulator_PaginationTermination(t *testing.T) {
	src := &fakeSource{pages: [][]model.Launch{makePage("a", 29)}}
	rec := &recorder{}
	acc := NewAccumulator(src, rec, zerolog.Nop())
	ctx := context.Background()

	res, err := acc.Load(ctx, model.ModeUpcoming)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if res.HasMore {
		t.Error("expected HasMore false after 29-record page")
	}
	if len(rec.hasMore) != 1 || rec.hasMore[0] {
		t.Errorf("expected pagination false event, got %v", rec.hasMore)
	}

	_, err = acc.LoadMore(ctx, model.ModeUpcoming)
	if !errors.Is(err, ErrNoMorePages) {
		t.Fatalf("expected ErrNoMorePages, got %v", err)
	}
	if len(src.requests) != 1 {
		t.Errorf("expected no further request, got %d requests", len(src.requests))
	}

	// A fresh load resets the cursor and requests offset 0 again
	if _, err := acc.Load(ctx, model.ModeUpcoming); err != nil {
		t.Fatalf("second Load failed: %v", err)
	}
	if fmt.Sprint(src.requests) != "[0 0]" {
		t.Errorf("expected offsets [0 0], got %v", src.requests)
	}
}

func TestAccumulator_LoadMoreBeforeLoad(t *testing.T) {
	src := &fakeSource{}
	acc := NewAccumulator(src, nil, zerolog.Nop())

	if _, err := acc.LoadMore(context.Background(), model.ModePast); !errors.Is(err, ErrNoMorePages) {
		t.Errorf("expected ErrNoMorePages before any load, got %v", err)
	}
	if len(src.requests) != 0 {
		t.Errorf("expected no request, got %v", src.requests)
	}
}

func TestAccumulator_FreshLoadResetsDataset(t *testing.T) {
	src := &fakeSource{pages: [][]model.Launch{makePage("a", 30), makePage("b", 30), makePage("c", 5)}}
	acc := NewAccumulator(src, nil, zerolog.Nop())
	ctx := context.Background()

	_, _ = acc.Load(ctx, model.ModePast)
	_, _ = acc.LoadMore(ctx, model.ModePast)
	_, _ = acc.Load(ctx, model.ModePast)

	if acc.Len(model.ModePast) != 5 {
		t.Errorf("expected dataset reset to the fresh page (5), got %d", acc.Len(model.ModePast))
	}
	if acc.Cursor(model.ModePast).Offset != 0 {
		t.Errorf("expected cursor offset 0, got %d", acc.Cursor(model.ModePast).Offset)
	}
}

func TestAccumulator_NoDeduplication(t *testing.T) {
	page := makePage("dup", 30)
	src := &fakeSource{pages: [][]model.Launch{page}}
	acc := NewAccumulator(src, nil, zerolog.Nop())
	ctx := context.Background()

	_, _ = acc.Load(ctx, model.ModeUpcoming)
	// Overlapping explicit offset fetches the same records again
	src.pages = append(src.pages, page)
	_, _ = acc.FetchPage(ctx, model.ModeUpcoming, 0, true)

	if acc.Len(model.ModeUpcoming) != 60 {
		t.Errorf("expected duplicates to be kept (60), got %d", acc.Len(model.ModeUpcoming))
	}
}

func TestAccumulator_NextLaunchOnlyFirstUpcomingPage(t *testing.T) {
	src := &fakeSource{pages: [][]model.Launch{
		makePage("p", 30), // past, offset 0
		makePage("u", 30), // upcoming, offset 0
		makePage("v", 30), // upcoming, offset 30
		{},                // upcoming, empty fresh page
	}}
	rec := &recorder{}
	acc := NewAccumulator(src, rec, zerolog.Nop())
	ctx := context.Background()

	_, _ = acc.Load(ctx, model.ModePast)
	_, _ = acc.Load(ctx, model.ModeUpcoming)
	_, _ = acc.LoadMore(ctx, model.ModeUpcoming)
	_, _ = acc.Load(ctx, model.ModeUpcoming)

	if len(rec.next) != 1 || rec.next[0].ID != "u0" {
		t.Errorf("expected exactly one next launch u0, got %v", rec.next)
	}
}

func TestAccumulator_FailedLoadMoreKeepsDataset(t *testing.T) {
	boom := errors.New("boom")
	src := &fakeSource{
		pages: [][]model.Launch{makePage("a", 30), nil, makePage("b", 30)},
		errs:  []error{nil, boom},
	}
	rec := &recorder{}
	acc := NewAccumulator(src, rec, zerolog.Nop())
	ctx := context.Background()

	_, _ = acc.Load(ctx, model.ModePast)
	_, err := acc.LoadMore(ctx, model.ModePast)
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped boom, got %v", err)
	}
	if acc.Len(model.ModePast) != 30 {
		t.Errorf("expected dataset untouched (30), got %d", acc.Len(model.ModePast))
	}
	cur := acc.Cursor(model.ModePast)
	if cur.State != StateLoaded || cur.Offset != 0 || !cur.HasMore {
		t.Errorf("expected cursor restored to Loaded(0, true), got %+v", cur)
	}
	if len(rec.errs) != 1 {
		t.Errorf("expected one error event, got %d", len(rec.errs))
	}

	// Retrying requests the same offset
	if _, err := acc.LoadMore(ctx, model.ModePast); err != nil {
		t.Fatalf("retry failed: %v", err)
	}
	if fmt.Sprint(src.requests) != "[0 30 30]" {
		t.Errorf("expected offsets [0 30 30], got %v", src.requests)
	}
}

func TestAccumulator_FailedFreshLoad(t *testing.T) {
	src := &fakeSource{errs: []error{errors.New("down")}}
	rec := &recorder{}
	acc := NewAccumulator(src, rec, zerolog.Nop())

	if _, err := acc.Load(context.Background(), model.ModeUpcoming); err == nil {
		t.Fatal("expected error")
	}

	want := []string{"loading:upcoming:true", "loading:upcoming:false", "error:upcoming"}
	if fmt.Sprint(rec.events) != fmt.Sprint(want) {
		t.Errorf("expected events %v, got %v", want, rec.events)
	}
	if acc.Cursor(model.ModeUpcoming).State != StateIdle {
		t.Errorf("expected idle cursor, got %v", acc.Cursor(model.ModeUpcoming).State)
	}
}

func TestAccumulator_SetCriteria(t *testing.T) {
	src := &fakeSource{pages: [][]model.Launch{sampleDataset()}}
	rec := &recorder{}
	acc := NewAccumulator(src, rec, zerolog.Nop())

	_, _ = acc.Load(context.Background(), model.ModeUpcoming)

	view := acc.SetCriteria(model.ModeUpcoming, Criteria{Term: "crew", Year: Any, Vehicle: Any})
	if len(view) != 1 || view[0].Name != "Crew-9" {
		t.Errorf("expected [Crew-9], got %v", names(view))
	}
	last := rec.views[len(rec.views)-1]
	if len(last) != 1 {
		t.Errorf("expected criteria change to emit the new view, got %d records", len(last))
	}

	// Criteria survive dataset growth
	src.pages = append(src.pages, []model.Launch{falcon9("Crew-10", "2025-03-01T00:00:00Z")})
	_, _ = acc.FetchPage(context.Background(), model.ModeUpcoming, 30, true)
	if got := names(acc.View(model.ModeUpcoming)); fmt.Sprint(got) != "[Crew-9 Crew-10]" {
		t.Errorf("expected [Crew-9 Crew-10], got %v", got)
	}

	// Other mode is unaffected
	if acc.Criteria(model.ModePast) != AnyCriteria() {
		t.Errorf("expected past criteria untouched, got %+v", acc.Criteria(model.ModePast))
	}
}

func TestAccumulator_InvalidMode(t *testing.T) {
	acc := NewAccumulator(&fakeSource{}, nil, zerolog.Nop())
	if _, err := acc.Load(context.Background(), model.Mode("soon")); !errors.Is(err, ErrInvalidMode) {
		t.Errorf("expected ErrInvalidMode, got %v", err)
	}
	if _, err := acc.LoadMore(context.Background(), model.Mode("soon")); !errors.Is(err, ErrInvalidMode) {
		t.Errorf("expected ErrInvalidMode, got %v", err)
	}
}

func TestAccumulator_ConcurrentLoadMoreSerialized(t *testing.T) {
	pages := make([][]model.Launch, 0, 6)
	pages = append(pages, makePage("p0", 30))
	for i := 1; i < 6; i++ {
		pages = append(pages, makePage("p"+strconv.Itoa(i), 30))
	}
	src := &fakeSource{pages: pages}
	acc := NewAccumulator(src, nil, zerolog.Nop())
	ctx := context.Background()

	_, _ = acc.Load(ctx, model.ModeUpcoming)

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = acc.LoadMore(ctx, model.ModeUpcoming)
		}()
	}
	wg.Wait()

	seen := make(map[int]bool)
	for _, off := range src.requests {
		if seen[off] {
			t.Fatalf("offset %d requested twice: %v", off, src.requests)
		}
		seen[off] = true
	}
	if acc.Len(model.ModeUpcoming) != 180 {
		t.Errorf("expected 180 records, got %d", acc.Len(model.ModeUpcoming))
	}
}

// lastView keeps the most recent OnResults view
type lastView struct {
	NopObserver
	mu   sync.Mutex
	view []model.Launch
}

func (l *lastView) OnResults(mode model.Mode, view []model.Launch) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.view = view
}

func TestAccumulator_LastEmittedViewMatchesCriteria(t *testing.T) {
	for round := 0; round < 20; round++ {
		pages := make([][]model.Launch, 0, 9)
		for i := 0; i < 9; i++ {
			pages = append(pages, makePage("p"+strconv.Itoa(i), 30))
		}
		obs := &lastView{}
		acc := NewAccumulator(&fakeSource{pages: pages}, obs, zerolog.Nop())
		ctx := context.Background()
		_, _ = acc.Load(ctx, model.ModeUpcoming)

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			for i := 0; i < 8; i++ {
				_, _ = acc.LoadMore(ctx, model.ModeUpcoming)
			}
		}()
		go func() {
			defer wg.Done()
			for i := 0; i < 8; i++ {
				acc.SetCriteria(model.ModeUpcoming, Criteria{Term: "p" + strconv.Itoa(i), Year: Any, Vehicle: Any})
			}
		}()
		wg.Wait()

		want := Apply(acc.Dataset(model.ModeUpcoming), acc.Criteria(model.ModeUpcoming))
		obs.mu.Lock()
		got := obs.view
		obs.mu.Unlock()
		if len(got) != len(want) {
			t.Fatalf("round %d: expected last view of %d records, got %d", round, len(want), len(got))
		}
		for i := range want {
			if got[i].ID != want[i].ID {
				t.Fatalf("round %d: view differs at %d: expected %s, got %s", round, i, want[i].ID, got[i].ID)
			}
		}
	}
}

// End to end through the HTTP launch client
func TestAccumulator_RateLimitedLeavesDataset(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 2 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		fmt.Fprint(w, `{"results":[`)
		for i := 0; i < 30; i++ {
			if i > 0 {
				fmt.Fprint(w, ",")
			}
			fmt.Fprintf(w, `{"id":"%d","name":"Launch %d","net":"2024-01-01T00:00:00Z"}`, i, i)
		}
		fmt.Fprint(w, `]}`)
	}))
	defer server.Close()

	fetcher, err := source.NewFetcher(model.HTTPConfig{})
	if err != nil {
		t.Fatalf("NewFetcher failed: %v", err)
	}
	client := source.NewLaunchClient(fetcher, server.URL, "SpaceX", zerolog.Nop())
	rec := &recorder{}
	acc := NewAccumulator(client, rec, zerolog.Nop())
	ctx := context.Background()

	if _, err := acc.Load(ctx, model.ModeUpcoming); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	_, err = acc.LoadMore(ctx, model.ModeUpcoming)
	if !errors.Is(err, source.ErrRateLimited) {
		t.Fatalf("expected ErrRateLimited, got %v", err)
	}
	if acc.Len(model.ModeUpcoming) != 30 {
		t.Errorf("expected dataset unchanged at 30, got %d", acc.Len(model.ModeUpcoming))
	}
	if len(rec.errs) != 1 || source.UserMessage(rec.errs[0]) != source.RateLimitMessage {
		t.Errorf("expected rate limit message surfaced, got %v", rec.errs)
	}
}
