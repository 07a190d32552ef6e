package source

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"github.com/ppiankov/launchwatch/internal/model"
)

func TestLaunchClient_PageURL(t *testing.T) {
	c := NewLaunchClient(nil, "https://ll.example.com/2.2.0/", "SpaceX", zerolog.Nop())

	got := c.PageURL(model.ModePast, 60, PageSize)
	want := "https://ll.example.com/2.2.0/launch/previous/?limit=30&offset=60&search=SpaceX"
	if got != want {
		t.Errorf("expected %s, got %s", want, got)
	}

	got = c.PageURL(model.ModeUpcoming, 0, PageSize)
	want = "https://ll.example.com/2.2.0/launch/upcoming/?limit=30&offset=0&search=SpaceX"
	if got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestLaunchClient_FetchPage_Request(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/launch/upcoming/" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("search") != "SpaceX" || q.Get("limit") != "30" || q.Get("offset") != "30" {
			t.Errorf("unexpected query %s", r.URL.RawQuery)
		}
		_, _ = fmt.Fprint(w, `{"count":2,"results":[{"id":"1","name":"Crew-9","net":"2024-09-10T00:00:00Z"},{"id":"2","name":"Starlink"}]}`)
	}))
	defer server.Close()

	c := NewLaunchClient(newTestFetcher(t), server.URL, "SpaceX", zerolog.Nop())
	launches, err := c.FetchPage(context.Background(), model.ModeUpcoming, 30, PageSize)
	if err != nil {
		t.Fatalf("FetchPage failed: %v", err)
	}
	if len(launches) != 2 {
		t.Fatalf("expected 2 launches, got %d", len(launches))
	}
	if launches[0].Name != "Crew-9" || launches[1].ID != "2" {
		t.Errorf("unexpected launches: %+v", launches)
	}
}

func TestLaunchClient_FetchPage_Shapes(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantLen   int
		wantErrIs error
	}{
		{"missing results", `{"count":0}`, 0, nil},
		{"null results", `{"results":null}`, 0, nil},
		{"empty results", `{"results":[]}`, 0, nil},
		{"results not array", `{"results":"nope"}`, 0, nil},
		{"top-level array", `[1,2,3]`, 0, nil},
		{"not json", `<html>maintenance</html>`, 0, ErrMalformedResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = fmt.Fprint(w, tt.body)
			}))
			defer server.Close()

			c := NewLaunchClient(newTestFetcher(t), server.URL, "", zerolog.Nop())
			launches, err := c.FetchPage(context.Background(), model.ModePast, 0, PageSize)

			if tt.wantErrIs != nil {
				if !errors.Is(err, tt.wantErrIs) {
					t.Fatalf("expected %v, got %v", tt.wantErrIs, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if launches == nil {
				t.Error("expected non-nil empty page")
			}
			if len(launches) != tt.wantLen {
				t.Errorf("expected %d launches, got %d", tt.wantLen, len(launches))
			}
		})
	}
}

func TestLaunchClient_FetchPage_InvalidMode(t *testing.T) {
	c := NewLaunchClient(newTestFetcher(t), "http://unused", "", zerolog.Nop())
	if _, err := c.FetchPage(context.Background(), model.Mode("later"), 0, PageSize); err == nil {
		t.Error("expected error for invalid mode")
	}
}
