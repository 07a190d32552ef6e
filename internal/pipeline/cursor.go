package pipeline

import "github.com/ppiankov/launchwatch/internal/source"

// State is the pagination state of one mode
type State int

const (
	StateIdle State = iota
	StateLoading
	StateLoaded
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	default:
		return "idle"
	}
}

// Cursor tracks pagination for one mode. Offset is the offset of the last
// page requested; HasMore turns false once a page comes back short.
type Cursor struct {
	Offset   int   `json:"offset"`
	PageSize int   `json:"page_size"`
	HasMore  bool  `json:"has_more"`
	State    State `json:"state"`
}

func idleCursor() Cursor {
	return Cursor{PageSize: source.PageSize, State: StateIdle}
}

// NextOffset is the offset a "load more" would request
func (c Cursor) NextOffset() int {
	return c.Offset + c.PageSize
}

// CanLoadMore reports whether another page may be requested
func (c Cursor) CanLoadMore() bool {
	return c.State == StateLoaded && c.HasMore
}
