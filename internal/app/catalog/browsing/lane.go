package browsing

// Lane is one of the two independent request pipelines of a session.
type Lane int

const (
	// LaneRefetch replaces the displayed list after a filter change.
	LaneRefetch Lane = iota
	// LaneLoadMore appends the next page to the displayed list.
	LaneLoadMore
)

func (l Lane) String() string {
	switch l {
	case LaneRefetch:
		return "refetch"
	case LaneLoadMore:
		return "load more"
	}
	return "unknown"
}

// LaneState is the request state of a lane.
type LaneState int

const (
	// LaneIdle means no request is in flight and the last one, if any, succeeded.
	LaneIdle LaneState = iota
	// LaneLoading means the lane's current token is in flight.
	LaneLoading
	// LaneFailed means the last request failed; Retry re-issues it.
	LaneFailed
)

func (s LaneState) String() string {
	switch s {
	case LaneIdle:
		return "idle"
	case LaneLoading:
		return "loading"
	case LaneFailed:
		return "failed"
	}
	return "unknown"
}
