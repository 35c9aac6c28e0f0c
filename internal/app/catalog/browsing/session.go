// Package browsing keeps a shopper's filter state, the displayed product list
// and the storefront URL in sync with the query endpoint.
//
// A Session is owned by one goroutine. Fetches run in their own goroutines and
// post completions to an inbox; the owner applies them with Drain or Wait. A
// completion is applied only if its token is still the current token of its
// lane, so a slow response can never overwrite the result of a newer request.
package browsing

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/light-bringer/storefront-catalog/internal/app/catalog/contracts"
	"github.com/light-bringer/storefront-catalog/internal/app/catalog/domain"
	"github.com/light-bringer/storefront-catalog/internal/pkg/clock"
)

// Option configures a Session.
type Option func(*Session)

// WithClock sets the clock used for UpdatedAt.
func WithClock(c clock.Clock) Option {
	return func(s *Session) {
		s.clock = c
	}
}

// WithLogger sets the logger failed requests are reported to.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		s.logger = l
	}
}

// WithContext sets the parent context of every request the session issues.
func WithContext(ctx context.Context) Option {
	return func(s *Session) {
		s.parent = ctx
	}
}

type laneSlot struct {
	state  LaneState
	err    error
	token  *Token
	params domain.Params
}

type completion struct {
	lane  Lane
	token *Token
	page  *domain.ResultPage
	err   error
}

// Session is a client-side browsing session.
type Session struct {
	id     uuid.UUID
	client contracts.QueryClient
	nav    contracts.Navigator
	clock  clock.Clock
	logger *log.Logger
	parent context.Context

	root       context.Context
	rootCancel context.CancelFunc

	filters   *domain.FilterModel
	products  []domain.Product
	meta      domain.FiltersMeta
	lanes     [2]laneSlot
	updatedAt time.Time
	closed    bool

	mu     sync.Mutex
	inbox  []completion
	notify chan struct{}
}

// NewSession starts a session from a server-rendered first page. The initial page
// is displayed as is; no request is made until the first mutation.
func NewSession(
	client contracts.QueryClient,
	nav contracts.Navigator,
	initial domain.FilterState,
	initialPage domain.ResultPage,
	opts ...Option,
) *Session {
	s := &Session{
		id:     uuid.New(),
		client: client,
		nav:    nav,
		clock:  clock.NewRealClock(),
		logger: log.Default(),
		parent: context.Background(),
		notify: make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.nav == nil {
		s.nav = contracts.NavigatorFunc(func(domain.Params) {})
	}
	s.root, s.rootCancel = context.WithCancel(s.parent)

	s.filters = domain.NewFilterModel(initial)
	s.products = append([]domain.Product{}, initialPage.Products...)
	s.meta = initialPage.Meta
	s.updatedAt = s.clock.Now()
	return s
}

// ID identifies the session in logs.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Filters returns the current filter state.
func (s *Session) Filters() domain.FilterState {
	return s.filters.State()
}

// Products returns a copy of the displayed list.
func (s *Session) Products() []domain.Product {
	return append([]domain.Product{}, s.products...)
}

// Meta returns the metadata of the last applied response.
func (s *Session) Meta() domain.FiltersMeta {
	return s.meta
}

// LaneState returns the state of lane.
func (s *Session) LaneState(lane Lane) LaneState {
	return s.lanes[lane].state
}

// LaneErr returns the error of the lane's last failed request, or nil.
func (s *Session) LaneErr(lane Lane) error {
	return s.lanes[lane].err
}

// Loading reports whether any lane has a request in flight.
func (s *Session) Loading() bool {
	return s.lanes[LaneRefetch].state == LaneLoading || s.lanes[LaneLoadMore].state == LaneLoading
}

// Empty reports whether the last applied response matched nothing.
// A failed refetch over an empty list is not empty, it is failed.
func (s *Session) Empty() bool {
	return len(s.products) == 0 && s.meta.Total == 0 && s.lanes[LaneRefetch].state != LaneFailed
}

// CanLoadMore reports whether LoadMore would issue a request.
func (s *Session) CanLoadMore() bool {
	return !s.closed && s.meta.HasMore && s.lanes[LaneLoadMore].state == LaneIdle
}

// UpdatedAt is when the displayed list last changed.
func (s *Session) UpdatedAt() time.Time {
	return s.updatedAt
}

// Notify is signalled whenever a completion is posted. Call Drain after receiving.
func (s *Session) Notify() <-chan struct{} {
	return s.notify
}

// SetSearch changes the search text and refetches.
func (s *Session) SetSearch(search string) error {
	return s.mutate(func(m *domain.FilterModel) { m.SetSearch(search) })
}

// SetCategory changes the category and refetches. "" clears it.
func (s *Session) SetCategory(category domain.Category) error {
	return s.mutate(func(m *domain.FilterModel) { m.SetCategory(category) })
}

// SetSort changes the sort mode and refetches.
func (s *Session) SetSort(sort domain.SortMode) error {
	return s.mutate(func(m *domain.FilterModel) { m.SetSort(sort) })
}

// SetInStockOnly toggles the stock filter and refetches.
func (s *Session) SetInStockOnly(inStockOnly bool) error {
	return s.mutate(func(m *domain.FilterModel) { m.SetInStockOnly(inStockOnly) })
}

// SetPriceRange changes the price bounds and refetches. nil clears a bound.
func (s *Session) SetPriceRange(minPrice, maxPrice *float64) error {
	return s.mutate(func(m *domain.FilterModel) { m.SetPriceRange(minPrice, maxPrice) })
}

// SetPageSize changes the page size and refetches from page 1.
func (s *Session) SetPageSize(pageSize int) error {
	return s.mutate(func(m *domain.FilterModel) { m.SetPageSize(pageSize) })
}

// Reset restores the state the session started with and refetches.
func (s *Session) Reset() error {
	return s.mutate(func(m *domain.FilterModel) { m.Reset() })
}

func (s *Session) mutate(change func(*domain.FilterModel)) error {
	if s.closed {
		return domain.ErrSessionClosed
	}
	change(s.filters)
	s.refetch()
	return nil
}

// refetch supersedes every in-flight request and asks for page 1 of the current filters.
func (s *Session) refetch() {
	s.cancelLane(LaneRefetch)
	s.cancelLane(LaneLoadMore)
	s.lanes[LaneLoadMore] = laneSlot{}

	s.filters.SetPage(domain.DefaultPage)
	s.meta.HasMore = false

	state := s.filters.State()
	s.nav.Replace(state.ToParams())
	s.issue(LaneRefetch, state.RequestParams())
}

// LoadMore requests the page after the current one. On success the page is
// appended and the URL advances to it.
func (s *Session) LoadMore() error {
	if s.closed {
		return domain.ErrSessionClosed
	}
	if !s.CanLoadMore() {
		return domain.ErrLoadMoreUnavailable
	}

	state := s.filters.State()
	state.Page++
	s.issue(LaneLoadMore, state.RequestParams())
	return nil
}

// Retry re-issues the failed request of lane.
func (s *Session) Retry(lane Lane) error {
	if s.closed {
		return domain.ErrSessionClosed
	}
	if s.lanes[lane].state != LaneFailed {
		return domain.ErrRetryUnavailable
	}
	s.issue(lane, s.lanes[lane].params)
	return nil
}

// Close cancels every in-flight request. Later completions are discarded and
// mutations return ErrSessionClosed.
func (s *Session) Close() {
	if s.closed {
		return
	}
	s.closed = true
	for lane := range s.lanes {
		s.cancelLane(Lane(lane))
		if s.lanes[lane].state == LaneLoading {
			s.lanes[lane].state = LaneIdle
		}
	}
	s.rootCancel()
}

func (s *Session) cancelLane(lane Lane) {
	s.lanes[lane].token.Cancel()
	s.lanes[lane].token = nil
}

func (s *Session) issue(lane Lane, params domain.Params) {
	s.cancelLane(lane)
	token := newToken(s.root)
	s.lanes[lane] = laneSlot{
		state:  LaneLoading,
		token:  token,
		params: params,
	}

	go func() {
		page, err := s.client.ListProducts(token.Context(), params)
		s.post(completion{lane: lane, token: token, page: page, err: err})
	}()
}

func (s *Session) post(c completion) {
	s.mu.Lock()
	s.inbox = append(s.inbox, c)
	s.mu.Unlock()

	select {
	case s.notify <- struct{}{}:
	default:
	}
}

// Drain applies every posted completion and returns how many were processed,
// including the ones discarded as stale.
func (s *Session) Drain() int {
	s.mu.Lock()
	pending := s.inbox
	s.inbox = nil
	s.mu.Unlock()

	for _, c := range pending {
		s.apply(c)
	}
	return len(pending)
}

// Wait drains completions until no lane is loading or ctx ends.
func (s *Session) Wait(ctx context.Context) error {
	for {
		s.Drain()
		if !s.Loading() {
			return nil
		}
		select {
		case <-s.notify:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (s *Session) apply(c completion) {
	slot := &s.lanes[c.lane]
	// Superseded, cancelled or closed: the token is no longer current.
	if s.closed || slot.token != c.token {
		return
	}
	slot.token = nil

	// A request cancelled while still current (parent context ended, or the server
	// gave up on it) leaves the lane idle with no error.
	if c.token.Cancelled() || errors.Is(c.err, context.Canceled) {
		slot.state = LaneIdle
		slot.err = nil
		return
	}

	if c.err != nil {
		slot.state = LaneFailed
		slot.err = c.err
		s.logger.Printf("browsing session %s: %s request %s failed: %v", s.id, c.lane, c.token.ID(), c.err)
		return
	}

	page := c.page
	if page == nil {
		page = &domain.ResultPage{}
	}

	switch c.lane {
	case LaneRefetch:
		s.products = append([]domain.Product{}, page.Products...)
	case LaneLoadMore:
		s.products = append(s.products, page.Products...)
	}
	s.meta = page.Meta
	if page.Meta.Page > 0 {
		s.filters.SetPage(page.Meta.Page)
	}
	if c.lane == LaneLoadMore {
		s.nav.Replace(s.filters.State().ToParams())
	}
	slot.state = LaneIdle
	slot.err = nil
	s.updatedAt = s.clock.Now()
}
