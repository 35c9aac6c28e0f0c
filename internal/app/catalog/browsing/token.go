package browsing

import (
	"context"

	"github.com/google/uuid"
)

// Token is the cancellation handle of one in-flight request.
// A completion takes effect only if its token is still the lane's current token.
type Token struct {
	id     uuid.UUID
	ctx    context.Context
	cancel context.CancelFunc
}

func newToken(parent context.Context) *Token {
	ctx, cancel := context.WithCancel(parent)
	return &Token{
		id:     uuid.New(),
		ctx:    ctx,
		cancel: cancel,
	}
}

// ID identifies the request in logs.
func (t *Token) ID() uuid.UUID {
	return t.id
}

// Context is cancelled when the token is.
func (t *Token) Context() context.Context {
	return t.ctx
}

// Cancel aborts the request. It is safe to call more than once and on a nil token.
func (t *Token) Cancel() {
	if t != nil {
		t.cancel()
	}
}

// Cancelled reports whether Cancel was called or the parent context ended.
func (t *Token) Cancelled() bool {
	return t.ctx.Err() != nil
}
