// Package txscope owns transaction scopes for persistence pipelines.
//
// A scope is carried in the context. The first pipeline to call
// [Manager.Init] on a context without a scope becomes the root owner: it
// checks a dedicated connection out of the pool, begins a transaction and is
// the only caller allowed to commit, roll back or release it. Every nested
// pipeline that calls Init on the derived context borrows the same
// transaction and finalizing a borrowed scope is a no-op.
//
//	ctx, scope, err := scopes.Init(ctx)
//	if err != nil {
//	    return domain.FromFault[T](err)
//	}
//	...
//	err = scopes.Handle(ctx, scope, result.Success)
//
// Postgres refuses every statement after the first failure inside a
// transaction. Pipelines that keep going after a failed step, such as a
// clone across locales, wrap each step in a [Savepoint] so later steps fail
// only on their own merits.
package txscope

import (
	"context"
	"database/sql"
	"strconv"
	"sync"
)

type contextKey struct{}

// Scope is one view of a transaction. Root and borrowed scopes of the same
// transaction share their state.
type Scope struct {
	root   bool
	shared *shared
}

type shared struct {
	conn *sql.Conn
	tx   *sql.Tx

	mu           sync.Mutex
	rollbackOnly bool
	finished     bool
	savepoints   int
	cancel       context.CancelFunc
}

// Savepoint is a named position inside a scope's transaction.
type Savepoint struct {
	name string
	tx   *sql.Tx
}

// Name returns the SQL identifier of the savepoint.
func (sp *Savepoint) Name() string {
	return sp.name
}

// IsRoot reports whether this scope owns its transaction.
func (s *Scope) IsRoot() bool {
	return s.root
}

// Tx returns the underlying transaction.
func (s *Scope) Tx() *sql.Tx {
	return s.shared.tx
}

// RollbackOnly reports whether a participant has vetoed the commit.
func (s *Scope) RollbackOnly() bool {
	s.shared.mu.Lock()
	defer s.shared.mu.Unlock()
	return s.shared.rollbackOnly
}

// Finished reports whether the root owner has already committed or rolled back.
func (s *Scope) Finished() bool {
	s.shared.mu.Lock()
	defer s.shared.mu.Unlock()
	return s.shared.finished
}

func (s *Scope) borrow() *Scope {
	return &Scope{root: false, shared: s.shared}
}

func (s *Scope) nextSavepoint() string {
	s.shared.mu.Lock()
	defer s.shared.mu.Unlock()
	s.shared.savepoints++
	return "vm_sp_" + strconv.Itoa(s.shared.savepoints)
}

func (s *Scope) markRollbackOnly() {
	s.shared.mu.Lock()
	s.shared.rollbackOnly = true
	s.shared.mu.Unlock()
}

// WithScope returns a context carrying scope. Pipelines started from the
// returned context borrow the scope instead of opening their own.
func WithScope(ctx context.Context, scope *Scope) context.Context {
	if scope == nil {
		return ctx
	}
	return context.WithValue(ctx, contextKey{}, scope)
}

// From extracts the scope carried by ctx, if any.
func From(ctx context.Context) (*Scope, bool) {
	scope, ok := ctx.Value(contextKey{}).(*Scope)
	return scope, ok
}

// DBTX is the subset of *sql.DB and *sql.Tx used by store adapters.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Querier returns the transaction carried by ctx, or fallback when the call
// runs outside any scope.
func Querier(ctx context.Context, fallback DBTX) DBTX {
	if scope, ok := From(ctx); ok {
		return scope.shared.tx
	}
	return fallback
}
