// Package memory is an in-process implementation of the comment, notification
// and user stores. It backs the "memory" database driver and service tests.
package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
)

// ErrNoTx is returned by locking reads issued outside RunInTx.
var ErrNoTx = errors.New("memory: locking read outside transaction")

// Store holds all tables. Row data is guarded by mu; per-comment locks
// serialize read-modify-write cycles the way SELECT ... FOR UPDATE does.
type Store struct {
	mu            sync.RWMutex
	users         map[uuid.UUID]userRecord
	comments      map[uuid.UUID]commentRecord
	notifications map[uuid.UUID]notificationRecord

	locksMu sync.Mutex
	locks   map[uuid.UUID]*rowLock
}

// rowLock is a one-slot semaphore. refs counts holders plus waiters; the
// entry is dropped from Store.locks when it reaches zero.
type rowLock struct {
	slot chan struct{}
	refs int
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		users:         make(map[uuid.UUID]userRecord),
		comments:      make(map[uuid.UUID]commentRecord),
		notifications: make(map[uuid.UUID]notificationRecord),
		locks:         make(map[uuid.UUID]*rowLock),
	}
}

// acquireRef returns the lock entry for id, creating it if needed, and
// registers the caller as a holder or waiter.
func (s *Store) acquireRef(id uuid.UUID) *rowLock {
	s.locksMu.Lock()
	defer s.locksMu.Unlock()
	l, ok := s.locks[id]
	if !ok {
		l = &rowLock{slot: make(chan struct{}, 1)}
		s.locks[id] = l
	}
	l.refs++
	return l
}

func (s *Store) releaseRef(id uuid.UUID, l *rowLock) {
	s.locksMu.Lock()
	defer s.locksMu.Unlock()
	l.refs--
	if l.refs == 0 {
		delete(s.locks, id)
	}
}

// unlock frees the slot, then drops the caller's reference.
func (s *Store) unlock(id uuid.UUID, l *rowLock) {
	<-l.slot
	s.releaseRef(id, l)
}

// ---------------------------------------------------------------------------
// Transactions
// ---------------------------------------------------------------------------

type txKey struct{}

// txScope records the row locks taken inside one RunInTx call, keyed by
// comment id, each with its release func.
type txScope struct {
	held map[uuid.UUID]func()
}

func scopeFrom(ctx context.Context) *txScope {
	s, _ := ctx.Value(txKey{}).(*txScope)
	return s
}

// lock acquires the row lock for id within the scope on ctx.
// Re-locking a row already held by the same scope is a no-op.
func (s *Store) lock(ctx context.Context, id uuid.UUID) error {
	scope := scopeFrom(ctx)
	if scope == nil {
		return ErrNoTx
	}
	if _, ok := scope.held[id]; ok {
		return nil
	}

	l := s.acquireRef(id)
	select {
	case l.slot <- struct{}{}:
		scope.held[id] = func() { s.unlock(id, l) }
		return nil
	case <-ctx.Done():
		s.releaseRef(id, l)
		return ctx.Err()
	}
}

// TxManager scopes row locks to a function call. Writes are applied
// immediately; there is no rollback.
type TxManager struct{}

// NewTxManager creates a new TxManager.
func NewTxManager() *TxManager {
	return &TxManager{}
}

// RunInTx runs fn with a lock scope. Locks taken by fn are released when it
// returns or panics. Nested calls share the outer scope.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if scopeFrom(ctx) != nil {
		return fn(ctx)
	}

	scope := &txScope{held: make(map[uuid.UUID]func())}
	defer func() {
		for _, release := range scope.held {
			release()
		}
	}()

	return fn(context.WithValue(ctx, txKey{}, scope))
}
