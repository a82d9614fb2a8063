package notification

import (
	"context"
	"github.com/google/uuid"
	"sync"
)

var _ unreadCache = &unreadCacheMock{}

type unreadCacheMock struct {
	GetFunc        func(ctx context.Context, userID uuid.UUID) (int, bool, int64, error)
	FillFunc       func(ctx context.Context, userID uuid.UUID, n int, gen int64) (bool, error)
	InvalidateFunc func(ctx context.Context, userID uuid.UUID) error

	calls struct {
		Get []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		Fill []struct {
			Ctx    context.Context
			UserID uuid.UUID
			N      int
			Gen    int64
		}
		Invalidate []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
	}
	lockGet        sync.RWMutex
	lockFill       sync.RWMutex
	lockInvalidate sync.RWMutex
}

func (mock *unreadCacheMock) Get(ctx context.Context, userID uuid.UUID) (int, bool, int64, error) {
	if mock.GetFunc == nil {
		panic("unreadCacheMock.GetFunc: method is nil but unreadCache.Get was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{
		Ctx:    ctx,
		UserID: userID,
	}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, userID)
}

func (mock *unreadCacheMock) GetCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
	}
	mock.lockGet.RLock()
	calls = mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *unreadCacheMock) Fill(ctx context.Context, userID uuid.UUID, n int, gen int64) (bool, error) {
	if mock.FillFunc == nil {
		panic("unreadCacheMock.FillFunc: method is nil but unreadCache.Fill was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		N      int
		Gen    int64
	}{
		Ctx:    ctx,
		UserID: userID,
		N:      n,
		Gen:    gen,
	}
	mock.lockFill.Lock()
	mock.calls.Fill = append(mock.calls.Fill, callInfo)
	mock.lockFill.Unlock()
	return mock.FillFunc(ctx, userID, n, gen)
}

func (mock *unreadCacheMock) FillCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	N      int
	Gen    int64
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
		N      int
		Gen    int64
	}
	mock.lockFill.RLock()
	calls = mock.calls.Fill
	mock.lockFill.RUnlock()
	return calls
}

func (mock *unreadCacheMock) Invalidate(ctx context.Context, userID uuid.UUID) error {
	if mock.InvalidateFunc == nil {
		panic("unreadCacheMock.InvalidateFunc: method is nil but unreadCache.Invalidate was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{
		Ctx:    ctx,
		UserID: userID,
	}
	mock.lockInvalidate.Lock()
	mock.calls.Invalidate = append(mock.calls.Invalidate, callInfo)
	mock.lockInvalidate.Unlock()
	return mock.InvalidateFunc(ctx, userID)
}

func (mock *unreadCacheMock) InvalidateCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
	}
	mock.lockInvalidate.RLock()
	calls = mock.calls.Invalidate
	mock.lockInvalidate.RUnlock()
	return calls
}
