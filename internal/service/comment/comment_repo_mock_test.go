package comment

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/threadline-backend/internal/domain"
	"sync"
	"time"
)

var _ commentRepo = &commentRepoMock{}

type commentRepoMock struct {
	GetByIDFunc          func(ctx context.Context, id uuid.UUID) (*domain.Comment, error)
	GetByIDForUpdateFunc func(ctx context.Context, id uuid.UUID) (*domain.Comment, error)
	ListRootsFunc        func(ctx context.Context) ([]domain.Comment, error)
	ListRepliesFunc      func(ctx context.Context, parentIDs []uuid.UUID) ([]domain.Comment, error)
	CreateFunc           func(ctx context.Context, c *domain.Comment) (*domain.Comment, error)
	UpdateContentFunc    func(ctx context.Context, id uuid.UUID, content string, updatedAt time.Time) (*domain.Comment, error)
	UpdateDeletionFunc   func(ctx context.Context, id uuid.UUID, deletedAt *time.Time) (*domain.Comment, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetByIDForUpdate []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListRoots []struct {
			Ctx context.Context
		}
		ListReplies []struct {
			Ctx       context.Context
			ParentIDs []uuid.UUID
		}
		Create []struct {
			Ctx context.Context
			C   *domain.Comment
		}
		UpdateContent []struct {
			Ctx       context.Context
			ID        uuid.UUID
			Content   string
			UpdatedAt time.Time
		}
		UpdateDeletion []struct {
			Ctx       context.Context
			ID        uuid.UUID
			DeletedAt *time.Time
		}
	}
	lockGetByID          sync.RWMutex
	lockGetByIDForUpdate sync.RWMutex
	lockListRoots        sync.RWMutex
	lockListReplies      sync.RWMutex
	lockCreate           sync.RWMutex
	lockUpdateContent    sync.RWMutex
	lockUpdateDeletion   sync.RWMutex
}

func (mock *commentRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	if mock.GetByIDFunc == nil {
		panic("commentRepoMock.GetByIDFunc: method is nil but commentRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *commentRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		ID  uuid.UUID
	}
	mock.lockGetByID.RLock()
	calls = mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *commentRepoMock) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	if mock.GetByIDForUpdateFunc == nil {
		panic("commentRepoMock.GetByIDForUpdateFunc: method is nil but commentRepo.GetByIDForUpdate was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGetByIDForUpdate.Lock()
	mock.calls.GetByIDForUpdate = append(mock.calls.GetByIDForUpdate, callInfo)
	mock.lockGetByIDForUpdate.Unlock()
	return mock.GetByIDForUpdateFunc(ctx, id)
}

func (mock *commentRepoMock) GetByIDForUpdateCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		ID  uuid.UUID
	}
	mock.lockGetByIDForUpdate.RLock()
	calls = mock.calls.GetByIDForUpdate
	mock.lockGetByIDForUpdate.RUnlock()
	return calls
}

func (mock *commentRepoMock) ListRoots(ctx context.Context) ([]domain.Comment, error) {
	if mock.ListRootsFunc == nil {
		panic("commentRepoMock.ListRootsFunc: method is nil but commentRepo.ListRoots was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockListRoots.Lock()
	mock.calls.ListRoots = append(mock.calls.ListRoots, callInfo)
	mock.lockListRoots.Unlock()
	return mock.ListRootsFunc(ctx)
}

func (mock *commentRepoMock) ListRootsCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockListRoots.RLock()
	calls = mock.calls.ListRoots
	mock.lockListRoots.RUnlock()
	return calls
}

func (mock *commentRepoMock) ListReplies(ctx context.Context, parentIDs []uuid.UUID) ([]domain.Comment, error) {
	if mock.ListRepliesFunc == nil {
		panic("commentRepoMock.ListRepliesFunc: method is nil but commentRepo.ListReplies was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ParentIDs []uuid.UUID
	}{
		Ctx:       ctx,
		ParentIDs: parentIDs,
	}
	mock.lockListReplies.Lock()
	mock.calls.ListReplies = append(mock.calls.ListReplies, callInfo)
	mock.lockListReplies.Unlock()
	return mock.ListRepliesFunc(ctx, parentIDs)
}

func (mock *commentRepoMock) ListRepliesCalls() []struct {
	Ctx       context.Context
	ParentIDs []uuid.UUID
} {
	var calls []struct {
		Ctx       context.Context
		ParentIDs []uuid.UUID
	}
	mock.lockListReplies.RLock()
	calls = mock.calls.ListReplies
	mock.lockListReplies.RUnlock()
	return calls
}

func (mock *commentRepoMock) Create(ctx context.Context, c *domain.Comment) (*domain.Comment, error) {
	if mock.CreateFunc == nil {
		panic("commentRepoMock.CreateFunc: method is nil but commentRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   *domain.Comment
	}{
		Ctx: ctx,
		C:   c,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, c)
}

func (mock *commentRepoMock) CreateCalls() []struct {
	Ctx context.Context
	C   *domain.Comment
} {
	var calls []struct {
		Ctx context.Context
		C   *domain.Comment
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *commentRepoMock) UpdateContent(ctx context.Context, id uuid.UUID, content string, updatedAt time.Time) (*domain.Comment, error) {
	if mock.UpdateContentFunc == nil {
		panic("commentRepoMock.UpdateContentFunc: method is nil but commentRepo.UpdateContent was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ID        uuid.UUID
		Content   string
		UpdatedAt time.Time
	}{
		Ctx:       ctx,
		ID:        id,
		Content:   content,
		UpdatedAt: updatedAt,
	}
	mock.lockUpdateContent.Lock()
	mock.calls.UpdateContent = append(mock.calls.UpdateContent, callInfo)
	mock.lockUpdateContent.Unlock()
	return mock.UpdateContentFunc(ctx, id, content, updatedAt)
}

func (mock *commentRepoMock) UpdateContentCalls() []struct {
	Ctx       context.Context
	ID        uuid.UUID
	Content   string
	UpdatedAt time.Time
} {
	var calls []struct {
		Ctx       context.Context
		ID        uuid.UUID
		Content   string
		UpdatedAt time.Time
	}
	mock.lockUpdateContent.RLock()
	calls = mock.calls.UpdateContent
	mock.lockUpdateContent.RUnlock()
	return calls
}

func (mock *commentRepoMock) UpdateDeletion(ctx context.Context, id uuid.UUID, deletedAt *time.Time) (*domain.Comment, error) {
	if mock.UpdateDeletionFunc == nil {
		panic("commentRepoMock.UpdateDeletionFunc: method is nil but commentRepo.UpdateDeletion was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ID        uuid.UUID
		DeletedAt *time.Time
	}{
		Ctx:       ctx,
		ID:        id,
		DeletedAt: deletedAt,
	}
	mock.lockUpdateDeletion.Lock()
	mock.calls.UpdateDeletion = append(mock.calls.UpdateDeletion, callInfo)
	mock.lockUpdateDeletion.Unlock()
	return mock.UpdateDeletionFunc(ctx, id, deletedAt)
}

func (mock *commentRepoMock) UpdateDeletionCalls() []struct {
	Ctx       context.Context
	ID        uuid.UUID
	DeletedAt *time.Time
} {
	var calls []struct {
		Ctx       context.Context
		ID        uuid.UUID
		DeletedAt *time.Time
	}
	mock.lockUpdateDeletion.RLock()
	calls = mock.calls.UpdateDeletion
	mock.lockUpdateDeletion.RUnlock()
	return calls
}
