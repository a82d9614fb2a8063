package rest

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/threadline-backend/internal/domain"
	"github.com/heartmarshall/threadline-backend/internal/service/comment"
	"sync"
	"time"
)

var _ commentService = &commentServiceMock{}

type commentServiceMock struct {
	ListThreadsFunc    func(ctx context.Context) ([]*domain.ThreadNode, error)
	GetThreadFunc      func(ctx context.Context, commentID uuid.UUID) (*domain.ThreadNode, error)
	CreateCommentFunc  func(ctx context.Context, input comment.CreateCommentInput) (*comment.CreateResult, error)
	EditCommentFunc    func(ctx context.Context, input comment.EditCommentInput) (*domain.Comment, error)
	DeleteCommentFunc  func(ctx context.Context, commentID uuid.UUID) (*domain.Comment, error)
	RestoreCommentFunc func(ctx context.Context, commentID uuid.UUID) (*domain.Comment, error)
	PolicyFunc         func() domain.LifecyclePolicy
	NowFunc            func() time.Time

	calls struct {
		ListThreads []struct {
			Ctx context.Context
		}
		GetThread []struct {
			Ctx       context.Context
			CommentID uuid.UUID
		}
		CreateComment []struct {
			Ctx   context.Context
			Input comment.CreateCommentInput
		}
		EditComment []struct {
			Ctx   context.Context
			Input comment.EditCommentInput
		}
		DeleteComment []struct {
			Ctx       context.Context
			CommentID uuid.UUID
		}
		RestoreComment []struct {
			Ctx       context.Context
			CommentID uuid.UUID
		}
		Policy []struct{}
		Now []struct{}
	}
	lockListThreads    sync.RWMutex
	lockGetThread      sync.RWMutex
	lockCreateComment  sync.RWMutex
	lockEditComment    sync.RWMutex
	lockDeleteComment  sync.RWMutex
	lockRestoreComment sync.RWMutex
	lockPolicy         sync.RWMutex
	lockNow            sync.RWMutex
}

func (mock *commentServiceMock) ListThreads(ctx context.Context) ([]*domain.ThreadNode, error) {
	if mock.ListThreadsFunc == nil {
		panic("commentServiceMock.ListThreadsFunc: method is nil but commentService.ListThreads was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockListThreads.Lock()
	mock.calls.ListThreads = append(mock.calls.ListThreads, callInfo)
	mock.lockListThreads.Unlock()
	return mock.ListThreadsFunc(ctx)
}

func (mock *commentServiceMock) ListThreadsCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockListThreads.RLock()
	calls = mock.calls.ListThreads
	mock.lockListThreads.RUnlock()
	return calls
}

func (mock *commentServiceMock) GetThread(ctx context.Context, commentID uuid.UUID) (*domain.ThreadNode, error) {
	if mock.GetThreadFunc == nil {
		panic("commentServiceMock.GetThreadFunc: method is nil but commentService.GetThread was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		CommentID uuid.UUID
	}{
		Ctx:       ctx,
		CommentID: commentID,
	}
	mock.lockGetThread.Lock()
	mock.calls.GetThread = append(mock.calls.GetThread, callInfo)
	mock.lockGetThread.Unlock()
	return mock.GetThreadFunc(ctx, commentID)
}

func (mock *commentServiceMock) GetThreadCalls() []struct {
	Ctx       context.Context
	CommentID uuid.UUID
} {
	var calls []struct {
		Ctx       context.Context
		CommentID uuid.UUID
	}
	mock.lockGetThread.RLock()
	calls = mock.calls.GetThread
	mock.lockGetThread.RUnlock()
	return calls
}

func (mock *commentServiceMock) CreateComment(ctx context.Context, input comment.CreateCommentInput) (*comment.CreateResult, error) {
	if mock.CreateCommentFunc == nil {
		panic("commentServiceMock.CreateCommentFunc: method is nil but commentService.CreateComment was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input comment.CreateCommentInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCreateComment.Lock()
	mock.calls.CreateComment = append(mock.calls.CreateComment, callInfo)
	mock.lockCreateComment.Unlock()
	return mock.CreateCommentFunc(ctx, input)
}

func (mock *commentServiceMock) CreateCommentCalls() []struct {
	Ctx   context.Context
	Input comment.CreateCommentInput
} {
	var calls []struct {
		Ctx   context.Context
		Input comment.CreateCommentInput
	}
	mock.lockCreateComment.RLock()
	calls = mock.calls.CreateComment
	mock.lockCreateComment.RUnlock()
	return calls
}

func (mock *commentServiceMock) EditComment(ctx context.Context, input comment.EditCommentInput) (*domain.Comment, error) {
	if mock.EditCommentFunc == nil {
		panic("commentServiceMock.EditCommentFunc: method is nil but commentService.EditComment was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input comment.EditCommentInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockEditComment.Lock()
	mock.calls.EditComment = append(mock.calls.EditComment, callInfo)
	mock.lockEditComment.Unlock()
	return mock.EditCommentFunc(ctx, input)
}

func (mock *commentServiceMock) EditCommentCalls() []struct {
	Ctx   context.Context
	Input comment.EditCommentInput
} {
	var calls []struct {
		Ctx   context.Context
		Input comment.EditCommentInput
	}
	mock.lockEditComment.RLock()
	calls = mock.calls.EditComment
	mock.lockEditComment.RUnlock()
	return calls
}

func (mock *commentServiceMock) DeleteComment(ctx context.Context, commentID uuid.UUID) (*domain.Comment, error) {
	if mock.DeleteCommentFunc == nil {
		panic("commentServiceMock.DeleteCommentFunc: method is nil but commentService.DeleteComment was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		CommentID uuid.UUID
	}{
		Ctx:       ctx,
		CommentID: commentID,
	}
	mock.lockDeleteComment.Lock()
	mock.calls.DeleteComment = append(mock.calls.DeleteComment, callInfo)
	mock.lockDeleteComment.Unlock()
	return mock.DeleteCommentFunc(ctx, commentID)
}

func (mock *commentServiceMock) DeleteCommentCalls() []struct {
	Ctx       context.Context
	CommentID uuid.UUID
} {
	var calls []struct {
		Ctx       context.Context
		CommentID uuid.UUID
	}
	mock.lockDeleteComment.RLock()
	calls = mock.calls.DeleteComment
	mock.lockDeleteComment.RUnlock()
	return calls
}

func (mock *commentServiceMock) RestoreComment(ctx context.Context, commentID uuid.UUID) (*domain.Comment, error) {
	if mock.RestoreCommentFunc == nil {
		panic("commentServiceMock.RestoreCommentFunc: method is nil but commentService.RestoreComment was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		CommentID uuid.UUID
	}{
		Ctx:       ctx,
		CommentID: commentID,
	}
	mock.lockRestoreComment.Lock()
	mock.calls.RestoreComment = append(mock.calls.RestoreComment, callInfo)
	mock.lockRestoreComment.Unlock()
	return mock.RestoreCommentFunc(ctx, commentID)
}

func (mock *commentServiceMock) RestoreCommentCalls() []struct {
	Ctx       context.Context
	CommentID uuid.UUID
} {
	var calls []struct {
		Ctx       context.Context
		CommentID uuid.UUID
	}
	mock.lockRestoreComment.RLock()
	calls = mock.calls.RestoreComment
	mock.lockRestoreComment.RUnlock()
	return calls
}

func (mock *commentServiceMock) Policy() domain.LifecyclePolicy {
	if mock.PolicyFunc == nil {
		panic("commentServiceMock.PolicyFunc: method is nil but commentService.Policy was just called")
	}
	callInfo := struct{}{}
	mock.lockPolicy.Lock()
	mock.calls.Policy = append(mock.calls.Policy, callInfo)
	mock.lockPolicy.Unlock()
	return mock.PolicyFunc()
}

func (mock *commentServiceMock) PolicyCalls() []struct{} {
	var calls []struct{}
	mock.lockPolicy.RLock()
	calls = mock.calls.Policy
	mock.lockPolicy.RUnlock()
	return calls
}

func (mock *commentServiceMock) Now() time.Time {
	if mock.NowFunc == nil {
		panic("commentServiceMock.NowFunc: method is nil but commentService.Now was just called")
	}
	callInfo := struct{}{}
	mock.lockNow.Lock()
	mock.calls.Now = append(mock.calls.Now, callInfo)
	mock.lockNow.Unlock()
	return mock.NowFunc()
}

func (mock *commentServiceMock) NowCalls() []struct{} {
	var calls []struct{}
	mock.lockNow.RLock()
	calls = mock.calls.Now
	mock.lockNow.RUnlock()
	return calls
}
