package rest

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/threadline-backend/internal/domain"
	"github.com/heartmarshall/threadline-backend/internal/transport/dataloader"
	"github.com/heartmarshall/threadline-backend/pkg/ctxutil"
)

// deletedPlaceholder replaces the content of deleted comments for non-authors.
const deletedPlaceholder = "[deleted]"

type authorView struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
}

type commentView struct {
	ID         uuid.UUID      `json:"id"`
	ParentID   *uuid.UUID     `json:"parentId"`
	Author     authorView     `json:"author"`
	Content    string         `json:"content"`
	Status     string         `json:"status"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
	DeletedAt  *time.Time     `json:"deletedAt,omitempty"`
	CanEdit    bool           `json:"canEdit"`
	CanDelete  bool           `json:"canDelete"`
	CanRestore bool           `json:"canRestore"`
	Replies    []*commentView `json:"replies,omitempty"`
}

type notificationView struct {
	ID        uuid.UUID       `json:"id"`
	CommentID uuid.UUID       `json:"commentId"`
	IsRead    bool            `json:"isRead"`
	CreatedAt time.Time       `json:"createdAt"`
	Comment   *commentPreview `json:"comment,omitempty"`
}

type commentPreview struct {
	Author  authorView `json:"author"`
	Content string     `json:"content"`
}

type userView struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

func toUserView(u *domain.User) userView {
	return userView{ID: u.ID, Username: u.Username, Email: u.Email, CreatedAt: u.CreatedAt}
}

// presenter renders comments for one caller at one instant.
type presenter struct {
	policy    domain.LifecyclePolicy
	now       time.Time
	caller    uuid.UUID
	hasCaller bool
	loaders   *dataloader.Loaders
}

func newPresenter(ctx context.Context, policy domain.LifecyclePolicy, now time.Time) *presenter {
	caller, ok := ctxutil.UserIDFromCtx(ctx)
	return &presenter{
		policy:    policy,
		now:       now,
		caller:    caller,
		hasCaller: ok,
		loaders:   dataloader.FromContext(ctx),
	}
}

// authors resolves usernames for ids in one batch. Unknown ids map to "".
func (p *presenter) authors(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error) {
	thunks := make(map[uuid.UUID]func() (*domain.User, error), len(ids))
	for _, id := range ids {
		if _, ok := thunks[id]; !ok {
			thunks[id] = p.loaders.UsersByID.Load(ctx, id)
		}
	}

	names := make(map[uuid.UUID]string, len(thunks))
	for id, thunk := range thunks {
		u, err := thunk()
		if err != nil {
			return nil, err
		}
		if u != nil {
			names[id] = u.Username
		}
	}
	return names, nil
}

func (p *presenter) comment(c *domain.Comment, names map[uuid.UUID]string) *commentView {
	own := p.hasCaller && c.IsAuthor(p.caller)

	content := c.Content
	if c.IsDeleted() && !own {
		content = deletedPlaceholder
	}

	state := p.policy.State(c, p.now)
	return &commentView{
		ID:         c.ID,
		ParentID:   c.ParentID,
		Author:     authorView{ID: c.AuthorID, Username: names[c.AuthorID]},
		Content:    content,
		Status:     state.Status.String(),
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
		DeletedAt:  c.DeletedAt,
		CanEdit:    own && state.Editable,
		CanDelete:  own && state.Deletable,
		CanRestore: own && state.Restorable,
	}
}

func (p *presenter) single(ctx context.Context, c *domain.Comment) (*commentView, error) {
	names, err := p.authors(ctx, []uuid.UUID{c.AuthorID})
	if err != nil {
		return nil, err
	}
	return p.comment(c, names), nil
}

func (p *presenter) threads(ctx context.Context, roots []*domain.ThreadNode) ([]*commentView, error) {
	var ids []uuid.UUID
	for _, root := range roots {
		root.Walk(func(n *domain.ThreadNode) { ids = append(ids, n.Comment.AuthorID) })
	}
	names, err := p.authors(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]*commentView, len(roots))
	for i, root := range roots {
		out[i] = p.node(root, names)
	}
	return out, nil
}

func (p *presenter) node(n *domain.ThreadNode, names map[uuid.UUID]string) *commentView {
	v := p.comment(&n.Comment, names)
	v.Replies = make([]*commentView, len(n.Replies))
	for i, r := range n.Replies {
		v.Replies[i] = p.node(r, names)
	}
	return v
}

// notifications renders a list with a preview of each replying comment.
func (p *presenter) notifications(ctx context.Context, list []domain.Notification) ([]notificationView, error) {
	thunks := make([]func() (*domain.Comment, error), len(list))
	for i, n := range list {
		thunks[i] = p.loaders.CommentsByID.Load(ctx, n.CommentID)
	}

	comments := make([]*domain.Comment, len(list))
	authorIDs := make([]uuid.UUID, 0, len(list))
	for i, thunk := range thunks {
		c, err := thunk()
		if err != nil {
			return nil, err
		}
		comments[i] = c
		if c != nil {
			authorIDs = append(authorIDs, c.AuthorID)
		}
	}

	names, err := p.authors(ctx, authorIDs)
	if err != nil {
		return nil, err
	}

	out := make([]notificationView, len(list))
	for i, n := range list {
		out[i] = toNotificationView(n)
		if c := comments[i]; c != nil {
			v := p.comment(c, names)
			out[i].Comment = &commentPreview{Author: v.Author, Content: v.Content}
		}
	}
	return out, nil
}

func toNotificationView(n domain.Notification) notificationView {
	return notificationView{ID: n.ID, CommentID: n.CommentID, IsRead: n.IsRead, CreatedAt: n.CreatedAt}
}
