package store

import (
	"context"
	"errors"

	"taskhive.app/api/internal/model"
)

// ErrNotFound is returned when a requested entity does not exist
var ErrNotFound = errors.New("not found")

// ErrConflict is returned when a unique index rejects a write
var ErrConflict = errors.New("conflict")

// UserStore defines the contract for user data access
type UserStore interface {
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	Create(ctx context.Context, user *model.User) error
}

// WorkspaceStore defines the contract for workspace data access.
// Membership and board-link updates are atomic set operations executed
// by the store engine, so concurrent updates cannot drop each other.
type WorkspaceStore interface {
	GetByID(ctx context.Context, id int64) (*model.Workspace, error)
	Create(ctx context.Context, ws *model.Workspace) error
	UpdateName(ctx context.Context, id int64, name string) (*model.Workspace, error)
	AddUser(ctx context.Context, id, userID int64) (*model.Workspace, error)
	RemoveUser(ctx context.Context, id, userID int64) (*model.Workspace, error)
	LinkBoard(ctx context.Context, id, boardID int64) (*model.Workspace, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Workspace, error)
	Delete(ctx context.Context, id int64) error
}

// BoardStore defines the contract for board data access
type BoardStore interface {
	GetByID(ctx context.Context, id int64) (*model.Board, error)
	Create(ctx context.Context, board *model.Board) error
	AddList(ctx context.Context, id int64, list model.List) (*model.Board, error)
	AddLabel(ctx context.Context, id int64, label model.Label) (*model.Board, error)
}

// SessionStore defines the contract for session data access
type SessionStore interface {
	GetValid(ctx context.Context, id int64) (*model.Session, error) // checks expiry
	Create(ctx context.Context, session *model.Session) error
	Delete(ctx context.Context, id int64) error
}
