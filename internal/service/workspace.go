package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"taskhive.app/api/common/id"
	"taskhive.app/api/internal/model"
	"taskhive.app/api/internal/store"
)

var (
	ErrWorkspaceNotFound = errors.New("workspace not found")
	ErrNotMember         = errors.New("user is not part of workspace")
	ErrUserNotMember     = errors.New("user to remove is not part of workspace")
)

// WorkspaceService is the sole gatekeeper for workspace state. Every
// workspace- or board-scoped mutation passes through Authorize.
type WorkspaceService interface {
	Create(ctx context.Context, name string, ownerID int64) (*model.Workspace, error)
	GetByID(ctx context.Context, workspaceID int64) (*model.Workspace, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Workspace, error)
	Rename(ctx context.Context, workspaceID int64, name string, callerID int64) (*model.Workspace, error)
	AddUser(ctx context.Context, workspaceID, userID int64) (*model.Workspace, error)
	RemoveUser(ctx context.Context, workspaceID, userID, callerID int64) (*model.Workspace, error)
	Delete(ctx context.Context, workspaceID, callerID int64) error
	Authorize(ctx context.Context, workspaceID, userID int64) (*model.Workspace, error)
}

type workspaceService struct {
	workspaceStore store.WorkspaceStore
}

func NewWorkspaceService(workspaceStore store.WorkspaceStore) WorkspaceService {
	return &workspaceService{workspaceStore: workspaceStore}
}

// Authorize resolves the workspace and checks that userID is a member.
// Existence is always checked before membership: a request against a
// workspace that never existed reports not-found, never forbidden.
func (s *workspaceService) Authorize(ctx context.Context, workspaceID, userID int64) (*model.Workspace, error) {
	workspace, err := s.workspaceStore.GetByID(ctx, workspaceID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrWorkspaceNotFound
		}
		return nil, fmt.Errorf("getting workspace: %w", err)
	}

	if !workspace.HasUser(userID) {
		return nil, ErrNotMember
	}

	return workspace, nil
}

func (s *workspaceService) Create(ctx context.Context, name string, ownerID int64) (*model.Workspace, error) {
	workspace := &model.Workspace{
		ID:     id.New(),
		Name:   name,
		Users:  []int64{ownerID},
		Boards: []int64{},
	}

	if err := s.workspaceStore.Create(ctx, workspace); err != nil {
		slog.ErrorContext(ctx, "failed to create workspace",
			"error", err,
			"owner_id", ownerID,
		)
		return nil, fmt.Errorf("creating workspace: %w", err)
	}

	slog.InfoContext(ctx, "workspace created", "workspace_id", workspace.ID)
	return workspace, nil
}

func (s *workspaceService) GetByID(ctx context.Context, workspaceID int64) (*model.Workspace, error) {
	workspace, err := s.workspaceStore.GetByID(ctx, workspaceID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrWorkspaceNotFound
		}
		return nil, fmt.Errorf("getting workspace: %w", err)
	}
	return workspace, nil
}

func (s *workspaceService) ListByUser(ctx context.Context, userID int64) ([]model.Workspace, error) {
	workspaces, err := s.workspaceStore.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing workspaces: %w", err)
	}
	return workspaces, nil
}

func (s *workspaceService) Rename(ctx context.Context, workspaceID int64, name string, callerID int64) (*model.Workspace, error) {
	if name == "" {
		return nil, ErrMissingField
	}

	if _, err := s.Authorize(ctx, workspaceID, callerID); err != nil {
		return nil, err
	}

	workspace, err := s.workspaceStore.UpdateName(ctx, workspaceID, name)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrWorkspaceNotFound
		}
		return nil, fmt.Errorf("renaming workspace: %w", err)
	}
	return workspace, nil
}

// AddUser is idempotent: adding an existing member returns the current
// state unchanged. Any authenticated user may add themselves.
func (s *workspaceService) AddUser(ctx context.Context, workspaceID, userID int64) (*model.Workspace, error) {
	workspace, err := s.workspaceStore.AddUser(ctx, workspaceID, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrWorkspaceNotFound
		}
		return nil, fmt.Errorf("adding workspace user: %w", err)
	}

	slog.InfoContext(ctx, "workspace user added",
		"workspace_id", workspaceID,
		"user_id", userID,
	)
	return workspace, nil
}

// RemoveUser removes a member. Removing the last member deletes the
// workspace instead of persisting an empty membership set; the returned
// workspace is nil in that case.
func (s *workspaceService) RemoveUser(ctx context.Context, workspaceID, userID, callerID int64) (*model.Workspace, error) {
	workspace, err := s.Authorize(ctx, workspaceID, callerID)
	if err != nil {
		return nil, err
	}

	if !workspace.HasUser(userID) {
		return nil, ErrUserNotMember
	}

	updated, err := s.workspaceStore.RemoveUser(ctx, workspaceID, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrWorkspaceNotFound
		}
		return nil, fmt.Errorf("removing workspace user: %w", err)
	}

	if len(updated.Users) == 0 {
		if err := s.workspaceStore.Delete(ctx, workspaceID); err != nil && !errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("deleting emptied workspace: %w", err)
		}
		slog.InfoContext(ctx, "workspace deleted after last member left",
			"workspace_id", workspaceID,
			"user_id", userID,
		)
		return nil, nil
	}

	slog.InfoContext(ctx, "workspace user removed",
		"workspace_id", workspaceID,
		"user_id", userID,
	)
	return updated, nil
}

func (s *workspaceService) Delete(ctx context.Context, workspaceID, callerID int64) error {
	if _, err := s.Authorize(ctx, workspaceID, callerID); err != nil {
		return err
	}

	if err := s.workspaceStore.Delete(ctx, workspaceID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrWorkspaceNotFound
		}
		return fmt.Errorf("deleting workspace: %w", err)
	}

	slog.InfoContext(ctx, "workspace deleted", "workspace_id", workspaceID)
	return nil
}
