package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"taskhive.app/api/common/id"
	"taskhive.app/api/internal/model"
	"taskhive.app/api/internal/store"
)

// defaultWorkspaceName is the workspace every new user starts with.
const defaultWorkspaceName = "Personal"

var (
	ErrMissingField = errors.New("missing required field")
	ErrEmailTaken   = errors.New("email is already registered")
)

type UserService interface {
	Register(ctx context.Context, fullName, email, password string) (*model.User, error)
	GetByID(ctx context.Context, userID int64) (*model.User, error)
}

type userService struct {
	userStore      store.UserStore
	workspaceStore store.WorkspaceStore
}

func NewUserService(userStore store.UserStore, workspaceStore store.WorkspaceStore) UserService {
	return &userService{
		userStore:      userStore,
		workspaceStore: workspaceStore,
	}
}

// Register creates a user and provisions their default personal
// workspace. Field validation happens before any store access.
func (s *userService) Register(ctx context.Context, fullName, email, password string) (*model.User, error) {
	if fullName == "" || email == "" || password == "" {
		return nil, ErrMissingField
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &model.User{
		ID:             id.New(),
		FullName:       fullName,
		Email:          email,
		PasswordDigest: string(digest),
	}

	if err := s.userStore.Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrConflict) {
			return nil, ErrEmailTaken
		}
		slog.ErrorContext(ctx, "failed to create user",
			"error", err,
			"email", email,
		)
		return nil, fmt.Errorf("creating user: %w", err)
	}

	workspace := &model.Workspace{
		ID:     id.New(),
		Name:   defaultWorkspaceName,
		Users:  []int64{user.ID},
		Boards: []int64{},
	}

	// Second write of the registration pair. The user document persists
	// even when this fails; the failure is reported to the caller.
	if err := s.workspaceStore.Create(ctx, workspace); err != nil {
		slog.ErrorContext(ctx, "failed to provision personal workspace",
			"error", err,
			"user_id", user.ID,
		)
		return nil, fmt.Errorf("provisioning personal workspace: %w", err)
	}

	slog.InfoContext(ctx, "user registered",
		"user_id", user.ID,
		"workspace_id", workspace.ID,
	)
	return user, nil
}

func (s *userService) GetByID(ctx context.Context, userID int64) (*model.User, error) {
	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("getting user: %w", err)
	}
	return user, nil
}
