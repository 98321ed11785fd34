package service

import (
	"time"

	"taskhive.app/api/internal/store"
)

type Services struct {
	stores     *store.Stores
	sessionTTL time.Duration
}

func NewServices(stores *store.Stores, sessionTTL time.Duration) *Services {
	return &Services{
		stores:     stores,
		sessionTTL: sessionTTL,
	}
}

func (s *Services) Users() UserService {
	return NewUserService(s.stores.Users(), s.stores.Workspaces())
}

func (s *Services) Auth() AuthService {
	return NewAuthService(s.stores.Users(), s.stores.Sessions(), s.sessionTTL)
}

func (s *Services) Workspaces() WorkspaceService {
	return NewWorkspaceService(s.stores.Workspaces())
}

func (s *Services) Boards() BoardService {
	return NewBoardService(s.stores.Boards(), s.stores.Workspaces(), s.Workspaces())
}
