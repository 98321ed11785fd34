package store

import (
	"github.com/redis/go-redis/v9"

	"taskhive.app/api/core/db"
)

type Stores struct {
	db    *db.DB
	redis *redis.Client
}

func NewStores(database *db.DB, redisClient *redis.Client) *Stores {
	return &Stores{
		db:    database,
		redis: redisClient,
	}
}

func (s *Stores) Users() UserStore {
	return newUserStore(s.db)
}

func (s *Stores) Workspaces() WorkspaceStore {
	return newWorkspaceStore(s.db)
}

func (s *Stores) Boards() BoardStore {
	return newBoardStore(s.db)
}

func (s *Stores) Sessions() SessionStore {
	return newSessionStore(s.redis)
}
