package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/arangodb/go-driver/v2/arangodb"

	"taskhive.app/api/core/db"
	"taskhive.app/api/internal/model"
)

type userStore struct {
	db *db.DB
}

func newUserStore(database *db.DB) UserStore {
	return &userStore{db: database}
}

type userDoc struct {
	Key            string    `json:"_key,omitempty"`
	ID             int64     `json:"id"`
	FullName       string    `json:"full_name"`
	Email          string    `json:"email"`
	PasswordDigest string    `json:"password"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (s *userStore) GetByID(ctx context.Context, id int64) (*model.User, error) {
	col, err := s.db.Collection(ctx, db.CollectionUsers)
	if err != nil {
		return nil, err
	}

	var doc userDoc
	if _, err := col.ReadDocument(ctx, docKey(id), &doc); err != nil {
		return nil, translateArangoError(err)
	}
	return toUserModel(doc), nil
}

func (s *userStore) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `
		FOR u IN users
			FILTER u.email == @email
			LIMIT 1
			RETURN u
	`

	cursor, err := s.db.Database().Query(ctx, query, &arangodb.QueryOptions{
		BindVars: map[string]any{"email": email},
	})
	if err != nil {
		return nil, fmt.Errorf("query user by email: %w", err)
	}
	defer cursor.Close()

	if !cursor.HasMore() {
		return nil, ErrNotFound
	}

	var doc userDoc
	if _, err := cursor.ReadDocument(ctx, &doc); err != nil {
		return nil, fmt.Errorf("read user document: %w", err)
	}
	return toUserModel(doc), nil
}

func (s *userStore) Create(ctx context.Context, user *model.User) error {
	col, err := s.db.Collection(ctx, db.CollectionUsers)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	doc := userDoc{
		Key:            docKey(user.ID),
		ID:             user.ID,
		FullName:       user.FullName,
		Email:          user.Email,
		PasswordDigest: user.PasswordDigest,
		CreatedAt:      user.CreatedAt,
		UpdatedAt:      user.UpdatedAt,
	}

	if _, err := col.CreateDocument(ctx, doc); err != nil {
		if terr := translateArangoError(err); errors.Is(terr, ErrConflict) {
			return ErrConflict
		}
		return fmt.Errorf("create user document: %w", err)
	}
	return nil
}

func toUserModel(doc userDoc) *model.User {
	return &model.User{
		ID:             doc.ID,
		FullName:       doc.FullName,
		Email:          doc.Email,
		PasswordDigest: doc.PasswordDigest,
		CreatedAt:      doc.CreatedAt,
		UpdatedAt:      doc.UpdatedAt,
	}
}
