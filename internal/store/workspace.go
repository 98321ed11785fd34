package store

import (
	"context"
	"fmt"
	"time"

	"github.com/arangodb/go-driver/v2/arangodb"

	"taskhive.app/api/core/db"
	"taskhive.app/api/internal/model"
)

type workspaceStore struct {
	db *db.DB
}

func newWorkspaceStore(database *db.DB) WorkspaceStore {
	return &workspaceStore{db: database}
}

type workspaceDoc struct {
	Key       string    `json:"_key,omitempty"`
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Users     []int64   `json:"users"`
	Boards    []int64   `json:"boards"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *workspaceStore) GetByID(ctx context.Context, id int64) (*model.Workspace, error) {
	col, err := s.db.Collection(ctx, db.CollectionWorkspaces)
	if err != nil {
		return nil, err
	}

	var doc workspaceDoc
	if _, err := col.ReadDocument(ctx, docKey(id), &doc); err != nil {
		return nil, translateArangoError(err)
	}
	return toWorkspaceModel(doc), nil
}

func (s *workspaceStore) Create(ctx context.Context, ws *model.Workspace) error {
	col, err := s.db.Collection(ctx, db.CollectionWorkspaces)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	ws.CreatedAt = now
	ws.UpdatedAt = now
	if ws.Users == nil {
		ws.Users = []int64{}
	}
	if ws.Boards == nil {
		ws.Boards = []int64{}
	}

	doc := workspaceDoc{
		Key:       docKey(ws.ID),
		ID:        ws.ID,
		Name:      ws.Name,
		Users:     ws.Users,
		Boards:    ws.Boards,
		CreatedAt: ws.CreatedAt,
		UpdatedAt: ws.UpdatedAt,
	}

	if _, err := col.CreateDocument(ctx, doc); err != nil {
		return fmt.Errorf("create workspace document: %w", translateArangoError(err))
	}
	return nil
}

func (s *workspaceStore) UpdateName(ctx context.Context, id int64, name string) (*model.Workspace, error) {
	return s.updateOne(ctx, id, `{ name: @value, updated_at: @now }`, name)
}

// AddUser appends userID as an atomic unique-PUSH, so the call is
// idempotent and concurrent membership changes cannot overwrite each
// other.
func (s *workspaceStore) AddUser(ctx context.Context, id, userID int64) (*model.Workspace, error) {
	return s.updateOne(ctx, id, `{ users: PUSH(w.users, @value, true), updated_at: @now }`, userID)
}

// RemoveUser pulls userID from the membership set. Callers decide what
// an emptied set means; the store never deletes the document itself.
func (s *workspaceStore) RemoveUser(ctx context.Context, id, userID int64) (*model.Workspace, error) {
	return s.updateOne(ctx, id, `{ users: REMOVE_VALUE(w.users, @value), updated_at: @now }`, userID)
}

// LinkBoard records board ownership on the workspace. Unique-PUSH keeps
// retries of the board-create dual write idempotent.
func (s *workspaceStore) LinkBoard(ctx context.Context, id, boardID int64) (*model.Workspace, error) {
	return s.updateOne(ctx, id, `{ boards: PUSH(w.boards, @value, true), updated_at: @now }`, boardID)
}

func (s *workspaceStore) updateOne(ctx context.Context, id int64, patch string, value any) (*model.Workspace, error) {
	query := fmt.Sprintf(`
		FOR w IN workspaces
			FILTER w._key == @key
			UPDATE w WITH %s IN workspaces
			RETURN NEW
	`, patch)

	cursor, err := s.db.Database().Query(ctx, query, &arangodb.QueryOptions{
		BindVars: map[string]any{
			"key":   docKey(id),
			"value": value,
			"now":   time.Now().UTC(),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("update workspace: %w", translateArangoError(err))
	}
	defer cursor.Close()

	if !cursor.HasMore() {
		return nil, ErrNotFound
	}

	var doc workspaceDoc
	if _, err := cursor.ReadDocument(ctx, &doc); err != nil {
		return nil, fmt.Errorf("read workspace document: %w", err)
	}
	return toWorkspaceModel(doc), nil
}

func (s *workspaceStore) ListByUser(ctx context.Context, userID int64) ([]model.Workspace, error) {
	query := `
		FOR w IN workspaces
			FILTER @user IN w.users
			RETURN w
	`

	cursor, err := s.db.Database().Query(ctx, query, &arangodb.QueryOptions{
		BindVars: map[string]any{"user": userID},
	})
	if err != nil {
		return nil, fmt.Errorf("list workspaces by user: %w", err)
	}
	defer cursor.Close()

	var result []model.Workspace
	for cursor.HasMore() {
		var doc workspaceDoc
		if _, err := cursor.ReadDocument(ctx, &doc); err != nil {
			return nil, fmt.Errorf("read workspace document: %w", err)
		}
		result = append(result, *toWorkspaceModel(doc))
	}
	return result, nil
}

func (s *workspaceStore) Delete(ctx context.Context, id int64) error {
	col, err := s.db.Collection(ctx, db.CollectionWorkspaces)
	if err != nil {
		return err
	}

	if _, err := col.DeleteDocument(ctx, docKey(id)); err != nil {
		return translateArangoError(err)
	}
	return nil
}

func toWorkspaceModel(doc workspaceDoc) *model.Workspace {
	users := doc.Users
	if users == nil {
		users = []int64{}
	}
	boards := doc.Boards
	if boards == nil {
		boards = []int64{}
	}

	return &model.Workspace{
		ID:        doc.ID,
		Name:      doc.Name,
		Users:     users,
		Boards:    boards,
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
	}
}
