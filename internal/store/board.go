package store

import (
	"context"
	"fmt"
	"time"

	"github.com/arangodb/go-driver/v2/arangodb"

	"taskhive.app/api/core/db"
	"taskhive.app/api/internal/model"
)

type boardStore struct {
	db *db.DB
}

func newBoardStore(database *db.DB) BoardStore {
	return &boardStore{db: database}
}

type boardDoc struct {
	Key         string        `json:"_key,omitempty"`
	ID          int64         `json:"id"`
	Name        string        `json:"name"`
	WorkspaceID int64         `json:"workspace"`
	Labels      []model.Label `json:"labels"`
	Lists       []listDoc     `json:"lists"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

type listDoc struct {
	ID     int64        `json:"id"`
	Header string       `json:"header"`
	Cards  []model.Card `json:"cards"`
}

func (s *boardStore) GetByID(ctx context.Context, id int64) (*model.Board, error) {
	col, err := s.db.Collection(ctx, db.CollectionBoards)
	if err != nil {
		return nil, err
	}

	var doc boardDoc
	if _, err := col.ReadDocument(ctx, docKey(id), &doc); err != nil {
		return nil, translateArangoError(err)
	}
	return toBoardModel(doc), nil
}

func (s *boardStore) Create(ctx context.Context, board *model.Board) error {
	col, err := s.db.Collection(ctx, db.CollectionBoards)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	board.CreatedAt = now
	board.UpdatedAt = now
	if board.Labels == nil {
		board.Labels = []model.Label{}
	}
	if board.Lists == nil {
		board.Lists = []model.List{}
	}

	doc := boardDoc{
		Key:         docKey(board.ID),
		ID:          board.ID,
		Name:        board.Name,
		WorkspaceID: board.WorkspaceID,
		Labels:      board.Labels,
		Lists:       toListDocs(board.Lists),
		CreatedAt:   board.CreatedAt,
		UpdatedAt:   board.UpdatedAt,
	}

	if _, err := col.CreateDocument(ctx, doc); err != nil {
		return fmt.Errorf("create board document: %w", translateArangoError(err))
	}
	return nil
}

// AddList appends as an atomic PUSH so concurrent appends on the same
// board never drop each other.
func (s *boardStore) AddList(ctx context.Context, id int64, list model.List) (*model.Board, error) {
	if list.Cards == nil {
		list.Cards = []model.Card{}
	}
	return s.appendOne(ctx, id, `{ lists: PUSH(b.lists, @value), updated_at: @now }`, listDoc{
		ID:     list.ID,
		Header: list.Header,
		Cards:  list.Cards,
	})
}

func (s *boardStore) AddLabel(ctx context.Context, id int64, label model.Label) (*model.Board, error) {
	return s.appendOne(ctx, id, `{ labels: PUSH(b.labels, @value), updated_at: @now }`, label)
}

func (s *boardStore) appendOne(ctx context.Context, id int64, patch string, value any) (*model.Board, error) {
	query := fmt.Sprintf(`
		FOR b IN boards
			FILTER b._key == @key
			UPDATE b WITH %s IN boards
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
		return nil, fmt.Errorf("update board: %w", translateArangoError(err))
	}
	defer cursor.Close()

	if !cursor.HasMore() {
		return nil, ErrNotFound
	}

	var doc boardDoc
	if _, err := cursor.ReadDocument(ctx, &doc); err != nil {
		return nil, fmt.Errorf("read board document: %w", err)
	}
	return toBoardModel(doc), nil
}

func toBoardModel(doc boardDoc) *model.Board {
	labels := doc.Labels
	if labels == nil {
		labels = []model.Label{}
	}

	lists := make([]model.List, len(doc.Lists))
	for i, l := range doc.Lists {
		cards := l.Cards
		if cards == nil {
			cards = []model.Card{}
		}
		lists[i] = model.List{ID: l.ID, Header: l.Header, Cards: cards}
	}

	return &model.Board{
		ID:          doc.ID,
		Name:        doc.Name,
		WorkspaceID: doc.WorkspaceID,
		Labels:      labels,
		Lists:       lists,
		CreatedAt:   doc.CreatedAt,
		UpdatedAt:   doc.UpdatedAt,
	}
}

func toListDocs(lists []model.List) []listDoc {
	result := make([]listDoc, len(lists))
	for i, l := range lists {
		cards := l.Cards
		if cards == nil {
			cards = []model.Card{}
		}
		result[i] = listDoc{ID: l.ID, Header: l.Header, Cards: cards}
	}
	return result
}
