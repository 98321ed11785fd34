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

var ErrBoardNotFound = errors.New("board not found")

// BoardService owns board, list and label lifecycle. It holds no
// authorization state of its own: every call is gated through the
// owning workspace's membership.
type BoardService interface {
	Create(ctx context.Context, name string, workspaceID, callerID int64) (*model.Board, error)
	GetByID(ctx context.Context, boardID, callerID int64) (*model.Board, error)
	AddList(ctx context.Context, boardID int64, header string, callerID int64) (*model.Board, error)
	AddLabel(ctx context.Context, boardID int64, colour, title string, callerID int64) (*model.Board, error)
}

type boardService struct {
	boardStore     store.BoardStore
	workspaceStore store.WorkspaceStore
	workspaces     WorkspaceService
}

func NewBoardService(boardStore store.BoardStore, workspaceStore store.WorkspaceStore, workspaces WorkspaceService) BoardService {
	return &boardService{
		boardStore:     boardStore,
		workspaceStore: workspaceStore,
		workspaces:     workspaces,
	}
}

// Create inserts the board and links it into the owning workspace's
// board set. The two writes are not transactional: when the link fails
// the board persists as an orphan and the failure is reported. The link
// itself is an idempotent unique-PUSH, so a retry converges.
func (s *boardService) Create(ctx context.Context, name string, workspaceID, callerID int64) (*model.Board, error) {
	if name == "" || workspaceID == 0 {
		return nil, ErrMissingField
	}

	if _, err := s.workspaces.Authorize(ctx, workspaceID, callerID); err != nil {
		return nil, err
	}

	board := &model.Board{
		ID:          id.New(),
		Name:        name,
		WorkspaceID: workspaceID,
		Labels:      []model.Label{},
		Lists:       []model.List{},
	}

	if err := s.boardStore.Create(ctx, board); err != nil {
		slog.ErrorContext(ctx, "failed to create board",
			"error", err,
			"workspace_id", workspaceID,
		)
		return nil, fmt.Errorf("creating board: %w", err)
	}

	if _, err := s.workspaceStore.LinkBoard(ctx, workspaceID, board.ID); err != nil {
		slog.ErrorContext(ctx, "failed to link board to workspace",
			"error", err,
			"workspace_id", workspaceID,
			"board_id", board.ID,
		)
		return nil, fmt.Errorf("linking board to workspace: %w", err)
	}

	slog.InfoContext(ctx, "board created",
		"board_id", board.ID,
		"workspace_id", workspaceID,
	)
	return board, nil
}

func (s *boardService) GetByID(ctx context.Context, boardID, callerID int64) (*model.Board, error) {
	board, err := s.getBoard(ctx, boardID)
	if err != nil {
		return nil, err
	}

	if _, err := s.workspaces.Authorize(ctx, board.WorkspaceID, callerID); err != nil {
		return nil, err
	}

	return board, nil
}

func (s *boardService) AddList(ctx context.Context, boardID int64, header string, callerID int64) (*model.Board, error) {
	if header == "" {
		return nil, ErrMissingField
	}

	if err := s.authorizeBoard(ctx, boardID, callerID); err != nil {
		return nil, err
	}

	list := model.List{
		ID:     id.New(),
		Header: header,
		Cards:  []model.Card{},
	}

	board, err := s.boardStore.AddList(ctx, boardID, list)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrBoardNotFound
		}
		return nil, fmt.Errorf("adding list: %w", err)
	}

	slog.InfoContext(ctx, "list added", "board_id", boardID, "list_id", list.ID)
	return board, nil
}

func (s *boardService) AddLabel(ctx context.Context, boardID int64, colour, title string, callerID int64) (*model.Board, error) {
	if colour == "" || title == "" {
		return nil, ErrMissingField
	}

	if err := s.authorizeBoard(ctx, boardID, callerID); err != nil {
		return nil, err
	}

	label := model.Label{
		ID:     id.New(),
		Colour: colour,
		Title:  title,
	}

	board, err := s.boardStore.AddLabel(ctx, boardID, label)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrBoardNotFound
		}
		return nil, fmt.Errorf("adding label: %w", err)
	}

	slog.InfoContext(ctx, "label added", "board_id", boardID, "label_id", label.ID)
	return board, nil
}

// authorizeBoard resolves the board, then runs the standard
// existence-then-membership check against its owning workspace.
func (s *boardService) authorizeBoard(ctx context.Context, boardID, callerID int64) error {
	board, err := s.getBoard(ctx, boardID)
	if err != nil {
		return err
	}

	if _, err := s.workspaces.Authorize(ctx, board.WorkspaceID, callerID); err != nil {
		return err
	}
	return nil
}

func (s *boardService) getBoard(ctx context.Context, boardID int64) (*model.Board, error) {
	board, err := s.boardStore.GetByID(ctx, boardID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrBoardNotFound
		}
		return nil, fmt.Errorf("getting board: %w", err)
	}
	return board, nil
}
