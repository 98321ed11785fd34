package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"taskhive.app/api/common/logger"
	"taskhive.app/api/internal/http/middleware"
	"taskhive.app/api/internal/service"
)

type BoardHandler struct {
	boardService service.BoardService
}

func NewBoardHandler(boardService service.BoardService) *BoardHandler {
	return &BoardHandler{boardService: boardService}
}

type CreateBoardRequest struct {
	Name        string `json:"name"`
	WorkspaceID string `json:"workspace_id"`
}

func (h *BoardHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()
	caller := middleware.GetUser(ctx)

	var req CreateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	var workspaceID int64
	if req.WorkspaceID != "" {
		var err error
		workspaceID, err = parseID(req.WorkspaceID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid workspace ID"})
			return
		}
	}

	board, err := h.boardService.Create(ctx, req.Name, workspaceID, caller.ID)
	if err != nil {
		h.respondError(c, err, "failed to create board")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"board": toBoardResponse(board)})
}

func (h *BoardHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()
	caller := middleware.GetUser(ctx)

	boardID, err := parseID(c.Param("board_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid board ID"})
		return
	}
	ctx = logger.WithLogFields(ctx, logger.LogFields{BoardID: &boardID})

	board, err := h.boardService.GetByID(ctx, boardID, caller.ID)
	if err != nil {
		h.respondError(c, err, "failed to get board")
		return
	}

	c.JSON(http.StatusOK, gin.H{"board": toBoardResponse(board)})
}

type AddListRequest struct {
	Header string `json:"header"`
}

func (h *BoardHandler) AddList(c *gin.Context) {
	ctx := c.Request.Context()
	caller := middleware.GetUser(ctx)

	boardID, err := parseID(c.Param("board_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid board ID"})
		return
	}
	ctx = logger.WithLogFields(ctx, logger.LogFields{BoardID: &boardID})

	var req AddListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	board, err := h.boardService.AddList(ctx, boardID, req.Header, caller.ID)
	if err != nil {
		h.respondError(c, err, "failed to add list")
		return
	}

	c.JSON(http.StatusOK, gin.H{"board": toBoardResponse(board)})
}

type AddLabelRequest struct {
	Colour string `json:"colour"`
	Title  string `json:"title"`
}

func (h *BoardHandler) AddLabel(c *gin.Context) {
	ctx := c.Request.Context()
	caller := middleware.GetUser(ctx)

	boardID, err := parseID(c.Param("board_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid board ID"})
		return
	}
	ctx = logger.WithLogFields(ctx, logger.LogFields{BoardID: &boardID})

	var req AddLabelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	board, err := h.boardService.AddLabel(ctx, boardID, req.Colour, req.Title, caller.ID)
	if err != nil {
		h.respondError(c, err, "failed to add label")
		return
	}

	c.JSON(http.StatusOK, gin.H{"board": toBoardResponse(board)})
}

func (h *BoardHandler) respondError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrMissingField):
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required field"})
	case errors.Is(err, service.ErrBoardNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "board matching ID not found"})
	case errors.Is(err, service.ErrWorkspaceNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "workspace matching ID not found"})
	case errors.Is(err, service.ErrNotMember):
		c.JSON(http.StatusForbidden, gin.H{"error": "user is not part of workspace"})
	default:
		slog.ErrorContext(c.Request.Context(), fallback, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
