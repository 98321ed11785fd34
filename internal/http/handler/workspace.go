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

type WorkspaceHandler struct {
	workspaceService service.WorkspaceService
}

func NewWorkspaceHandler(workspaceService service.WorkspaceService) *WorkspaceHandler {
	return &WorkspaceHandler{workspaceService: workspaceService}
}

type CreateWorkspaceRequest struct {
	Name string `json:"name"`
}

func (h *WorkspaceHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()
	caller := middleware.GetUser(ctx)

	var req CreateWorkspaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	workspace, err := h.workspaceService.Create(ctx, req.Name, caller.ID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to create workspace", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create workspace"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"workspace": toWorkspaceResponse(workspace)})
}

func (h *WorkspaceHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	caller := middleware.GetUser(ctx)

	workspaces, err := h.workspaceService.ListByUser(ctx, caller.ID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list workspaces", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list workspaces"})
		return
	}

	resp := make([]WorkspaceResponse, len(workspaces))
	for i := range workspaces {
		resp[i] = toWorkspaceResponse(&workspaces[i])
	}

	c.JSON(http.StatusOK, gin.H{"workspaces": resp})
}

type RenameWorkspaceRequest struct {
	Name string `json:"name"`
}

func (h *WorkspaceHandler) Rename(c *gin.Context) {
	ctx := c.Request.Context()
	caller := middleware.GetUser(ctx)

	workspaceID, err := parseID(c.Param("workspace_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid workspace ID"})
		return
	}
	ctx = logger.WithLogFields(ctx, logger.LogFields{WorkspaceID: &workspaceID})

	var req RenameWorkspaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	workspace, err := h.workspaceService.Rename(ctx, workspaceID, req.Name, caller.ID)
	if err != nil {
		h.respondError(c, err, "failed to rename workspace")
		return
	}

	c.JSON(http.StatusOK, gin.H{"workspace": toWorkspaceResponse(workspace)})
}

// AddSelf adds the authenticated caller to the workspace's membership.
func (h *WorkspaceHandler) AddSelf(c *gin.Context) {
	ctx := c.Request.Context()
	caller := middleware.GetUser(ctx)

	workspaceID, err := parseID(c.Param("workspace_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid workspace ID"})
		return
	}
	ctx = logger.WithLogFields(ctx, logger.LogFields{WorkspaceID: &workspaceID})

	workspace, err := h.workspaceService.AddUser(ctx, workspaceID, caller.ID)
	if err != nil {
		h.respondError(c, err, "failed to add workspace user")
		return
	}

	c.JSON(http.StatusOK, gin.H{"workspace": toWorkspaceResponse(workspace)})
}

func (h *WorkspaceHandler) RemoveUser(c *gin.Context) {
	ctx := c.Request.Context()
	caller := middleware.GetUser(ctx)

	workspaceID, err := parseID(c.Param("workspace_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid workspace ID"})
		return
	}
	ctx = logger.WithLogFields(ctx, logger.LogFields{WorkspaceID: &workspaceID})

	userID, err := parseID(c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user ID"})
		return
	}

	if _, err := h.workspaceService.RemoveUser(ctx, workspaceID, userID, caller.ID); err != nil {
		h.respondError(c, err, "failed to remove workspace user")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *WorkspaceHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	caller := middleware.GetUser(ctx)

	workspaceID, err := parseID(c.Param("workspace_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid workspace ID"})
		return
	}
	ctx = logger.WithLogFields(ctx, logger.LogFields{WorkspaceID: &workspaceID})

	if err := h.workspaceService.Delete(ctx, workspaceID, caller.ID); err != nil {
		h.respondError(c, err, "failed to delete workspace")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *WorkspaceHandler) respondError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrMissingField):
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
	case errors.Is(err, service.ErrWorkspaceNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "workspace matching ID not found"})
	case errors.Is(err, service.ErrUserNotMember):
		c.JSON(http.StatusNotFound, gin.H{"error": "user is not part of workspace"})
	case errors.Is(err, service.ErrNotMember):
		c.JSON(http.StatusForbidden, gin.H{"error": "user is not part of workspace"})
	default:
		slog.ErrorContext(c.Request.Context(), fallback, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
