package handler_test

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"taskhive.app/api/internal/http/handler"
	"taskhive.app/api/internal/model"
	"taskhive.app/api/internal/service"
)

var _ = Describe("WorkspaceHandler", func() {
	var (
		workspaces *mockWorkspaceService
		router     *gin.Engine
	)

	caller := &model.User{ID: 7, FullName: "Ada Lovelace", Email: "ada@example.com"}

	BeforeEach(func() {
		workspaces = &mockWorkspaceService{}

		h := handler.NewWorkspaceHandler(workspaces)
		engine, group := authedRouter(caller)
		ws := group.Group("/workspaces")
		ws.POST("", h.Create)
		ws.GET("", h.List)
		ws.PATCH("/:workspace_id/name", h.Rename)
		ws.PATCH("/:workspace_id/users", h.AddSelf)
		ws.DELETE("/:workspace_id/users/:user_id", h.RemoveUser)
		ws.DELETE("/:workspace_id", h.Delete)
		router = engine
	})

	Describe("Create", func() {
		It("creates a workspace owned by the caller", func() {
			workspaces.createFn = func(_ context.Context, name string, ownerID int64) (*model.Workspace, error) {
				Expect(ownerID).To(Equal(caller.ID))
				return &model.Workspace{ID: 1, Name: name, Users: []int64{ownerID}, Boards: []int64{}}, nil
			}

			rec := doJSON(router, http.MethodPost, "/workspaces", gin.H{"name": "Side Projects"}, true)

			Expect(rec.Code).To(Equal(http.StatusCreated))
			ws := decodeBody(rec)["workspace"].(map[string]any)
			Expect(ws["name"]).To(Equal("Side Projects"))
			Expect(ws["users"]).To(Equal([]any{"7"}))
		})

		It("rejects unauthenticated requests", func() {
			rec := doJSON(router, http.MethodPost, "/workspaces", gin.H{"name": "Side Projects"}, false)

			Expect(rec.Code).To(Equal(http.StatusUnauthorized))
		})
	})

	Describe("List", func() {
		It("lists only the caller's workspaces", func() {
			workspaces.listByUserFn = func(_ context.Context, userID int64) ([]model.Workspace, error) {
				Expect(userID).To(Equal(caller.ID))
				return []model.Workspace{
					{ID: 1, Name: "Personal", Users: []int64{7}, Boards: []int64{}},
					{ID: 2, Name: "Team", Users: []int64{7, 8}, Boards: []int64{5}},
				}, nil
			}

			rec := doJSON(router, http.MethodGet, "/workspaces", nil, true)

			Expect(rec.Code).To(Equal(http.StatusOK))
			list := decodeBody(rec)["workspaces"].([]any)
			Expect(list).To(HaveLen(2))
		})
	})

	Describe("Rename", func() {
		It("returns 404 for a workspace that does not exist", func() {
			workspaces.renameFn = func(_ context.Context, _ int64, _ string, _ int64) (*model.Workspace, error) {
				return nil, service.ErrWorkspaceNotFound
			}

			rec := doJSON(router, http.MethodPatch, "/workspaces/99/name", gin.H{"name": "New"}, true)

			Expect(rec.Code).To(Equal(http.StatusNotFound))
			Expect(decodeBody(rec)["error"]).To(Equal("workspace matching ID not found"))
		})

		It("returns 403 when the caller is not a member", func() {
			workspaces.renameFn = func(_ context.Context, _ int64, _ string, _ int64) (*model.Workspace, error) {
				return nil, service.ErrNotMember
			}

			rec := doJSON(router, http.MethodPatch, "/workspaces/1/name", gin.H{"name": "New"}, true)

			Expect(rec.Code).To(Equal(http.StatusForbidden))
		})

		It("returns the renamed workspace", func() {
			workspaces.renameFn = func(_ context.Context, workspaceID int64, name string, callerID int64) (*model.Workspace, error) {
				Expect(workspaceID).To(Equal(int64(1)))
				Expect(callerID).To(Equal(caller.ID))
				return &model.Workspace{ID: workspaceID, Name: name, Users: []int64{7}, Boards: []int64{}}, nil
			}

			rec := doJSON(router, http.MethodPatch, "/workspaces/1/name", gin.H{"name": "Renamed"}, true)

			Expect(rec.Code).To(Equal(http.StatusOK))
			ws := decodeBody(rec)["workspace"].(map[string]any)
			Expect(ws["name"]).To(Equal("Renamed"))
		})

		It("returns 400 for a non-numeric workspace ID", func() {
			rec := doJSON(router, http.MethodPatch, "/workspaces/abc/name", gin.H{"name": "New"}, true)

			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("AddSelf", func() {
		It("adds the caller, not a body-supplied user", func() {
			workspaces.addUserFn = func(_ context.Context, workspaceID, userID int64) (*model.Workspace, error) {
				Expect(userID).To(Equal(caller.ID))
				return &model.Workspace{ID: workspaceID, Name: "Team", Users: []int64{8, 7}, Boards: []int64{}}, nil
			}

			rec := doJSON(router, http.MethodPatch, "/workspaces/2/users", nil, true)

			Expect(rec.Code).To(Equal(http.StatusOK))
			ws := decodeBody(rec)["workspace"].(map[string]any)
			Expect(ws["users"]).To(ContainElement("7"))
		})
	})

	Describe("RemoveUser", func() {
		It("returns 204 on success", func() {
			workspaces.removeUserFn = func(_ context.Context, workspaceID, userID, callerID int64) (*model.Workspace, error) {
				Expect(workspaceID).To(Equal(int64(2)))
				Expect(userID).To(Equal(int64(8)))
				Expect(callerID).To(Equal(caller.ID))
				return &model.Workspace{ID: 2, Users: []int64{7}}, nil
			}

			rec := doJSON(router, http.MethodDelete, "/workspaces/2/users/8", nil, true)

			Expect(rec.Code).To(Equal(http.StatusNoContent))
		})

		It("returns 404 when the target is not a member", func() {
			workspaces.removeUserFn = func(_ context.Context, _, _, _ int64) (*model.Workspace, error) {
				return nil, service.ErrUserNotMember
			}

			rec := doJSON(router, http.MethodDelete, "/workspaces/2/users/99", nil, true)

			Expect(rec.Code).To(Equal(http.StatusNotFound))
			Expect(decodeBody(rec)["error"]).To(Equal("user is not part of workspace"))
		})

		It("returns 403 when the caller is not a member", func() {
			workspaces.removeUserFn = func(_ context.Context, _, _, _ int64) (*model.Workspace, error) {
				return nil, service.ErrNotMember
			}

			rec := doJSON(router, http.MethodDelete, "/workspaces/2/users/8", nil, true)

			Expect(rec.Code).To(Equal(http.StatusForbidden))
		})
	})

	Describe("Delete", func() {
		It("returns 204 on success", func() {
			workspaces.deleteFn = func(_ context.Context, workspaceID, callerID int64) error {
				Expect(workspaceID).To(Equal(int64(1)))
				Expect(callerID).To(Equal(caller.ID))
				return nil
			}

			rec := doJSON(router, http.MethodDelete, "/workspaces/1", nil, true)

			Expect(rec.Code).To(Equal(http.StatusNoContent))
		})

		It("reports not-found before forbidden for unknown workspaces", func() {
			workspaces.deleteFn = func(_ context.Context, _, _ int64) error {
				return service.ErrWorkspaceNotFound
			}

			rec := doJSON(router, http.MethodDelete, "/workspaces/99", nil, true)

			Expect(rec.Code).To(Equal(http.StatusNotFound))
		})
	})
})
