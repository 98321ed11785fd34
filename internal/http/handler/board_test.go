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

var _ = Describe("BoardHandler", func() {
	var (
		boards *mockBoardService
		router *gin.Engine
	)

	caller := &model.User{ID: 7, FullName: "Ada Lovelace", Email: "ada@example.com"}

	BeforeEach(func() {
		boards = &mockBoardService{}

		h := handler.NewBoardHandler(boards)
		engine, group := authedRouter(caller)
		b := group.Group("/boards")
		b.POST("", h.Create)
		b.GET("/:board_id", h.Get)
		b.POST("/:board_id/lists", h.AddList)
		b.POST("/:board_id/labels", h.AddLabel)
		router = engine
	})

	Describe("Create", func() {
		It("creates a board in the given workspace", func() {
			boards.createFn = func(_ context.Context, name string, workspaceID, callerID int64) (*model.Board, error) {
				Expect(workspaceID).To(Equal(int64(2)))
				Expect(callerID).To(Equal(caller.ID))
				return &model.Board{
					ID:          5,
					Name:        name,
					WorkspaceID: workspaceID,
					Labels:      []model.Label{},
					Lists:       []model.List{},
				}, nil
			}

			rec := doJSON(router, http.MethodPost, "/boards", gin.H{
				"name":         "Roadmap",
				"workspace_id": "2",
			}, true)

			Expect(rec.Code).To(Equal(http.StatusCreated))
			board := decodeBody(rec)["board"].(map[string]any)
			Expect(board["id"]).To(Equal("5"))
			Expect(board["workspace"]).To(Equal("2"))
			Expect(board["labels"]).To(Equal([]any{}))
			Expect(board["lists"]).To(Equal([]any{}))
		})

		It("returns 404 for an unknown workspace", func() {
			boards.createFn = func(_ context.Context, _ string, _, _ int64) (*model.Board, error) {
				return nil, service.ErrWorkspaceNotFound
			}

			rec := doJSON(router, http.MethodPost, "/boards", gin.H{
				"name":         "Roadmap",
				"workspace_id": "99",
			}, true)

			Expect(rec.Code).To(Equal(http.StatusNotFound))
		})

		It("returns 403 for a non-member of the workspace", func() {
			boards.createFn = func(_ context.Context, _ string, _, _ int64) (*model.Board, error) {
				return nil, service.ErrNotMember
			}

			rec := doJSON(router, http.MethodPost, "/boards", gin.H{
				"name":         "Roadmap",
				"workspace_id": "2",
			}, true)

			Expect(rec.Code).To(Equal(http.StatusForbidden))
		})

		It("returns 400 for a non-numeric workspace ID", func() {
			rec := doJSON(router, http.MethodPost, "/boards", gin.H{
				"name":         "Roadmap",
				"workspace_id": "abc",
			}, true)

			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("Get", func() {
		It("returns 403 for members outside the owning workspace", func() {
			boards.getByIDFn = func(_ context.Context, _, _ int64) (*model.Board, error) {
				return nil, service.ErrNotMember
			}

			rec := doJSON(router, http.MethodGet, "/boards/5", nil, true)

			Expect(rec.Code).To(Equal(http.StatusForbidden))
		})

		It("returns 404 for an unknown board", func() {
			boards.getByIDFn = func(_ context.Context, _, _ int64) (*model.Board, error) {
				return nil, service.ErrBoardNotFound
			}

			rec := doJSON(router, http.MethodGet, "/boards/99", nil, true)

			Expect(rec.Code).To(Equal(http.StatusNotFound))
			Expect(decodeBody(rec)["error"]).To(Equal("board matching ID not found"))
		})
	})

	Describe("AddList", func() {
		It("returns the full board with the appended list", func() {
			boards.addListFn = func(_ context.Context, boardID int64, header string, callerID int64) (*model.Board, error) {
				Expect(boardID).To(Equal(int64(5)))
				Expect(callerID).To(Equal(caller.ID))
				return &model.Board{
					ID:          boardID,
					Name:        "Roadmap",
					WorkspaceID: 2,
					Labels:      []model.Label{},
					Lists:       []model.List{{ID: 11, Header: header, Cards: []model.Card{}}},
				}, nil
			}

			rec := doJSON(router, http.MethodPost, "/boards/5/lists", gin.H{"header": "Todo"}, true)

			Expect(rec.Code).To(Equal(http.StatusOK))
			board := decodeBody(rec)["board"].(map[string]any)
			lists := board["lists"].([]any)
			Expect(lists).To(HaveLen(1))
			list := lists[0].(map[string]any)
			Expect(list["header"]).To(Equal("Todo"))
			Expect(list["cards"]).To(Equal([]any{}))
		})

		It("returns 400 for a missing header", func() {
			boards.addListFn = func(_ context.Context, _ int64, _ string, _ int64) (*model.Board, error) {
				return nil, service.ErrMissingField
			}

			rec := doJSON(router, http.MethodPost, "/boards/5/lists", gin.H{}, true)

			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("AddLabel", func() {
		It("returns the full board with the appended label", func() {
			boards.addLabelFn = func(_ context.Context, boardID int64, colour, title string, callerID int64) (*model.Board, error) {
				Expect(colour).To(Equal("red"))
				Expect(title).To(Equal("urgent"))
				return &model.Board{
					ID:          boardID,
					Name:        "Roadmap",
					WorkspaceID: 2,
					Labels:      []model.Label{{ID: 13, Colour: colour, Title: title}},
					Lists:       []model.List{},
				}, nil
			}

			rec := doJSON(router, http.MethodPost, "/boards/5/labels", gin.H{
				"colour": "red",
				"title":  "urgent",
			}, true)

			Expect(rec.Code).To(Equal(http.StatusOK))
			board := decodeBody(rec)["board"].(map[string]any)
			labels := board["labels"].([]any)
			Expect(labels).To(HaveLen(1))
			Expect(labels[0].(map[string]any)["colour"]).To(Equal("red"))
		})

		It("returns 404 for an unknown board", func() {
			boards.addLabelFn = func(_ context.Context, _ int64, _, _ string, _ int64) (*model.Board, error) {
				return nil, service.ErrBoardNotFound
			}

			rec := doJSON(router, http.MethodPost, "/boards/99/labels", gin.H{
				"colour": "red",
				"title":  "urgent",
			}, true)

			Expect(rec.Code).To(Equal(http.StatusNotFound))
		})
	})
})
