package handler_test

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"taskhive.app/api/internal/http/handler"
	"taskhive.app/api/internal/http/middleware"
	"taskhive.app/api/internal/model"
	"taskhive.app/api/internal/service"
)

var _ = Describe("AuthHandler", func() {
	var (
		auth   *mockAuthService
		router *gin.Engine
	)

	newRouter := func() {
		h := handler.NewAuthHandler(auth, testCookieName, 3600, false)
		router = gin.New()
		router.POST("/auth/login", h.Login)

		authed := router.Group("/auth", middleware.RequireAuth(auth, testCookieName))
		authed.POST("/logout", h.Logout)
		authed.GET("/me", h.Me)
	}

	BeforeEach(func() {
		auth = &mockAuthService{}
		newRouter()
	})

	Describe("Login", func() {
		It("returns 201 and sets the session cookie", func() {
			auth.loginFn = func(_ context.Context, email, password string) (*model.User, *model.Session, error) {
				Expect(email).To(Equal("ada@example.com"))
				user := &model.User{ID: 42, FullName: "Ada Lovelace", Email: email}
				session := &model.Session{ID: 7777, UserID: 42, ExpiresAt: time.Now().Add(time.Hour)}
				return user, session, nil
			}

			rec := doJSON(router, http.MethodPost, "/auth/login", gin.H{
				"email":    "ada@example.com",
				"password": "hunter22",
			}, false)

			Expect(rec.Code).To(Equal(http.StatusCreated))

			cookies := rec.Result().Cookies()
			Expect(cookies).To(HaveLen(1))
			Expect(cookies[0].Name).To(Equal(testCookieName))
			Expect(cookies[0].Value).To(Equal("7777"))
			Expect(cookies[0].HttpOnly).To(BeTrue())

			user := decodeBody(rec)["user"].(map[string]any)
			Expect(user["id"]).To(Equal("42"))
			Expect(user).NotTo(HaveKey("password"))
		})

		It("returns one collapsed 401 for bad credentials", func() {
			auth.loginFn = func(_ context.Context, _, _ string) (*model.User, *model.Session, error) {
				return nil, nil, service.ErrInvalidCredentials
			}

			rec := doJSON(router, http.MethodPost, "/auth/login", gin.H{
				"email":    "nobody@example.com",
				"password": "wrong",
			}, false)

			Expect(rec.Code).To(Equal(http.StatusUnauthorized))
			Expect(decodeBody(rec)["error"]).To(Equal("incorrect email or password"))
		})

		It("returns 400 for missing login details", func() {
			auth.loginFn = func(_ context.Context, _, _ string) (*model.User, *model.Session, error) {
				return nil, nil, service.ErrMissingField
			}

			rec := doJSON(router, http.MethodPost, "/auth/login", gin.H{"email": "ada@example.com"}, false)

			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("Logout", func() {
		BeforeEach(func() {
			auth.validateSessionFn = func(_ context.Context, _ int64) (*model.User, error) {
				return &model.User{ID: 42}, nil
			}
		})

		It("deletes the session and expires the cookie", func() {
			rec := doJSON(router, http.MethodPost, "/auth/logout", nil, true)

			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(auth.logoutCalls).To(Equal([]int64{testSessionID}))

			cookies := rec.Result().Cookies()
			Expect(cookies).To(HaveLen(1))
			Expect(cookies[0].Value).To(BeEmpty())
			Expect(cookies[0].MaxAge).To(BeNumerically("<", 0))
		})

		It("rejects requests without a session cookie", func() {
			rec := doJSON(router, http.MethodPost, "/auth/logout", nil, false)

			Expect(rec.Code).To(Equal(http.StatusUnauthorized))
			Expect(auth.logoutCalls).To(BeEmpty())
		})
	})

	Describe("Me", func() {
		It("returns the authenticated user", func() {
			auth.validateSessionFn = func(_ context.Context, _ int64) (*model.User, error) {
				return &model.User{ID: 42, FullName: "Ada Lovelace", Email: "ada@example.com"}, nil
			}

			rec := doJSON(router, http.MethodGet, "/auth/me", nil, true)

			Expect(rec.Code).To(Equal(http.StatusOK))
			user := decodeBody(rec)["user"].(map[string]any)
			Expect(user["full_name"]).To(Equal("Ada Lovelace"))
		})

		It("returns 401 for an expired session", func() {
			auth.validateSessionFn = func(_ context.Context, _ int64) (*model.User, error) {
				return nil, service.ErrSessionExpired
			}

			rec := doJSON(router, http.MethodGet, "/auth/me", nil, true)

			Expect(rec.Code).To(Equal(http.StatusUnauthorized))
			Expect(decodeBody(rec)["error"]).To(Equal("session expired"))
		})
	})
})
