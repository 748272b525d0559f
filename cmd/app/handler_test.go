package main

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/sushihentaime/blogora/internal/blogservice"
	"github.com/sushihentaime/blogora/internal/commentservice"
	"github.com/sushihentaime/blogora/internal/common"
	"github.com/sushihentaime/blogora/internal/eventservice"
	"github.com/sushihentaime/blogora/internal/likeservice"
	"github.com/sushihentaime/blogora/internal/projectservice"
	"github.com/sushihentaime/blogora/internal/tagservice"
	"github.com/sushihentaime/blogora/internal/userservice"
)

// setupTestApplication wires the handlers against a real database, mirroring
// the service graph built in main.
func setupTestApplication(t *testing.T) *application {
	db := common.TestDB("file://../../migrations", t)

	users := userservice.NewUserService(db, common.NopMessageProducer{}, "test-secret", "test-pepper", bcrypt.MinCost)
	tags := tagservice.NewTagService(db)
	cache := common.NewCache(5*time.Minute, 10*time.Minute)
	blogs := blogservice.NewBlogService(db, cache, users, tags)

	return &application{
		config:         &Config{},
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		userService:    users,
		tagService:     tags,
		blogService:    blogs,
		commentService: commentservice.NewCommentService(db, users, blogs),
		likeService:    likeservice.NewLikeService(db, users, blogs),
		projectService: projectservice.NewProjectService(db, users),
		eventService:   eventservice.NewEventService(db, users),
	}
}

// requestWithID builds a GET request carrying an id path parameter the way
// the router would.
func requestWithID(id int) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	params := httprouter.Params{{Key: "id", Value: strconv.Itoa(id)}}

	return r.WithContext(context.WithValue(r.Context(), httprouter.ParamsKey, params))
}

func TestGetUserHandlerNotFound(t *testing.T) {
	app := setupTestApplication(t)

	rr := httptest.NewRecorder()
	app.getUserHandler(rr, requestWithID(999999))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "User not found", errorMessage(t, rr))
}

func TestUserRelationHandlersCheckUser(t *testing.T) {
	app := setupTestApplication(t)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, user, err := app.userService.SignUp(ctx, &userservice.SignUpRequest{
		Email:     "relations@example.com",
		Password:  "TestPassword123!",
		FirstName: "Relations",
	})
	assert.NoError(t, err)

	testCases := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{name: "blogs", handler: app.getUserBlogsHandler},
		{name: "comments", handler: app.getUserCommentsHandler},
		{name: "likes", handler: app.getUserLikesHandler},
		{name: "projects", handler: app.getUserProjectsHandler},
		{name: "events", handler: app.getUserEventsHandler},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			tc.handler(rr, requestWithID(user.ID+1000))

			assert.Equal(t, http.StatusNotFound, rr.Code)
			assert.Equal(t, "User not found", errorMessage(t, rr))

			// an existing user with no rows still answers with an empty list
			rr = httptest.NewRecorder()
			tc.handler(rr, requestWithID(user.ID))

			assert.Equal(t, http.StatusOK, rr.Code)
		})
	}
}

func TestBlogRelationHandlersCheckBlog(t *testing.T) {
	app := setupTestApplication(t)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, user, err := app.userService.SignUp(ctx, &userservice.SignUpRequest{
		Email:     "blogger@example.com",
		Password:  "TestPassword123!",
		FirstName: "Blogger",
	})
	assert.NoError(t, err)

	blog, err := app.blogService.CreateBlog(ctx, &blogservice.CreateBlogRequest{
		Title:    "Test Blog",
		Summary:  strings.Repeat("s", 20),
		Content:  strings.Repeat("c", 100),
		Links:    []string{"https://example.com"},
		AuthorID: user.ID,
	})
	assert.NoError(t, err)

	testCases := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{name: "comments", handler: app.getBlogCommentsHandler},
		{name: "likes", handler: app.getBlogLikesHandler},
		{name: "tags", handler: app.getBlogTagsHandler},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			tc.handler(rr, requestWithID(blog.ID+1000))

			assert.Equal(t, http.StatusNotFound, rr.Code)
			assert.Equal(t, "resource not found", errorMessage(t, rr))

			rr = httptest.NewRecorder()
			tc.handler(rr, requestWithID(blog.ID))

			assert.Equal(t, http.StatusOK, rr.Code)
		})
	}
}
