package main

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

func (app *application) routes() http.Handler {
	router := httprouter.New()

	router.NotFound = http.HandlerFunc(app.notFoundErrorResponse)
	router.MethodNotAllowed = http.HandlerFunc(app.methodNotAllowedErrorResponse)

	router.HandlerFunc(http.MethodGet, "/health", app.healthCheckHandler)

	// user service
	router.HandlerFunc(http.MethodPost, "/users/sign-up", app.signUpUserHandler)
	router.HandlerFunc(http.MethodPost, "/users/login", app.loginUserHandler)
	router.HandlerFunc(http.MethodGet, "/users", app.requireAdmin(app.getUsersHandler))
	router.HandlerFunc(http.MethodGet, "/users/:id", app.requireAuth(app.getUserHandler))
	router.HandlerFunc(http.MethodPut, "/users/:id", app.requireAuth(app.updateUserHandler))
	router.HandlerFunc(http.MethodDelete, "/users/:id", app.requireAuth(app.deleteUserHandler))
	router.HandlerFunc(http.MethodPut, "/users/:id/promote", app.requireAdmin(app.promoteUserHandler))
	router.HandlerFunc(http.MethodPut, "/users/:id/demote", app.requireAdmin(app.demoteUserHandler))
	router.HandlerFunc(http.MethodGet, "/users/:id/blogs", app.requireAuth(app.getUserBlogsHandler))
	router.HandlerFunc(http.MethodGet, "/users/:id/comments", app.requireAuth(app.getUserCommentsHandler))
	router.HandlerFunc(http.MethodGet, "/users/:id/likes", app.requireAuth(app.getUserLikesHandler))
	router.HandlerFunc(http.MethodGet, "/users/:id/projects", app.requireAuth(app.getUserProjectsHandler))
	router.HandlerFunc(http.MethodGet, "/users/:id/events", app.requireAuth(app.getUserEventsHandler))

	// blog service
	router.HandlerFunc(http.MethodGet, "/blogs", app.requireAuth(app.getAllBlogsHandler))
	router.HandlerFunc(http.MethodPost, "/blogs", app.requireAuth(app.createBlogHandler))
	router.HandlerFunc(http.MethodGet, "/blogs/get-all/approved", app.requireAuth(app.getApprovedBlogsHandler))
	router.HandlerFunc(http.MethodGet, "/blogs/get-all/unapproved", app.requireAuth(app.getUnapprovedBlogsHandler))
	router.HandlerFunc(http.MethodGet, "/blogs/:id", app.requireAuth(app.getBlogHandler))
	router.HandlerFunc(http.MethodPut, "/blogs/:id", app.requireAuth(app.updateBlogHandler))
	router.HandlerFunc(http.MethodDelete, "/blogs/:id", app.requireAuth(app.deleteBlogHandler))
	router.HandlerFunc(http.MethodPut, "/blogs/:id/approve", app.requireAdmin(app.approveBlogHandler))
	router.HandlerFunc(http.MethodPut, "/blogs/:id/unapprove", app.requireAdmin(app.unapproveBlogHandler))
	router.HandlerFunc(http.MethodPut, "/blogs/:id/link-tags", app.requireAuth(app.linkBlogTagsHandler))
	router.HandlerFunc(http.MethodPut, "/blogs/:id/link-update", app.requireAuth(app.appendBlogLinkHandler))
	router.HandlerFunc(http.MethodGet, "/blogs/:id/comments", app.requireAuth(app.getBlogCommentsHandler))
	router.HandlerFunc(http.MethodGet, "/blogs/:id/tags", app.requireAuth(app.getBlogTagsHandler))
	router.HandlerFunc(http.MethodGet, "/blogs/:id/likes", app.requireAuth(app.getBlogLikesHandler))

	// comment service
	router.HandlerFunc(http.MethodPost, "/comments", app.requireAuth(app.createCommentHandler))
	router.HandlerFunc(http.MethodGet, "/comments/:id", app.requireAuth(app.getCommentHandler))
	router.HandlerFunc(http.MethodPut, "/comments/:id", app.requireAuth(app.updateCommentHandler))
	router.HandlerFunc(http.MethodDelete, "/comments/:id", app.requireAuth(app.deleteCommentHandler))

	// like service
	router.HandlerFunc(http.MethodPost, "/likes", app.requireAuth(app.createLikeHandler))
	router.HandlerFunc(http.MethodDelete, "/likes/:id", app.requireAuth(app.deleteLikeHandler))

	// tag service
	router.HandlerFunc(http.MethodGet, "/tags", app.requireAuth(app.getTagsHandler))
	router.HandlerFunc(http.MethodGet, "/tags/:id", app.requireAuth(app.getTagHandler))
	router.HandlerFunc(http.MethodPost, "/tags", app.requireAdmin(app.createTagHandler))
	router.HandlerFunc(http.MethodPut, "/tags/:id", app.requireAdmin(app.updateTagHandler))
	router.HandlerFunc(http.MethodDelete, "/tags/:id", app.requireAdmin(app.deleteTagHandler))

	// project service
	router.HandlerFunc(http.MethodGet, "/projects", app.requireAuth(app.getProjectsHandler))
	router.HandlerFunc(http.MethodPost, "/projects", app.requireAuth(app.createProjectHandler))
	router.HandlerFunc(http.MethodGet, "/projects/:id", app.requireAuth(app.getProjectHandler))
	router.HandlerFunc(http.MethodPut, "/projects/:id", app.requireAuth(app.updateProjectHandler))
	router.HandlerFunc(http.MethodDelete, "/projects/:id", app.requireAuth(app.deleteProjectHandler))
	router.HandlerFunc(http.MethodPut, "/projects/:id/update-signatures", app.requireAuth(app.addProjectSignatureHandler))

	// event service
	router.HandlerFunc(http.MethodGet, "/events", app.requireAuth(app.getEventsHandler))
	router.HandlerFunc(http.MethodPost, "/events", app.requireAuth(app.createEventHandler))
	router.HandlerFunc(http.MethodGet, "/events/:id", app.requireAuth(app.getEventHandler))
	router.HandlerFunc(http.MethodPut, "/events/:id", app.requireAuth(app.updateEventHandler))
	router.HandlerFunc(http.MethodDelete, "/events/:id", app.requireAuth(app.deleteEventHandler))

	return app.recoverPanic(app.logRequest(app.rateLimit(app.enableCORS(router))))
}
