package main

import (
	"errors"
	"net/http"

	"github.com/sushihentaime/blogora/internal/common"
	"github.com/sushihentaime/blogora/internal/likeservice"
)

func (app *application) createLikeHandler(w http.ResponseWriter, r *http.Request) {
	var req likeservice.CreateLikeRequest
	if err := app.parseJSON(w, r, &req); err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	like, err := app.likeService.CreateLike(r.Context(), &req)
	if err != nil {
		switch {
		case common.IsDomainError(err):
			app.badRequestErrorResponse(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusCreated, envelope{"like": like}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// deleteLikeHandler authorizes against the token claims, so only the user who
// created the like can remove it.
func (app *application) deleteLikeHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.notFoundErrorResponse(w, r)
		return
	}

	claims := app.getAuthContext(r)
	if claims == nil {
		app.unAuthorizedErrorResponse(w, r)
		return
	}

	like, err := app.likeService.DeleteLike(r.Context(), id, claims.UserID)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrRecordNotFound):
			app.notFoundErrorResponse(w, r)
		case errors.Is(err, likeservice.ErrNotLikeOwner):
			app.writeErrorResponse(w, r, http.StatusUnauthorized, err.Error())
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"like": like}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
