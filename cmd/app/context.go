package main

import (
	"context"
	"net/http"

	"github.com/sushihentaime/blogora/internal/userservice"
)

type contextKey string

const authContextKey = contextKey("auth")

func (app *application) createAuthContext(r *http.Request, claims *userservice.Claims) *http.Request {
	ctx := context.WithValue(r.Context(), authContextKey, claims)
	return r.WithContext(ctx)
}

func (app *application) getAuthContext(r *http.Request) *userservice.Claims {
	claims, ok := r.Context().Value(authContextKey).(*userservice.Claims)
	if !ok {
		return nil
	}
	return claims
}
