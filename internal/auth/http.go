// Copyright (c) 2026 Brewcode. All rights reserved.

package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/brewcode/community/internal/platform/request"
	"github.com/brewcode/community/internal/platform/respond"
)

// Handler implements the authentication HTTP endpoints.
type Handler struct {
	authService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{authService: service}
}

// Routes returns a [chi.Router] configured with the authentication routes.
//
// # Endpoints
//   - POST /register             : Local signup, returns tokens.
//   - POST /login                : Local login, returns tokens.
//   - POST /refresh              : Rotates the refresh token.
//   - POST /logout               : Revokes the session.
//   - GET  /{provider}/login     : Redirects to the identity provider.
//   - GET  /{provider}/callback  : Completes the OAuth flow.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/register", handler.register)
	router.Post("/login", handler.login)
	router.Post("/refresh", handler.refresh)
	router.Post("/logout", handler.logout)

	router.Get("/{provider}/login", handler.beginOAuth)
	router.Get("/{provider}/callback", handler.oauthCallback)

	return router
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// register handles POST /api/v1/auth/register.
func (handler *Handler) register(writer http.ResponseWriter, request *http.Request) {
	var input registerRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	session, err := handler.authService.Register(request.Context(), RegisterInput{
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, session)
}

// login handles POST /api/v1/auth/login.
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var input loginRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	session, err := handler.authService.Login(request.Context(), input.Email, input.Password)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, session)
}

// refresh handles POST /api/v1/auth/refresh.
func (handler *Handler) refresh(writer http.ResponseWriter, request *http.Request) {
	var input refreshRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	session, err := handler.authService.RefreshSession(request.Context(), input.RefreshToken)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, session)
}

// logout handles POST /api/v1/auth/logout.
func (handler *Handler) logout(writer http.ResponseWriter, request *http.Request) {
	var input refreshRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.authService.Logout(request.Context(), input.RefreshToken); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

// beginOAuth handles GET /api/v1/auth/{provider}/login.
func (handler *Handler) beginOAuth(writer http.ResponseWriter, request *http.Request) {
	authorizationURL, err := handler.authService.BeginLogin(request.Context(), requestutil.Param(request, "provider"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Redirect(writer, request, authorizationURL)
}

// oauthCallback handles GET /api/v1/auth/{provider}/callback.
func (handler *Handler) oauthCallback(writer http.ResponseWriter, request *http.Request) {
	query := request.URL.Query()

	session, err := handler.authService.CompleteLogin(
		request.Context(),
		requestutil.Param(request, "provider"),
		query.Get("state"),
		query.Get("code"),
	)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, session)
}
