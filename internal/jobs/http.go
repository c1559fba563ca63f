// Copyright (c) 2026 Brewcode. All rights reserved.

package jobs

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/brewcode/community/internal/platform/middleware"
	requestutil "github.com/brewcode/community/internal/platform/request"
	"github.com/brewcode/community/internal/platform/respond"
)

// Handler implements the job board's HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the job board routes. The whole board
// is members-only, same as the original site.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireActive)

	router.Get("/", handler.board)
	router.Post("/posts", handler.createPost)
	router.Get("/posts/{id}", handler.showPost)
	router.Post("/requests", handler.createRequest)

	return router
}

type createPostRequest struct {
	Headline     string `json:"headline"`
	CompanyName  string `json:"company_name"`
	Description  string `json:"description"`
	Category     string `json:"category"`
	InfoURL      string `json:"info_url"`
	ContactEmail string `json:"contact_email"`
	Technologies string `json:"technologies"`
}

type createRequestRequest struct {
	Headline     string `json:"headline"`
	Category     string `json:"category"`
	Technologies string `json:"technologies"`
}

// board handles GET /jobs.
func (handler *Handler) board(writer http.ResponseWriter, request *http.Request) {
	board, err := handler.service.Board(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, board)
}

// createPost handles POST /jobs/posts.
func (handler *Handler) createPost(writer http.ResponseWriter, request *http.Request) {
	var input createPostRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	post, err := handler.service.CreatePost(request.Context(), PostInput{
		Headline:        input.Headline,
		CompanyName:     input.CompanyName,
		Description:     input.Description,
		Category:        input.Category,
		InfoURL:         input.InfoURL,
		ContactEmail:    input.ContactEmail,
		TechnologiesRaw: input.Technologies,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, post)
}

// showPost handles GET /jobs/posts/{id}.
func (handler *Handler) showPost(writer http.ResponseWriter, request *http.Request) {
	post, err := handler.service.GetPost(request.Context(), requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, post)
}

// createRequest handles POST /jobs/requests.
func (handler *Handler) createRequest(writer http.ResponseWriter, request *http.Request) {
	var input createRequestRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	jobRequest, err := handler.service.CreateRequest(request.Context(), RequestInput{
		Headline:        input.Headline,
		Category:        input.Category,
		TechnologiesRaw: input.Technologies,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, jobRequest)
}
