// Copyright (c) 2026 Brewcode. All rights reserved.

package people

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/brewcode/community/internal/platform/middleware"
	requestutil "github.com/brewcode/community/internal/platform/request"
	"github.com/brewcode/community/internal/platform/respond"
	"github.com/brewcode/community/pkg/pagination"
)

// Handler implements the directory's HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the directory routes.
//
// # Endpoints
//
// The listing is public; everything else sits behind the active-member
// gate, matching the original site where profiles were members-only.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// Public
	router.Get("/", handler.list)

	// Active members only
	router.Group(func(member chi.Router) {
		member.Use(middleware.RequireActive)

		member.Post("/", handler.create)
		member.Get("/{slug}", handler.show)
		member.Patch("/{slug}", handler.update)
		member.Post("/{slug}/projects", handler.attachProject)
		member.Post("/{slug}/activate", handler.activate)
		member.Get("/github/{handle}/projects", handler.githubProjects)
	})

	return router
}

// # Request Payloads

type createPersonRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	IRC         string `json:"irc"`
	TwitterNick string `json:"twitter_nick"`
	GitHubNick  string `json:"github_nick"`
	Bio         string `json:"bio"`
}

type updatePersonRequest struct {
	Name        *string `json:"name"`
	Email       *string `json:"email"`
	IRC         *string `json:"irc"`
	TwitterNick *string `json:"twitter_nick"`
	GitHubNick  *string `json:"github_nick"`
	Bio         *string `json:"bio"`
	// SkillsRaw is the freeform comma-separated skills string from the
	// edit form; it replaces the whole language list when supplied.
	SkillsRaw *string `json:"skills"`
}

type attachProjectRequest struct {
	Name        string `json:"name"`
	URL         string `json:"project_url"`
	Description string `json:"description"`
}

// list handles GET /people.
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	persons, total, err := handler.service.List(request.Context(), paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, persons, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

// show handles GET /people/{slug}.
func (handler *Handler) show(writer http.ResponseWriter, request *http.Request) {
	person, err := handler.service.GetBySlug(request.Context(), requestutil.Param(request, "slug"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, person)
}

// create handles POST /people.
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var input createPersonRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	person, err := handler.service.Create(request.Context(), CreateInput{
		Name:        input.Name,
		Email:       input.Email,
		IRC:         input.IRC,
		TwitterNick: input.TwitterNick,
		GitHubNick:  input.GitHubNick,
		Bio:         input.Bio,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, person)
}

// update handles PATCH /people/{slug}.
func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	var input updatePersonRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	person, err := handler.service.UpdateProfile(request.Context(), requestutil.Param(request, "slug"), UpdateInput{
		Name:        input.Name,
		Email:       input.Email,
		IRC:         input.IRC,
		TwitterNick: input.TwitterNick,
		GitHubNick:  input.GitHubNick,
		Bio:         input.Bio,
		SkillsRaw:   input.SkillsRaw,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, person)
}

// attachProject handles POST /people/{slug}/projects.
func (handler *Handler) attachProject(writer http.ResponseWriter, request *http.Request) {
	var input attachProjectRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	person, err := handler.service.AttachProject(request.Context(), requestutil.Param(request, "slug"), Project{
		Name:        input.Name,
		URL:         input.URL,
		Description: input.Description,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, person)
}

// activate handles POST /people/{slug}/activate.
func (handler *Handler) activate(writer http.ResponseWriter, request *http.Request) {
	person, err := handler.service.Activate(request.Context(), requestutil.Param(request, "slug"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, person)
}

// githubProjects handles GET /people/github/{handle}/projects.
func (handler *Handler) githubProjects(writer http.ResponseWriter, request *http.Request) {
	projects, err := handler.service.GitHubProjects(request.Context(), requestutil.Param(request, "handle"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, projects)
}
