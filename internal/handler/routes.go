package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/artpieces/backend/internal/service"
)

// API bundles the services behind the HTTP surface.
type API struct {
	views    *service.ViewService
	feeds    *service.FeedService
	auth     *service.AuthService
	users    *service.UserService
	artworks *service.ArtworkService
	repos    *service.RepoService
	lectures *service.LectureService
	social   *service.SocialService
}

// NewAPI creates the HTTP API over the given services.
func NewAPI(
	views *service.ViewService,
	feeds *service.FeedService,
	auth *service.AuthService,
	users *service.UserService,
	artworks *service.ArtworkService,
	repos *service.RepoService,
	lectures *service.LectureService,
	social *service.SocialService,
) *API {
	return &API{
		views:    views,
		feeds:    feeds,
		auth:     auth,
		users:    users,
		artworks: artworks,
		repos:    repos,
		lectures: lectures,
		social:   social,
	}
}

// Routes builds the router for the whole API surface.
func (a *API) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", handleHealthz)

	r.Route("/api", func(r chi.Router) {
		r.Post("/login", a.handleLogin)

		r.Method(http.MethodGet, "/me", RequireAuth(a.auth, http.HandlerFunc(a.handleMe)))

		r.Get("/feed/repos", a.handleRepoFeed)
		r.Get("/feed/lectures", a.handleLectureFeed)

		r.Route("/users", func(r chi.Router) {
			r.Post("/", a.handleCreateUser)
			r.Get("/{email}", a.handleGetUser)
			r.Patch("/{email}", a.handleUpdateUser)
			r.Post("/{email}/follow", a.handleFollow)
			r.Delete("/{email}/follow", a.handleUnfollow)
		})

		r.Route("/artworks", func(r chi.Router) {
			r.Post("/", a.handleCreateArtwork)
			r.Get("/{id}", a.handleGetArtwork)
			r.Patch("/{id}", a.handleUpdateArtwork)
			r.Delete("/{id}", a.handleRemoveArtwork)
		})

		r.Route("/repos", func(r chi.Router) {
			r.Post("/", a.handleCreateRepo)
			r.Get("/{id}", a.handleGetRepo)
			r.Patch("/{id}", a.handleUpdateRepo)
			r.Delete("/{id}", a.handleRemoveRepo)
			r.Post("/{id}/star", a.handleStarRepo)
			r.Delete("/{id}/star", a.handleUnstarRepo)
		})

		r.Route("/lectures", func(r chi.Router) {
			r.Post("/", a.handleCreateLecture)
			r.Get("/{id}", a.handleGetLecture)
			r.Patch("/{id}", a.handleUpdateLecture)
			r.Delete("/{id}", a.handleRemoveLecture)
			r.Post("/{id}/star", a.handleStarLecture)
			r.Delete("/{id}/star", a.handleUnstarLecture)
		})
	})

	return r
}
