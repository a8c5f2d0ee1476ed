package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/artpieces/backend/internal/domain"
	"github.com/artpieces/backend/internal/service"
)

func (a *API) handleGetArtwork(w http.ResponseWriter, r *http.Request) {
	view, err := a.views.Artwork(r.Context(), chi.URLParam(r, "id"))
	a.writeView(w, view, err)
}

func (a *API) handleGetRepo(w http.ResponseWriter, r *http.Request) {
	view, err := a.views.Repo(r.Context(), chi.URLParam(r, "id"))
	a.writeView(w, view, err)
}

func (a *API) handleGetLecture(w http.ResponseWriter, r *http.Request) {
	view, err := a.views.Lecture(r.Context(), chi.URLParam(r, "id"))
	a.writeView(w, view, err)
}

func (a *API) handleGetUser(w http.ResponseWriter, r *http.Request) {
	view, err := a.views.User(r.Context(), chi.URLParam(r, "email"))
	a.writeView(w, view, err)
}

// handleMe resolves the authenticated user's own profile from the
// session token.
func (a *API) handleMe(w http.ResponseWriter, r *http.Request) {
	email := EmailFromContext(r.Context())
	if email == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	view, err := a.views.User(r.Context(), email)
	a.writeView(w, view, err)
}

func (a *API) handleRepoFeed(w http.ResponseWriter, r *http.Request) {
	cursor, dir, ok := feedParams(w, r)
	if !ok {
		return
	}
	items, err := a.feeds.Repos(r.Context(), cursor, dir)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (a *API) handleLectureFeed(w http.ResponseWriter, r *http.Request) {
	cursor, dir, ok := feedParams(w, r)
	if !ok {
		return
	}
	items, err := a.feeds.Lectures(r.Context(), cursor, dir)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// feedParams parses the cursor and direction query parameters. An
// absent cursor defaults to the epoch for the initial (newer) load;
// extension requires an explicit cursor.
func feedParams(w http.ResponseWriter, r *http.Request) (time.Time, service.Direction, bool) {
	dir := service.Newer
	switch r.URL.Query().Get("direction") {
	case "", string(service.Newer):
	case string(service.Older):
		dir = service.Older
	default:
		writeError(w, http.StatusBadRequest, "direction must be newer or older")
		return time.Time{}, dir, false
	}

	raw := r.URL.Query().Get("cursor")
	if raw == "" {
		if dir == service.Older {
			writeError(w, http.StatusBadRequest, "cursor is required for direction=older")
			return time.Time{}, dir, false
		}
		return time.UnixMilli(0), dir, true
	}

	cursor, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, "cursor must be RFC 3339")
		return time.Time{}, dir, false
	}
	return cursor, dir, true
}

func (a *API) writeView(w http.ResponseWriter, view any, err error) {
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, view)
}
