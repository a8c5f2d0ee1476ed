package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/artpieces/backend/internal/service"
)

func (a *API) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	token, err := a.auth.Login(r.Context(), req.Email, req.Password)
	writeCommand(w, token, err)
}

func (a *API) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	email, err := a.users.Create(r.Context(), service.CreateUserParams{
		Email:     req.Email,
		Name:      req.Name,
		Password:  req.Password,
		Portrait:  req.Portrait,
		Signature: req.Signature,
	})
	writeCommand(w, email, err)
}

func (a *API) handleUpdateUser(w http.ResponseWriter, r *http.Request) {
	var req updateUserRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	err := a.users.Update(r.Context(), service.UpdateUserParams{
		Email:       chi.URLParam(r, "email"),
		Password:    req.Password,
		Name:        req.Name,
		NewPassword: req.NewPassword,
		Portrait:    req.Portrait,
		Signature:   req.Signature,
	})
	writeCommand(w, "OK.", err)
}

func (a *API) handleCreateArtwork(w http.ResponseWriter, r *http.Request) {
	var req createArtworkRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	id, err := a.artworks.Create(r.Context(), service.CreateArtworkParams{
		ID:            req.ID,
		Title:         req.Title,
		Description:   req.Description,
		Creator:       req.Creator,
		Password:      req.Password,
		KeyPhoto:      req.KeyPhoto,
		BelongingRepo: req.BelongingRepo,
		Timestamp:     req.Timestamp,
	})
	writeCommand(w, id, err)
}

func (a *API) handleUpdateArtwork(w http.ResponseWriter, r *http.Request) {
	var req updateArtworkRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	err := a.artworks.Update(r.Context(), service.UpdateArtworkParams{
		ID:          chi.URLParam(r, "id"),
		Creator:     req.Creator,
		Password:    req.Password,
		Title:       req.Title,
		Description: req.Description,
		KeyPhoto:    req.KeyPhoto,
	})
	writeCommand(w, "OK.", err)
}

func (a *API) handleRemoveArtwork(w http.ResponseWriter, r *http.Request) {
	var req removeArtworkRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	err := a.artworks.Remove(r.Context(), service.RemoveArtworkParams{
		ID:       chi.URLParam(r, "id"),
		Creator:  req.Creator,
		Password: req.Password,
	})
	writeCommand(w, "OK.", err)
}

func (a *API) handleCreateRepo(w http.ResponseWriter, r *http.Request) {
	var req createRepoRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	id, err := a.repos.Create(r.Context(), service.CreateRepoParams{
		ID:          req.ID,
		Title:       req.Title,
		Description: req.Description,
		Starter:     req.Starter,
		Password:    req.Password,
		KeyArtwork:  req.KeyArtwork,
		Timestamp:   req.Timestamp,
	})
	writeCommand(w, id, err)
}

func (a *API) handleUpdateRepo(w http.ResponseWriter, r *http.Request) {
	var req updateRepoRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	err := a.repos.Update(r.Context(), service.UpdateRepoParams{
		ID:          chi.URLParam(r, "id"),
		Starter:     req.Starter,
		Password:    req.Password,
		Title:       req.Title,
		Description: req.Description,
	})
	writeCommand(w, "OK.", err)
}

func (a *API) handleRemoveRepo(w http.ResponseWriter, r *http.Request) {
	var req removeRepoRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	err := a.repos.Remove(r.Context(), service.RemoveRepoParams{
		ID:       chi.URLParam(r, "id"),
		Starter:  req.Starter,
		Password: req.Password,
	})
	writeCommand(w, "OK.", err)
}

func (a *API) handleCreateLecture(w http.ResponseWriter, r *http.Request) {
	var req createLectureRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	id, err := a.lectures.Create(r.Context(), service.CreateLectureParams{
		ID:          req.ID,
		Title:       req.Title,
		Description: req.Description,
		Creator:     req.Creator,
		Password:    req.Password,
		KeyPhoto:    req.KeyPhoto,
		Steps:       req.Steps,
		Timestamp:   req.Timestamp,
	})
	writeCommand(w, id, err)
}

func (a *API) handleUpdateLecture(w http.ResponseWriter, r *http.Request) {
	var req updateLectureRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	err := a.lectures.Update(r.Context(), service.UpdateLectureParams{
		ID:          chi.URLParam(r, "id"),
		Creator:     req.Creator,
		Password:    req.Password,
		Title:       req.Title,
		Description: req.Description,
		Steps:       req.Steps,
		KeyPhoto:    req.KeyPhoto,
	})
	writeCommand(w, "OK.", err)
}

func (a *API) handleRemoveLecture(w http.ResponseWriter, r *http.Request) {
	var req removeLectureRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	err := a.lectures.Remove(r.Context(), service.RemoveLectureParams{
		ID:       chi.URLParam(r, "id"),
		Creator:  req.Creator,
		Password: req.Password,
	})
	writeCommand(w, "OK.", err)
}

func (a *API) handleStarRepo(w http.ResponseWriter, r *http.Request) {
	a.handleStar(w, r, a.social.StarRepo)
}

func (a *API) handleUnstarRepo(w http.ResponseWriter, r *http.Request) {
	a.handleStar(w, r, a.social.UnstarRepo)
}

func (a *API) handleStarLecture(w http.ResponseWriter, r *http.Request) {
	a.handleStar(w, r, a.social.StarLecture)
}

func (a *API) handleUnstarLecture(w http.ResponseWriter, r *http.Request) {
	a.handleStar(w, r, a.social.UnstarLecture)
}

func (a *API) handleStar(w http.ResponseWriter, r *http.Request, toggle func(ctx context.Context, user, password, target string) (int, error)) {
	var req starRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	count, err := toggle(r.Context(), req.User, req.Password, chi.URLParam(r, "id"))
	writeCommand(w, count, err)
}

func (a *API) handleFollow(w http.ResponseWriter, r *http.Request) {
	var req followRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	count, err := a.social.Follow(r.Context(), req.Origin, req.Password, chi.URLParam(r, "email"))
	writeCommand(w, count, err)
}

func (a *API) handleUnfollow(w http.ResponseWriter, r *http.Request) {
	var req followRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	count, err := a.social.Unfollow(r.Context(), req.Origin, req.Password, chi.URLParam(r, "email"))
	writeCommand(w, count, err)
}
