package http

import (
	"net/http"
	"strings"

	"kakeibo/internal/core"
)

type createUserRequest struct {
	UserID      string  `json:"user_id"`
	DisplayName *string `json:"display_name"`
	Currency    *string `json:"currency"`
	Timezone    *string `json:"timezone"`
}

type updateUserRequest struct {
	DisplayName *string `json:"display_name"`
	Currency    *string `json:"currency"`
	Timezone    *string `json:"timezone"`
}

func (s *Server) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if strings.TrimSpace(req.UserID) == "" {
		writeDomainError(w, r, core.ErrEmptyUserID)
		return
	}

	existing, err := s.users.GetUser(r.Context(), core.UserID(req.UserID))
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	if existing != nil {
		writeError(w, http.StatusConflict, "user already exists")
		return
	}

	profile := core.NewUserProfile(core.UserID(req.UserID))
	if req.DisplayName != nil {
		profile.DisplayName = req.DisplayName
	}
	if req.Currency != nil {
		profile.Currency = *req.Currency
	}
	if req.Timezone != nil {
		profile.Timezone = *req.Timezone
	}

	if err := s.users.CreateUser(r.Context(), profile); err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, profile)
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	profile, err := s.users.GetUser(r.Context(), core.UserID(r.PathValue("userID")))
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	if profile == nil {
		writeNotFound(w, "user")
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (s *Server) handleUpdateUser(w http.ResponseWriter, r *http.Request) {
	var req updateUserRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	profile, err := s.users.GetUser(r.Context(), core.UserID(r.PathValue("userID")))
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	if profile == nil {
		writeNotFound(w, "user")
		return
	}

	profile.Update(req.DisplayName, req.Currency, req.Timezone)
	if err := s.users.UpdateUser(r.Context(), profile); err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (s *Server) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	if err := s.users.DeleteUser(r.Context(), core.UserID(r.PathValue("userID"))); err != nil {
		writeDomainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
