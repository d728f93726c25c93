package http

import (
	"net/http"

	"kakeibo/internal/core"
)

type createGroupRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	OwnerID     string `json:"owner_id"`
}

type updateGroupRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

type memberRequest struct {
	UserID string `json:"user_id"`
}

func (s *Server) handleCreateGroup(w http.ResponseWriter, r *http.Request) {
	var req createGroupRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	group := core.NewGroup(req.Name, req.Description, core.UserID(req.OwnerID))
	if err := group.Validate(); err != nil {
		writeDomainError(w, r, err)
		return
	}
	if err := s.groups.CreateGroup(r.Context(), group); err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, group)
}

func (s *Server) handleGetGroup(w http.ResponseWriter, r *http.Request) {
	group, err := s.groups.GetGroup(r.Context(), core.GroupID(r.PathValue("groupID")))
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	if group == nil {
		writeNotFound(w, "group")
		return
	}
	writeJSON(w, http.StatusOK, group)
}

func (s *Server) handleListGroups(w http.ResponseWriter, r *http.Request) {
	groups, err := s.groups.GetGroups(r.Context(), core.UserID(r.PathValue("userID")))
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	if groups == nil {
		groups = []*core.Group{}
	}
	writeJSON(w, http.StatusOK, groups)
}

func (s *Server) handleUpdateGroup(w http.ResponseWriter, r *http.Request) {
	var req updateGroupRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	group, err := s.groups.GetGroup(r.Context(), core.GroupID(r.PathValue("groupID")))
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	if group == nil {
		writeNotFound(w, "group")
		return
	}

	group.Update(req.Name, req.Description)
	if err := group.Validate(); err != nil {
		writeDomainError(w, r, err)
		return
	}
	if err := s.groups.UpdateGroup(r.Context(), group); err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, group)
}

func (s *Server) handleDeleteGroup(w http.ResponseWriter, r *http.Request) {
	if err := s.groups.DeleteGroup(r.Context(), core.GroupID(r.PathValue("groupID"))); err != nil {
		writeDomainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleAddMember(w http.ResponseWriter, r *http.Request) {
	var req memberRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.UserID == "" {
		writeError(w, http.StatusBadRequest, "user_id is required")
		return
	}

	group, err := s.groups.AddMember(r.Context(), core.GroupID(r.PathValue("groupID")), core.UserID(req.UserID))
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	if group == nil {
		writeNotFound(w, "group")
		return
	}
	writeJSON(w, http.StatusOK, group)
}

func (s *Server) handleRemoveMember(w http.ResponseWriter, r *http.Request) {
	group, err := s.groups.RemoveMember(r.Context(), core.GroupID(r.PathValue("groupID")), core.UserID(r.PathValue("userID")))
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	if group == nil {
		writeNotFound(w, "group")
		return
	}
	writeJSON(w, http.StatusOK, group)
}
