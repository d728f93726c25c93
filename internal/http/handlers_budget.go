package http

import (
	"net/http"
	"time"

	"kakeibo/internal/core"
)

type createBudgetRequest struct {
	UserID         string      `json:"user_id"`
	Category       string      `json:"category"`
	Amount         core.Amount `json:"amount"`
	Period         string      `json:"period"`
	AlertThreshold float64     `json:"alert_threshold"`
}

type updateBudgetRequest struct {
	Category       *string      `json:"category"`
	Amount         *core.Amount `json:"amount"`
	Period         *string      `json:"period"`
	AlertThreshold *float64     `json:"alert_threshold"`
}

func (s *Server) handleCreateBudget(w http.ResponseWriter, r *http.Request) {
	var req createBudgetRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	budget := core.NewBudget(core.UserID(req.UserID), core.Category(req.Category),
		req.Amount, core.BudgetPeriod(req.Period), req.AlertThreshold)

	if err := budget.Validate(); err != nil {
		writeDomainError(w, r, err)
		return
	}
	if err := s.budgets.CreateBudget(r.Context(), budget); err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, budget)
}

func (s *Server) handleGetBudget(w http.ResponseWriter, r *http.Request) {
	budget, err := s.budgets.GetBudget(r.Context(), r.PathValue("budgetID"))
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	if budget == nil {
		writeNotFound(w, "budget")
		return
	}
	writeJSON(w, http.StatusOK, budget)
}

func (s *Server) handleListBudgets(w http.ResponseWriter, r *http.Request) {
	budgets, err := s.budgets.GetBudgets(r.Context(), core.UserID(r.PathValue("userID")))
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	if budgets == nil {
		budgets = []*core.Budget{}
	}
	writeJSON(w, http.StatusOK, budgets)
}

func (s *Server) handleUpdateBudget(w http.ResponseWriter, r *http.Request) {
	var req updateBudgetRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	budget, err := s.budgets.GetBudget(r.Context(), r.PathValue("budgetID"))
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	if budget == nil {
		writeNotFound(w, "budget")
		return
	}

	if req.Category != nil {
		budget.Category = core.Category(*req.Category)
	}
	if req.Amount != nil {
		budget.Amount = *req.Amount
	}
	if req.Period != nil {
		budget.Period = core.BudgetPeriod(*req.Period)
	}
	if req.AlertThreshold != nil {
		budget.AlertThreshold = *req.AlertThreshold
	}
	budget.UpdatedAt = time.Now().UTC()

	if err := budget.Validate(); err != nil {
		writeDomainError(w, r, err)
		return
	}
	if err := s.budgets.UpdateBudget(r.Context(), budget); err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, budget)
}

func (s *Server) handleDeleteBudget(w http.ResponseWriter, r *http.Request) {
	if err := s.budgets.DeleteBudget(r.Context(), r.PathValue("budgetID")); err != nil {
		writeDomainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleBudgetStatus reports usage and alert state for the budget's current
// period.
func (s *Server) handleBudgetStatus(w http.ResponseWriter, r *http.Request) {
	status, err := s.budgets.GetBudgetStatus(r.Context(), r.PathValue("budgetID"), time.Now().UTC())
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	if status == nil || status.Budget.UserID != core.UserID(r.PathValue("userID")) {
		writeNotFound(w, "budget")
		return
	}
	writeJSON(w, http.StatusOK, status)
}
