package http

import (
	"net/http"

	"kakeibo/internal/core"
)

type createTransactionRequest struct {
	UserID      string      `json:"user_id"`
	Type        string      `json:"transaction_type"`
	Amount      core.Amount `json:"amount"`
	Description string      `json:"description"`
	Category    string      `json:"category"`
	Tags        []string    `json:"tags"`
}

type updateTransactionRequest struct {
	Description *string `json:"description"`
	Category    *string `json:"category"`
}

type tagRequest struct {
	Tag string `json:"tag"`
}

type settlementRequest struct {
	CreditorUserID string `json:"creditor_user_id"`
	DebtorUserID   string `json:"debtor_user_id"`
	Status         string `json:"status"`
}

func (s *Server) handleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	var req createTransactionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	tx := core.NewTransaction(core.UserID(req.UserID), core.TransactionType(req.Type),
		req.Amount, req.Description, core.Category(req.Category))
	for _, tag := range req.Tags {
		tx.AddTag(tag)
	}

	if err := tx.Validate(); err != nil {
		writeDomainError(w, r, err)
		return
	}
	if err := s.transactions.CreateTransaction(r.Context(), tx); err != nil {
		writeDomainError(w, r, err)
		return
	}

	s.invalidateSummaries(tx.UserID)
	writeJSON(w, http.StatusCreated, tx)
}

func (s *Server) handleGetTransaction(w http.ResponseWriter, r *http.Request) {
	tx, err := s.transactions.GetTransaction(r.Context(), core.TransactionID(r.PathValue("transactionID")))
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	if tx == nil {
		writeNotFound(w, "transaction")
		return
	}
	writeJSON(w, http.StatusOK, tx)
}

func (s *Server) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	txs, err := s.transactions.GetTransactions(r.Context(), core.UserID(r.PathValue("userID")))
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	if txs == nil {
		txs = []*core.Transaction{}
	}
	writeJSON(w, http.StatusOK, txs)
}

func (s *Server) handleUpdateTransaction(w http.ResponseWriter, r *http.Request) {
	var req updateTransactionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	tx, err := s.transactions.GetTransaction(r.Context(), core.TransactionID(r.PathValue("transactionID")))
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	if tx == nil {
		writeNotFound(w, "transaction")
		return
	}

	var category *core.Category
	if req.Category != nil {
		c := core.Category(*req.Category)
		category = &c
	}
	tx.Update(req.Description, category)

	if err := tx.Validate(); err != nil {
		writeDomainError(w, r, err)
		return
	}
	if err := s.transactions.UpdateTransaction(r.Context(), tx); err != nil {
		writeDomainError(w, r, err)
		return
	}

	s.invalidateSummaries(tx.UserID)
	writeJSON(w, http.StatusOK, tx)
}

func (s *Server) handleDeleteTransaction(w http.ResponseWriter, r *http.Request) {
	id := core.TransactionID(r.PathValue("transactionID"))

	// Load first so the summary cache of the owner can be invalidated.
	tx, err := s.transactions.GetTransaction(r.Context(), id)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	if tx == nil {
		writeNotFound(w, "transaction")
		return
	}

	if err := s.transactions.DeleteTransaction(r.Context(), id); err != nil {
		writeDomainError(w, r, err)
		return
	}

	s.invalidateSummaries(tx.UserID)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleAddTag(w http.ResponseWriter, r *http.Request) {
	var req tagRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Tag == "" {
		writeError(w, http.StatusBadRequest, "empty tag")
		return
	}

	tx, err := s.transactions.GetTransaction(r.Context(), core.TransactionID(r.PathValue("transactionID")))
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	if tx == nil {
		writeNotFound(w, "transaction")
		return
	}

	tx.AddTag(req.Tag)
	if err := s.transactions.UpdateTransaction(r.Context(), tx); err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tx)
}

func (s *Server) handleRemoveTag(w http.ResponseWriter, r *http.Request) {
	tx, err := s.transactions.GetTransaction(r.Context(), core.TransactionID(r.PathValue("transactionID")))
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	if tx == nil {
		writeNotFound(w, "transaction")
		return
	}

	tx.RemoveTag(r.PathValue("tag"))
	if err := s.transactions.UpdateTransaction(r.Context(), tx); err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tx)
}

// handleSettlement attaches a settlement to the transaction or moves the
// status of an existing one. Status transitions carry no domain rule, the
// boundary just writes what it is told.
func (s *Server) handleSettlement(w http.ResponseWriter, r *http.Request) {
	var req settlementRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	tx, err := s.transactions.GetTransaction(r.Context(), core.TransactionID(r.PathValue("transactionID")))
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	if tx == nil {
		writeNotFound(w, "transaction")
		return
	}

	if tx.Settlement == nil {
		if req.CreditorUserID == "" || req.DebtorUserID == "" {
			writeError(w, http.StatusBadRequest, "creditor_user_id and debtor_user_id are required")
			return
		}
		tx.Settlement = core.NewSettlementInfo(core.UserID(req.CreditorUserID), core.UserID(req.DebtorUserID))
	}
	if req.Status != "" {
		status := core.SettlementStatus(req.Status)
		if !status.IsValid() {
			writeError(w, http.StatusUnprocessableEntity, "invalid settlement status")
			return
		}
		tx.Settlement.Status = status
	}

	if err := s.transactions.UpdateTransaction(r.Context(), tx); err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tx)
}

func (s *Server) invalidateSummaries(userID core.UserID) {
	s.summaryCache.DeletePrefix("summary:" + string(userID) + ":")
}
