package http

import (
	"fmt"
	"net/http"

	"kakeibo/internal/core"
)

// handleSummary aggregates one month of a user's spending. The result is
// cached per user, month and currency; transaction writes drop the user's
// entries.
func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	userID := core.UserID(r.PathValue("userID"))
	params := ParseMonthParams(r.URL.Query())

	currency := s.defaultCurrency
	profile, err := s.users.GetUser(r.Context(), userID)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	if profile != nil {
		currency = profile.Currency
	}

	key := fmt.Sprintf("summary:%s:%d-%02d:%s", userID, params.Year, params.Month, currency)
	if cached, ok := s.summaryCache.Get(key); ok {
		writeJSON(w, http.StatusOK, cached)
		return
	}

	txs, err := s.transactions.GetTransactions(r.Context(), userID)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	summary := core.Summarize(txs, params.Year, params.Month, currency)
	s.summaryCache.Set(key, &summary)
	writeJSON(w, http.StatusOK, &summary)
}

func (s *Server) handleListAlerts(w http.ResponseWriter, r *http.Request) {
	alerts, err := s.alerts.FindByUserID(r.Context(), core.UserID(r.PathValue("userID")))
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	if alerts == nil {
		alerts = []*core.BudgetAlert{}
	}
	writeJSON(w, http.StatusOK, alerts)
}
