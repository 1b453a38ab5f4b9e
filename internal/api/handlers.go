package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/daykeep/daykeep/internal/domain"
)

// ─── Session ────────────────────────────────────────────────────────────────

type loginRequest struct {
	Username string `json:"username"`
}

func (s *Server) handleWhoami(w http.ResponseWriter, r *http.Request) {
	username, err := s.session.CurrentUser()
	if err != nil {
		writeError(w, err)
		return
	}
	writeResult(w, map[string]interface{}{"username": username})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, domain.ErrMissingUsername)
		return
	}
	if err := s.session.Login(req.Username); err != nil {
		writeError(w, err)
		return
	}
	writeResult(w, map[string]interface{}{"username": req.Username})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if err := s.session.Logout(); err != nil {
		writeError(w, err)
		return
	}
	writeResult(w, nil)
}

// ─── Engagement ─────────────────────────────────────────────────────────────

func (s *Server) handleTap(w http.ResponseWriter, r *http.Request) {
	res, err := s.engagement.RecordEvent()
	if err != nil {
		writeError(w, err)
		return
	}
	writeResult(w, map[string]interface{}{
		"cumulative_score": res.CumulativeScore,
		"today_events":     res.TodayEvents,
		"continuous_days":  res.ContinuousDays,
		"new_achievements": res.NewAchievements,
	})
}

func (s *Server) handleEngagementSummary(w http.ResponseWriter, r *http.Request) {
	rec, err := s.engagement.Snapshot()
	if err != nil {
		writeError(w, err)
		return
	}
	writeResult(w, map[string]interface{}{"record": rec})
}

func (s *Server) handleAchievements(w http.ResponseWriter, r *http.Request) {
	unlocked, err := s.engagement.Achievements()
	if err != nil {
		writeError(w, err)
		return
	}
	if unlocked == nil {
		unlocked = []domain.Achievement{}
	}
	writeResult(w, map[string]interface{}{
		"achievements": unlocked,
		"rules":        s.engagement.Rules(),
	})
}

// ─── Budget ─────────────────────────────────────────────────────────────────

type addEntryRequest struct {
	Amount      float64 `json:"amount"`
	Type        string  `json:"type"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
}

func (s *Server) handleBudgetEntries(w http.ResponseWriter, r *http.Request) {
	entries, err := s.budget.Entries()
	if err != nil {
		writeError(w, err)
		return
	}
	if entries == nil {
		entries = []domain.LedgerEntry{}
	}
	writeResult(w, map[string]interface{}{"entries": entries})
}

func (s *Server) handleBudgetAdd(w http.ResponseWriter, r *http.Request) {
	var req addEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, domain.ErrInvalidAmount)
		return
	}
	entry, err := s.budget.AddEntry(req.Amount, domain.EntryType(req.Type), req.Category, req.Description)
	if err != nil {
		writeError(w, err)
		return
	}
	writeResult(w, map[string]interface{}{"entry": entry})
}

func (s *Server) handleBudgetDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.budget.DeleteEntry(chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	writeResult(w, nil)
}

func (s *Server) handleBudgetSummary(w http.ResponseWriter, r *http.Request) {
	sum, err := s.budget.Summary()
	if err != nil {
		writeError(w, err)
		return
	}
	writeResult(w, map[string]interface{}{
		"income":  sum.Income,
		"expense": sum.Expense,
		"balance": sum.Balance,
	})
}

func (s *Server) handleBudgetBreakdown(w http.ResponseWriter, r *http.Request) {
	typ := domain.EntryType(r.URL.Query().Get("type"))
	if typ == "" {
		typ = domain.EntryExpense
	}
	rows, err := s.budget.Breakdown(typ)
	if err != nil {
		writeError(w, err)
		return
	}
	writeResult(w, map[string]interface{}{"type": typ, "categories": rows})
}

// ─── Water ──────────────────────────────────────────────────────────────────

type addWaterRequest struct {
	AmountML int `json:"amount_ml"`
}

func (s *Server) handleWaterAdd(w http.ResponseWriter, r *http.Request) {
	var req addWaterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, domain.ErrInvalidAmount)
		return
	}
	entry, err := s.water.AddEntry(req.AmountML)
	if err != nil {
		writeError(w, err)
		return
	}
	writeResult(w, map[string]interface{}{"entry": entry})
}

func (s *Server) handleWaterDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.water.DeleteEntry(chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	writeResult(w, nil)
}

func (s *Server) handleWaterToday(w http.ResponseWriter, r *http.Request) {
	progress, err := s.water.TodayTotal()
	if err != nil {
		writeError(w, err)
		return
	}
	writeResult(w, map[string]interface{}{
		"date":      progress.Date,
		"amount_ml": progress.AmountML,
		"goal_ml":   progress.GoalML,
		"pct":       progress.Pct(),
	})
}

func (s *Server) handleWaterWeek(w http.ResponseWriter, r *http.Request) {
	series, err := s.water.WeeklySeries()
	if err != nil {
		writeError(w, err)
		return
	}
	writeResult(w, map[string]interface{}{"days": series})
}

func (s *Server) handleWaterSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := s.water.Settings()
	if err != nil {
		writeError(w, err)
		return
	}
	writeResult(w, map[string]interface{}{"settings": settings})
}

func (s *Server) handleWaterSaveSettings(w http.ResponseWriter, r *http.Request) {
	var settings domain.WaterSettings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		writeError(w, domain.ErrInvalidAmount)
		return
	}
	if err := s.water.SaveSettings(settings); err != nil {
		writeError(w, err)
		return
	}
	writeResult(w, map[string]interface{}{"settings": settings})
}
