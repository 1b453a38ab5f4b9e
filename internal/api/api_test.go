package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/daykeep/daykeep/internal/api"
	"github.com/daykeep/daykeep/internal/app/budget"
	"github.com/daykeep/daykeep/internal/app/engagement"
	"github.com/daykeep/daykeep/internal/app/water"
	"github.com/daykeep/daykeep/internal/domain"
	"github.com/daykeep/daykeep/internal/infra/identity"
	"github.com/daykeep/daykeep/internal/infra/sqlite"
)

// testHandler wires the full stack over a temp database.
func testHandler(t *testing.T) http.Handler {
	t.Helper()
	db, err := sqlite.Open(t.TempDir())
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	session := identity.NewSession(db)
	clock := domain.SystemClock{}
	srv := api.NewServer(
		session,
		engagement.NewService(db, session, clock),
		budget.NewService(db, session, clock),
		water.NewService(db, session, clock),
	)
	return srv.Handler()
}

func doJSON(t *testing.T, h http.Handler, method, path string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var out map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode %s %s response: %v\nbody: %s", method, path, err, rec.Body.String())
	}
	return rec, out
}

func login(t *testing.T, h http.Handler, username string) {
	t.Helper()
	rec, _ := doJSON(t, h, http.MethodPost, "/api/session/login", map[string]string{"username": username})
	if rec.Code != http.StatusOK {
		t.Fatalf("login failed: %d %s", rec.Code, rec.Body.String())
	}
}

func TestHealth(t *testing.T) {
	h := testHandler(t)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}

func TestUnauthenticatedEnvelope(t *testing.T) {
	h := testHandler(t)

	rec, out := doJSON(t, h, http.MethodPost, "/api/engagement/tap", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
	if success, _ := out["success"].(bool); success {
		t.Error("expected success=false")
	}
	if msg, _ := out["message"].(string); msg == "" {
		t.Error("expected a message in the failure envelope")
	}
}

func TestTapAndSummary(t *testing.T) {
	h := testHandler(t)
	login(t, h, "mei")

	rec, out := doJSON(t, h, http.MethodPost, "/api/engagement/tap", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("tap: %d %s", rec.Code, rec.Body.String())
	}
	if out["cumulative_score"].(float64) != 1 {
		t.Errorf("expected score 1, got %v", out["cumulative_score"])
	}
	if out["continuous_days"].(float64) != 1 {
		t.Errorf("expected streak 1, got %v", out["continuous_days"])
	}

	_, out = doJSON(t, h, http.MethodGet, "/api/engagement/summary", nil)
	record := out["record"].(map[string]interface{})
	if record["total_events"].(float64) != 1 {
		t.Errorf("expected 1 event in summary, got %v", record["total_events"])
	}
}

func TestBudgetFlow(t *testing.T) {
	h := testHandler(t)
	login(t, h, "mei")

	rec, out := doJSON(t, h, http.MethodPost, "/api/budget/entries", map[string]interface{}{
		"amount": 100, "type": "income", "category": "salary",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("add income: %d %s", rec.Code, rec.Body.String())
	}
	_, _ = doJSON(t, h, http.MethodPost, "/api/budget/entries", map[string]interface{}{
		"amount": 30, "type": "expense", "category": "food",
	})
	_, _ = doJSON(t, h, http.MethodPost, "/api/budget/entries", map[string]interface{}{
		"amount": 20, "type": "expense", "category": "transport",
	})

	_, sum := doJSON(t, h, http.MethodGet, "/api/budget/summary", nil)
	if sum["income"].(float64) != 100 || sum["expense"].(float64) != 50 || sum["balance"].(float64) != 50 {
		t.Errorf("summary wrong: %v", sum)
	}

	// Validation surfaces as a 400 failure envelope.
	rec, out = doJSON(t, h, http.MethodPost, "/api/budget/entries", map[string]interface{}{
		"amount": -1, "type": "expense", "category": "food",
	})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
	if success, _ := out["success"].(bool); success {
		t.Error("expected success=false for invalid amount")
	}

	// Delete round trip.
	entry := func() map[string]interface{} {
		_, out := doJSON(t, h, http.MethodGet, "/api/budget/entries", nil)
		entries := out["entries"].([]interface{})
		return entries[0].(map[string]interface{})
	}()
	rec, _ = doJSON(t, h, http.MethodDelete, "/api/budget/entries/"+entry["id"].(string), nil)
	if rec.Code != http.StatusOK {
		t.Errorf("delete: %d", rec.Code)
	}
	rec, _ = doJSON(t, h, http.MethodDelete, "/api/budget/entries/"+entry["id"].(string), nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("second delete: expected 404, got %d", rec.Code)
	}
}

func TestWaterFlow(t *testing.T) {
	h := testHandler(t)
	login(t, h, "mei")

	rec, _ := doJSON(t, h, http.MethodPost, "/api/water/entries", map[string]int{"amount_ml": 250})
	if rec.Code != http.StatusOK {
		t.Fatalf("add water: %d", rec.Code)
	}

	_, today := doJSON(t, h, http.MethodGet, "/api/water/today", nil)
	if today["amount_ml"].(float64) != 250 {
		t.Errorf("expected 250 today, got %v", today["amount_ml"])
	}
	if today["goal_ml"].(float64) != 2000 {
		t.Errorf("expected default goal, got %v", today["goal_ml"])
	}

	_, week := doJSON(t, h, http.MethodGet, "/api/water/week", nil)
	days := week["days"].([]interface{})
	if len(days) != 7 {
		t.Errorf("expected 7 days, got %d", len(days))
	}
}

func TestSessionEndpoints(t *testing.T) {
	h := testHandler(t)

	rec, _ := doJSON(t, h, http.MethodGet, "/api/session/", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("whoami before login: expected 401, got %d", rec.Code)
	}

	login(t, h, "mei")
	_, out := doJSON(t, h, http.MethodGet, "/api/session/", nil)
	if out["username"] != "mei" {
		t.Errorf("expected mei, got %v", out["username"])
	}

	rec, _ = doJSON(t, h, http.MethodPost, "/api/session/logout", nil)
	if rec.Code != http.StatusOK {
		t.Errorf("logout: %d", rec.Code)
	}
	rec, _ = doJSON(t, h, http.MethodGet, "/api/session/", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("whoami after logout: expected 401, got %d", rec.Code)
	}
}
