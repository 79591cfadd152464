package campaigns_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/FundSpring/FS-Web/internal/campaigns"
	"github.com/FundSpring/FS-Web/internal/render"
	"github.com/FundSpring/FS-Web/internal/upstream"
	"github.com/FundSpring/FS-Web/internal/utils"
	"github.com/go-chi/chi/v5"
)

func init() {
	// Tests run from the package directory; point the renderer at the
	// repo-root templates.
	render.Dir = "../../ui/html"
}

// newTestRouter wires the campaign routes against the given upstream base URL.
// When loggedIn is true every request carries a live session.
func newTestRouter(upstreamURL string, loggedIn bool) http.Handler {
	campaigns.Init(upstream.NewClient(upstreamURL), nil)

	r := chi.NewRouter()
	if loggedIn {
		r.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				ctx := context.WithValue(req.Context(), utils.ContextSessionKey, utils.SessionData{
					SessionID:   "test-session",
					Username:    "alice",
					AccessToken: "test-access-token",
					ExpiresAt:   time.Now().Add(time.Hour),
				})
				next.ServeHTTP(w, req.WithContext(ctx))
			})
		})
	}
	campaigns.RegisterRoutes(r)
	return r
}

func serveCampaign7(t *testing.T, donations *int) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/campaigns/7/":
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"id":7,"title":"Wells","description":"Clean water","target_amount":"1000.00","start_date":"2026-03-01","end_date":"2026-06-01","owner":"bob","total_donations":420.0,"progress_percentage":42,"donations":[]}`))
		case r.Method == http.MethodPost && r.URL.Path == "/api/donations/":
			if donations != nil {
				*donations++
			}
			var body map[string]float64
			json.NewDecoder(r.Body).Decode(&body)
			if body["campaign"] != 7 || body["amount"] != 50 {
				t.Errorf("unexpected donation body: %v", body)
			}
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"id":1,"campaign":7,"amount":"50.00"}`))
		default:
			t.Errorf("unexpected upstream call: %s %s", r.Method, r.URL.Path)
			http.NotFound(w, r)
		}
	}
}

// TestDonate_InvalidAmountNeverReachesUpstream checks the client-side guard:
// non-numeric and non-positive amounts are blocked before any donation
// request is issued.
func TestDonate_InvalidAmountNeverReachesUpstream(t *testing.T) {
	for _, amount := range []string{"abc", "0", "-10", ""} {
		t.Run("amount="+amount, func(t *testing.T) {
			donations := 0
			server := httptest.NewServer(serveCampaign7(t, &donations))
			defer server.Close()

			router := newTestRouter(server.URL, true)

			form := strings.NewReader("amount=" + amount)
			req := httptest.NewRequest(http.MethodPost, "/campaigns/7/donate", form)
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if donations != 0 {
				t.Errorf("expected no donation request, upstream saw %d", donations)
			}
			if !strings.Contains(rec.Body.String(), "valid amount greater than 0") {
				t.Errorf("expected validation message in response, got: %s", rec.Body.String())
			}
		})
	}
}

// TestDonate_SubmitsAndRedirects checks the happy path: a valid amount posts
// {campaign:7, amount:50} upstream and redirects home for a fresh fetch.
func TestDonate_SubmitsAndRedirects(t *testing.T) {
	donations := 0
	server := httptest.NewServer(serveCampaign7(t, &donations))
	defer server.Close()

	router := newTestRouter(server.URL, true)

	form := strings.NewReader("amount=50")
	req := httptest.NewRequest(http.MethodPost, "/campaigns/7/donate", form)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if donations != 1 {
		t.Fatalf("expected 1 donation request, got %d", donations)
	}
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/?donated=1" {
		t.Errorf("expected redirect to /?donated=1, got %q", loc)
	}
}

// TestHome_ProgressRenderedVerbatim checks that the server-computed progress
// figure reaches the page unmodified.
func TestHome_ProgressRenderedVerbatim(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/campaigns/" {
			t.Errorf("unexpected upstream call: %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":7,"title":"Wells","description":"Clean water","target_amount":"1000.00","start_date":"2026-03-01","end_date":"2026-06-01","owner":"bob","total_donations":421.5,"progress_percentage":42,"donations":[]}]`))
	}))
	defer server.Close()

	router := newTestRouter(server.URL, false)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "42%") {
		t.Errorf("expected progress 42%% in page, got: %s", body)
	}
	if !strings.Contains(body, "$421.50") {
		t.Errorf("expected raised $421.50 in page, got: %s", body)
	}
}

// TestHome_OwnershipControls checks the display hint: edit/delete links render
// only for the campaign's own creator.
func TestHome_OwnershipControls(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":1,"title":"Mine","owner":"alice","target_amount":"500.00","progress_percentage":0},{"id":2,"title":"Theirs","owner":"bob","target_amount":"500.00","progress_percentage":0}]`))
	}))
	defer server.Close()

	router := newTestRouter(server.URL, true)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	body := rec.Body.String()
	if !strings.Contains(body, "/campaigns/1/edit") {
		t.Error("expected edit link for own campaign")
	}
	if strings.Contains(body, "/campaigns/2/edit") {
		t.Error("did not expect edit link for someone else's campaign")
	}
}

// TestMyCampaigns_UpstreamUnauthenticated checks that a stale token redirects
// back to login rather than rendering an error page.
func TestMyCampaigns_UpstreamUnauthenticated(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail":"token expired"}`, http.StatusUnauthorized)
	}))
	defer server.Close()

	router := newTestRouter(server.URL, true)

	req := httptest.NewRequest(http.MethodGet, "/my-campaigns", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/login" {
		t.Errorf("expected redirect to /login, got %q", loc)
	}
}

// TestProtectedRoute_AnonymousStashesPath checks the navigation shell flow:
// clicking a protected destination while anonymous redirects to login with the
// intended path remembered.
func TestProtectedRoute_AnonymousStashesPath(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("anonymous request must not reach upstream: %s %s", r.Method, r.URL.Path)
	}))
	defer server.Close()

	router := newTestRouter(server.URL, false)

	req := httptest.NewRequest(http.MethodGet, "/create-campaign", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/login" {
		t.Errorf("expected redirect to /login, got %q", loc)
	}

	var stashed string
	for _, c := range rec.Result().Cookies() {
		if c.Name == "redirect_after_login" {
			stashed = c.Value
		}
	}
	if stashed != "/create-campaign" {
		t.Errorf("expected stashed path /create-campaign, got %q", stashed)
	}
}
