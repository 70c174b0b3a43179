package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Amii911/AlgoTrack/internal/api"
)

func newTestManager(t *testing.T, handler http.Handler) *Manager {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client, err := api.NewClient(srv.URL, 2*time.Second)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	return NewManager(client)
}

func authHandler(t *testing.T) http.Handler {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("POST /login", func(w http.ResponseWriter, r *http.Request) {
		var creds map[string]string
		if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
			t.Errorf("decoding login body: %v", err)
		}
		if creds["password"] != "hunter2" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"error": "invalid credentials"})
			return
		}
		http.SetCookie(w, &http.Cookie{Name: "session", Value: "tok"})
		json.NewEncoder(w).Encode(map[string]any{"id": 42, "user_name": "amii", "email": creds["email"]})
	})
	mux.HandleFunc("GET /authorized", func(w http.ResponseWriter, r *http.Request) {
		if _, err := r.Cookie("session"); err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"error": "not logged in"})
			return
		}
		json.NewEncoder(w).Encode(map[string]any{"id": 42, "user_name": "amii", "email": "amii@example.com"})
	})
	mux.HandleFunc("POST /logout", func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "session", Value: "", MaxAge: -1})
		json.NewEncoder(w).Encode(map[string]string{"message": "logged out"})
	})
	return mux
}

func TestManagerLoginRecordsUser(t *testing.T) {
	t.Parallel()
	m := newTestManager(t, authHandler(t))

	if m.IsAuthenticated() {
		t.Fatal("fresh manager reports authenticated")
	}
	user, err := m.Login(context.Background(), "amii@example.com", "hunter2")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if user.ID != 42 || user.Name != "amii" {
		t.Fatalf("Login user = %+v, want id 42 name amii", user)
	}
	if !m.IsAuthenticated() {
		t.Fatal("manager not authenticated after login")
	}
	if id, ok := m.CurrentUserID(); !ok || id != 42 {
		t.Fatalf("CurrentUserID = %d, %v, want 42, true", id, ok)
	}
}

func TestManagerLoginFailureLeavesGuest(t *testing.T) {
	t.Parallel()
	m := newTestManager(t, authHandler(t))

	if _, err := m.Login(context.Background(), "amii@example.com", "wrong"); err == nil {
		t.Fatal("Login with bad password succeeded")
	}
	if m.IsAuthenticated() {
		t.Fatal("failed login left manager authenticated")
	}
}

func TestManagerRefreshRestoresSession(t *testing.T) {
	t.Parallel()
	m := newTestManager(t, authHandler(t))

	// Without a cookie the server answers 401; Refresh treats that as
	// "signed out", not as an error.
	if err := m.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh without session returned error: %v", err)
	}
	if m.IsAuthenticated() {
		t.Fatal("Refresh without session reports authenticated")
	}

	if _, err := m.Login(context.Background(), "amii@example.com", "hunter2"); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if err := m.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh after login returned error: %v", err)
	}
	if user, ok := m.CurrentUser(); !ok || user.Email != "amii@example.com" {
		t.Fatalf("CurrentUser = %+v, %v, want session user", user, ok)
	}
}

func TestManagerLogoutClearsIdentityEvenOnServerError(t *testing.T) {
	t.Parallel()
	mux := http.NewServeMux()
	mux.HandleFunc("POST /login", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"id": 7, "user_name": "amii"})
	})
	mux.HandleFunc("POST /logout", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": "session store down"})
	})
	m := newTestManager(t, mux)

	if _, err := m.Login(context.Background(), "amii@example.com", "hunter2"); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if err := m.Logout(context.Background()); err == nil {
		t.Fatal("Logout did not surface the server error")
	}
	if m.IsAuthenticated() {
		t.Fatal("failed logout left manager authenticated")
	}
}
