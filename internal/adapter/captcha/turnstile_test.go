package captcha

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestVerifier_Verify_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatal(err)
		}
		if got := r.FormValue("secret"); got != "test_secret" {
			t.Errorf("secret: got %q, want %q", got, "test_secret")
		}
		if got := r.FormValue("response"); got != "test_token" {
			t.Errorf("response: got %q, want %q", got, "test_token")
		}
		if got := r.FormValue("remoteip"); got != "203.0.113.7" {
			t.Errorf("remoteip: got %q, want %q", got, "203.0.113.7")
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(siteverifyResponse{Success: true}); err != nil {
			t.Fatal(err)
		}
	}))
	defer srv.Close()

	v := New("test_secret", srv.URL, discardLogger())

	ok, err := v.Verify(context.Background(), "test_token", "203.0.113.7")
	if err != nil {
		t.Fatalf("Verify: unexpected error: %v", err)
	}
	if !ok {
		t.Error("Verify: got false, want true")
	}
}

func TestVerifier_Verify_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		resp := siteverifyResponse{Success: false, ErrorCodes: []string{"invalid-input-response"}}
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			t.Fatal(err)
		}
	}))
	defer srv.Close()

	v := New("test_secret", srv.URL, discardLogger())

	ok, err := v.Verify(context.Background(), "bad_token", "")
	if err != nil {
		t.Fatalf("Verify: unexpected error: %v", err)
	}
	if ok {
		t.Error("Verify: got true for a rejected token")
	}
}

func TestVerifier_Verify_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	v := New("test_secret", srv.URL, discardLogger())

	if _, err := v.Verify(context.Background(), "token", ""); err == nil {
		t.Fatal("expected error for 5xx siteverify response")
	}
}

func TestVerifier_Verify_RetriesOnce(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			http.Error(w, "flaky", http.StatusBadGateway)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(siteverifyResponse{Success: true}); err != nil {
			t.Fatal(err)
		}
	}))
	defer srv.Close()

	v := New("test_secret", srv.URL, discardLogger())

	ok, err := v.Verify(context.Background(), "token", "")
	if err != nil {
		t.Fatalf("Verify: unexpected error: %v", err)
	}
	if !ok {
		t.Error("Verify: got false after successful retry")
	}
	if calls != 2 {
		t.Errorf("calls: got %d, want 2", calls)
	}
}

func TestDisabled_AlwaysAccepts(t *testing.T) {
	ok, err := Disabled{}.Verify(context.Background(), "", "")
	if err != nil || !ok {
		t.Fatalf("Disabled.Verify: got ok=%v err=%v, want true/nil", ok, err)
	}
}
