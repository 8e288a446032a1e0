package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	xerrors "shopfront-service/internal/pkg/errors"

	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 2*time.Second, zap.NewNop()), srv
}

func TestLoginSuccess(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/users/login" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var req map[string]string
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("failed to decode login body: %v", err)
		}
		if req["email"] != "a@example.com" {
			t.Errorf("expected email to be forwarded, got %q", req["email"])
		}
		json.NewEncoder(w).Encode(map[string]string{
			"token": "tok-1", "_id": "u1", "name": "Alice",
			"email": "a@example.com", "role": "user",
		})
	}))

	result, err := client.Login(context.Background(), "a@example.com", "pw")
	if err != nil {
		t.Fatalf("Login() error: %v", err)
	}
	if result.Token != "tok-1" {
		t.Errorf("expected token tok-1, got %q", result.Token)
	}
	if p := result.Profile(); p.ID != "u1" || p.Role != "user" {
		t.Errorf("unexpected profile: %+v", p)
	}
}

func TestErrorClassification(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   error
	}{
		{"unauthorized", http.StatusUnauthorized, xerrors.ErrAuth},
		{"bad request", http.StatusBadRequest, xerrors.ErrValidation},
		{"conflict", http.StatusConflict, xerrors.ErrValidation},
		{"server error", http.StatusInternalServerError, xerrors.ErrServer},
		{"bad gateway", http.StatusBadGateway, xerrors.ErrServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				json.NewEncoder(w).Encode(map[string]string{"message": "nope"})
			}))

			_, err := client.GetUser(context.Background(), "tok")
			if !errors.Is(err, tt.want) {
				t.Errorf("status %d: expected %v, got %v", tt.status, tt.want, err)
			}
		})
	}
}

func TestTransportFailureIsNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	client := NewClient(srv.URL, time.Second, zap.NewNop())
	_, err := client.ListProducts(context.Background())
	if !errors.Is(err, xerrors.ErrNetwork) {
		t.Fatalf("expected ErrNetwork, got %v", err)
	}
}

func TestValidationErrorCarriesServerMessage(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]string{"message": "price must be positive"})
	}))

	err := client.PlaceOrder(context.Background(), "tok", "p1", 1)
	if !errors.Is(err, xerrors.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if got := err.Error(); !strings.Contains(got, "price must be positive") {
		t.Errorf("expected server message in error, got %q", got)
	}
}

func TestBreakerOpensAfterConsecutiveFailures(t *testing.T) {
	var hits int
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.WriteHeader(http.StatusInternalServerError)
	}))

	for i := 0; i < 6; i++ {
		client.ListProducts(context.Background())
	}

	// Breaker trips after 5 consecutive retryable failures; the 6th call
	// must not reach the server.
	if hits != 5 {
		t.Fatalf("expected 5 upstream hits before the breaker opened, got %d", hits)
	}
	_, err := client.ListProducts(context.Background())
	if !errors.Is(err, xerrors.ErrNetwork) {
		t.Fatalf("expected open breaker to report ErrNetwork, got %v", err)
	}
}

func TestListProductsDecodesEnvelope(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"products":[{"_id":"p1","name":"Mug","price":12.5}]}`))
	}))

	products, err := client.ListProducts(context.Background())
	if err != nil {
		t.Fatalf("ListProducts() error: %v", err)
	}
	if len(products) != 1 || products[0].ID != "p1" || products[0].Price != 12.5 {
		t.Fatalf("unexpected products: %+v", products)
	}
}
