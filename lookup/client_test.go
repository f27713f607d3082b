package lookup

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClientConnections(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/user" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("email"); got != "jane@example.com" {
			t.Errorf("email query = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"connections":["password","email"]}`))
	}))
	defer srv.Close()

	client := New(Config{BaseURL: srv.URL})

	connections, err := client.Connections(context.Background(), "jane@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(connections) != 2 || connections[0] != "password" || connections[1] != "email" {
		t.Fatalf("connections = %v", connections)
	}
}

func TestClientConnectionsUserNotFound(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := New(Config{BaseURL: srv.URL})

	_, err := client.Connections(context.Background(), "nobody@example.com")
	if err != ErrUserNotFound {
		t.Fatalf("got %v, want ErrUserNotFound", err)
	}
}

func TestClientConnectionsServerError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := New(Config{BaseURL: srv.URL})

	_, err := client.Connections(context.Background(), "jane@example.com")
	if err == nil {
		t.Fatal("expected error on 500")
	}
	if err == ErrUserNotFound {
		t.Fatal("server failure is not a missing user")
	}
}

func TestClientConnectionsEmptyList(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"connections":[]}`))
	}))
	defer srv.Close()

	client := New(Config{BaseURL: srv.URL})

	connections, err := client.Connections(context.Background(), "jane@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(connections) != 0 {
		t.Fatalf("connections = %v", connections)
	}
}
