package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Draketheb4dass/reaction-admin/config"
)

func newTestClient(srv *httptest.Server, token string) *Client {
	return NewClient(config.CommerceAPIConfig{
		Endpoint: srv.URL,
		Token:    token,
		Timeout:  5 * time.Second,
	}, srv.Client())
}

func TestDo_SendsBearerTokenAndDecodesData(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"ping":"pong"}}`))
	}))
	defer srv.Close()

	c := newTestClient(srv, "secret-token")
	var out struct {
		Ping string `mapstructure:"ping"`
	}
	if err := c.Do(context.Background(), `query { ping }`, nil, &out); err != nil {
		t.Fatalf("Do: %v", err)
	}
	if gotAuth != "Bearer secret-token" {
		t.Errorf("Authorization = %q, want Bearer secret-token", gotAuth)
	}
	if out.Ping != "pong" {
		t.Errorf("ping = %q, want pong", out.Ping)
	}
}

func TestDo_FoldsGraphQLErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"errors":[{"message":"product not found"},{"message":"access denied"}]}`))
	}))
	defer srv.Close()

	c := newTestClient(srv, "")
	err := c.Do(context.Background(), `query { ping }`, nil, nil)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "product not found") || !strings.Contains(err.Error(), "access denied") {
		t.Errorf("error = %q, want both messages folded in", err)
	}
}

func TestDo_RetriesTransientHTTPFailures(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			http.Error(w, "upstream unavailable", http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"ping":"pong"}}`))
	}))
	defer srv.Close()

	c := newTestClient(srv, "")
	if err := c.Do(context.Background(), `query { ping }`, nil, nil); err != nil {
		t.Fatalf("Do after retry: %v", err)
	}
	if got := atomic.LoadInt32(&calls); got != 2 {
		t.Errorf("calls = %d, want 2", got)
	}
}

func TestDo_RetriesThrottledGraphQLErrors(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if atomic.AddInt32(&calls, 1) == 1 {
			w.Write([]byte(`{"errors":[{"message":"Throttled","extensions":{"code":"THROTTLED"}}]}`))
			return
		}
		w.Write([]byte(`{"data":{"ping":"pong"}}`))
	}))
	defer srv.Close()

	c := newTestClient(srv, "")
	if err := c.Do(context.Background(), `query { ping }`, nil, nil); err != nil {
		t.Fatalf("Do after throttle retry: %v", err)
	}
	if got := atomic.LoadInt32(&calls); got != 2 {
		t.Errorf("calls = %d, want 2", got)
	}
}

func TestDo_PermanentHTTPFailureNotRetried(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		http.Error(w, "bad request", http.StatusBadRequest)
	}))
	defer srv.Close()

	c := newTestClient(srv, "")
	if err := c.Do(context.Background(), `query { ping }`, nil, nil); err == nil {
		t.Fatal("expected error")
	}
	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Errorf("calls = %d, want 1", got)
	}
}

func TestDo_MissingEndpoint(t *testing.T) {
	c := NewClient(config.CommerceAPIConfig{}, nil)
	if err := c.Do(context.Background(), `query { ping }`, nil, nil); err == nil {
		t.Fatal("expected error for missing endpoint")
	}
}
