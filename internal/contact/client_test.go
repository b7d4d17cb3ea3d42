package contact

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNewClientRejectsBadBaseURL(t *testing.T) {
	tests := []string{"", "   ", "ftp://example.com", "://nope"}
	for _, base := range tests {
		if _, err := NewClient(Config{BaseURL: base}); err == nil {
			t.Errorf("Expected error for base URL %q", base)
		}
	}
}

func TestClientEndpoint(t *testing.T) {
	client, err := NewClient(Config{BaseURL: "https://api.example.com/"})
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}
	if client.Endpoint() != "https://api.example.com/api/contact" {
		t.Errorf("Unexpected endpoint %s", client.Endpoint())
	}
}

func TestClientSubmitSendsAllFields(t *testing.T) {
	var (
		gotMethod string
		gotPath   string
		gotType   string
		gotID     string
		gotBody   map[string]any
	)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotType = r.Header.Get("Content-Type")
		gotID = r.Header.Get(RequestIDHeader)
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &gotBody)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"success","message":"ok","submission_id":"sub-1"}`))
	}))
	defer server.Close()

	client, err := NewClient(Config{BaseURL: server.URL})
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}

	resp, err := client.Submit(context.Background(), Form{Name: "Alice", Email: "a@b.com", Service: "weight-loss"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if resp.Status != "success" || resp.SubmissionID != "sub-1" {
		t.Errorf("Unexpected response %+v", resp)
	}
	if gotMethod != http.MethodPost {
		t.Errorf("Expected POST, got %s", gotMethod)
	}
	if gotPath != "/api/contact" {
		t.Errorf("Expected /api/contact, got %s", gotPath)
	}
	if gotType != "application/json" {
		t.Errorf("Expected JSON content type, got %s", gotType)
	}
	if gotID == "" {
		t.Error("Expected a request id header")
	}

	for _, key := range []string{"name", "email", "phone", "service", "message"} {
		if _, ok := gotBody[key]; !ok {
			t.Errorf("Expected body to carry key %q, got %v", key, gotBody)
		}
	}
	if gotBody["phone"] != "" || gotBody["message"] != "" {
		t.Errorf("Expected empty optional fields to be sent as empty strings, got %v", gotBody)
	}
}

func TestClientSubmitFailures(t *testing.T) {
	tests := []struct {
		name     string
		code     int
		body     string
		wantType ErrorType
	}{
		{"server error", http.StatusInternalServerError, `{"detail":"Failed to process your request. Please try again."}`, ErrUnavailable},
		{"validation error", http.StatusUnprocessableEntity, `{"detail":[{"loc":["body","email"]}]}`, ErrRejected},
		{"malformed body", http.StatusOK, `not json`, ErrMalformedResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.code)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client, err := NewClient(Config{BaseURL: server.URL})
			if err != nil {
				t.Fatalf("Failed to create client: %v", err)
			}

			_, err = client.Submit(context.Background(), Form{})
			var submissionErr *SubmissionError
			if !errors.As(err, &submissionErr) {
				t.Fatalf("Expected *SubmissionError, got %v", err)
			}
			if submissionErr.Type != tt.wantType {
				t.Errorf("Expected type %s, got %s", tt.wantType, submissionErr.Type)
			}
		})
	}
}

func TestClientSubmitNonSuccessStatusIsReturned(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"failed"}`))
	}))
	defer server.Close()

	client, _ := NewClient(Config{BaseURL: server.URL})
	resp, err := client.Submit(context.Background(), Form{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if resp.Status != "failed" {
		t.Errorf("Expected status 'failed', got %q", resp.Status)
	}
}

func TestClientSubmitTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	base := server.URL
	server.Close()

	client, _ := NewClient(Config{BaseURL: base})
	_, err := client.Submit(context.Background(), Form{})
	if err == nil {
		t.Fatal("Expected an error from a closed server")
	}
	if Kind(err) != ErrNetworkConnection {
		t.Errorf("Expected network error, got %s (%v)", Kind(err), err)
	}
}

func TestClientTimeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	client, _ := NewClient(Config{BaseURL: server.URL, Timeout: 50 * time.Millisecond})
	_, err := client.Submit(context.Background(), Form{})
	if Kind(err) != ErrTimeout {
		t.Errorf("Expected timeout, got %s (%v)", Kind(err), err)
	}
}

func TestControllerWithHTTPClient(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"success"}`))
	}))
	defer server.Close()

	client, _ := NewClient(Config{BaseURL: server.URL})
	c := NewController(client, nil)
	fillAlice(c)

	if status := c.Submit(context.Background()); status != StatusSuccess {
		t.Fatalf("Expected success, got %s", status)
	}
	if c.Form() != (Form{}) {
		t.Errorf("Expected fields to be reset, got %+v", c.Form())
	}
}
