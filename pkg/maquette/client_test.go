package maquette

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClient_HealthRequestShape(t *testing.T) {
	var gotPath, gotMethod string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		json.NewEncoder(w).Encode(Health{Status: "healthy", Version: "test"})
	}))
	defer srv.Close()

	// Trailing slash on the base URL must not double up.
	client := New(srv.URL + "/")
	h, err := client.Health(context.Background())
	if err != nil {
		t.Fatalf("Health() error = %v", err)
	}

	if gotMethod != http.MethodGet || gotPath != "/api/health" {
		t.Errorf("request = %s %s, want GET /api/health", gotMethod, gotPath)
	}
	if h.Status != "healthy" {
		t.Errorf("status = %q, want healthy", h.Status)
	}
}

func TestClient_CreateProjectSendsJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q, want application/json", ct)
		}
		var params CreateProjectParams
		if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}
		if params.Name != "Test Project" {
			t.Errorf("name = %q, want Test Project", params.Name)
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(Project{ID: "p1", Name: params.Name})
	}))
	defer srv.Close()

	p, err := New(srv.URL).CreateProject(context.Background(), CreateProjectParams{Name: "Test Project"})
	if err != nil {
		t.Fatalf("CreateProject() error = %v", err)
	}
	if p.ID != "p1" {
		t.Errorf("id = %q, want p1", p.ID)
	}
}

func TestClient_ProblemResponseBecomesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/problem+json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"type":"about:blank","title":"Not Found","status":404,"detail":"Resource not found"}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL).GetProject(context.Background(), "missing")
	if err == nil {
		t.Fatal("GetProject() = nil error, want APIError")
	}

	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("error type = %T, want *APIError", err)
	}
	if apiErr.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", apiErr.StatusCode)
	}
	if apiErr.Detail != "Resource not found" {
		t.Errorf("detail = %q, want %q", apiErr.Detail, "Resource not found")
	}
}

func TestClient_EmptyProblemBodyStillErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := New(srv.URL).ListProjects(context.Background())
	if err == nil {
		t.Fatal("ListProjects() = nil error, want APIError")
	}
	if err.Error() == "" {
		t.Error("error message is empty")
	}
}
