// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api provides the HTTP client for the FloatChat backend API.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient(&ClientConfig{BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	return client
}

// =============================================================================
// CONFIGURATION TESTS
// =============================================================================

func TestNewClient_MissingBaseURL(t *testing.T) {
	_, err := NewClient(&ClientConfig{})
	if !errors.Is(err, ErrNoBaseURL) {
		t.Errorf("NewClient() error = %v, want ErrNoBaseURL", err)
	}

	_, err = NewClient(&ClientConfig{BaseURL: "   "})
	if !errors.Is(err, ErrNoBaseURL) {
		t.Errorf("NewClient(whitespace) error = %v, want ErrNoBaseURL", err)
	}
}

func TestClient_BaseURLTrailingSlash(t *testing.T) {
	client, err := NewClient(&ClientConfig{BaseURL: "http://example.com/"})
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	if got := client.BaseURL(); got != "http://example.com" {
		t.Errorf("BaseURL() = %q, want %q", got, "http://example.com")
	}
}

// =============================================================================
// CATALOG TESTS
// =============================================================================

func TestClient_ListFloats(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/floats" {
			t.Errorf("path = %q, want /api/floats", r.URL.Path)
		}
		// Mixed coordinate encodings: number and string.
		w.Write([]byte(`{"success":true,"data":[
			{"float_id":"F1","wmo_id":"6901234","latitude":15.5,"longitude":"70.2","status":"active","ocean_region":"Arabian Sea","total_profiles":42},
			{"float_id":"F2","wmo_id":"6905678","latitude":null,"longitude":"not-a-number","status":"lost","total_profiles":7}
		]}`))
	})

	floats, err := client.ListFloats(context.Background())
	if err != nil {
		t.Fatalf("ListFloats() error = %v", err)
	}
	if len(floats) != 2 {
		t.Fatalf("len(floats) = %d, want 2", len(floats))
	}

	if !floats[0].HasPosition() {
		t.Error("F1 should have a valid position")
	}
	if floats[0].Longitude.Value != 70.2 {
		t.Errorf("F1 longitude = %v, want 70.2", floats[0].Longitude.Value)
	}
	if floats[1].HasPosition() {
		t.Error("F2 should not have a valid position")
	}
}

func TestClient_GetProfiles_EmptyID(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request should reach the server")
	})

	if _, err := client.GetProfiles(context.Background(), "  "); err == nil {
		t.Error("GetProfiles(empty) should fail")
	}
}

// =============================================================================
// QUERY TESTS
// =============================================================================

func TestClient_Query_RejectsEmptyInput(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request should reach the server")
	})

	for _, q := range []string{"", "   ", "\n\t"} {
		if _, err := client.Query(context.Background(), q); !errors.Is(err, ErrEmptyQuery) {
			t.Errorf("Query(%q) error = %v, want ErrEmptyQuery", q, err)
		}
	}
}

func TestClient_Query_Success(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if body["query"] != "active floats" {
			t.Errorf("query = %q, want trimmed input", body["query"])
		}
		w.Write([]byte(`{"success":true,"data":{
			"results":[{"float_id":"F1","status":"active"}],
			"count":1,
			"sqlQuery":"SELECT * FROM floats WHERE status = 'active'"
		}}`))
	})

	result, err := client.Query(context.Background(), "  active floats  ")
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}
	if result.Count != 1 {
		t.Errorf("Count = %d, want 1", result.Count)
	}
	if result.NaturalQuery != "active floats" {
		t.Errorf("NaturalQuery = %q, want the submitted query as fallback", result.NaturalQuery)
	}
	if result.SQLQuery == "" {
		t.Error("SQLQuery should carry the backend translation")
	}
}

func TestClient_Query_BackendFailure(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":false,"message":"could not translate query"}`))
	})

	_, err := client.Query(context.Background(), "gibberish")
	var cerr *ClientError
	if !errors.As(err, &cerr) {
		t.Fatalf("error = %T, want *ClientError", err)
	}
	if cerr.Type != ErrTypeBackend {
		t.Errorf("Type = %v, want ErrTypeBackend", cerr.Type)
	}
	if cerr.Message != "could not translate query" {
		t.Errorf("Message = %q, want backend message carried through", cerr.Message)
	}
}

func TestClient_Query_Non2xxWithoutEnvelope(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal server error", http.StatusInternalServerError)
	})

	_, err := client.Query(context.Background(), "anything")
	var cerr *ClientError
	if !errors.As(err, &cerr) {
		t.Fatalf("error = %T, want *ClientError", err)
	}
	if cerr.Type != ErrTypeBackend {
		t.Errorf("Type = %v, want ErrTypeBackend", cerr.Type)
	}
}

func TestClient_Query_Unreachable(t *testing.T) {
	client, err := NewClient(&ClientConfig{BaseURL: "http://127.0.0.1:1"})
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}

	if _, err := client.Query(context.Background(), "anything"); !errors.Is(err, ErrUnreachable) {
		t.Errorf("error = %v, want ErrUnreachable", err)
	}
}

// =============================================================================
// SUGGESTION TESTS
// =============================================================================

func TestClient_Suggest(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/query/suggest" {
			t.Errorf("path = %q, want /api/query/suggest", r.URL.Path)
		}
		w.Write([]byte(`{"success":true,"data":{"suggestions":["Show salinity profiles near equator","Floats near 15N, 70E"]}}`))
	})

	suggestions, err := client.Suggest(context.Background(), "salinity?")
	if err != nil {
		t.Fatalf("Suggest() error = %v", err)
	}
	if len(suggestions) != 2 {
		t.Errorf("len(suggestions) = %d, want 2", len(suggestions))
	}
}

// =============================================================================
// TYPE TESTS
// =============================================================================

func TestCoordinate_Format(t *testing.T) {
	tests := []struct {
		name  string
		coord Coordinate
		want  string
	}{
		{"valid", Coordinate{Value: 15.5, Valid: true}, "15.5000°N"},
		{"invalid", Coordinate{}, "N/A"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.coord.Format("N"); got != tc.want {
				t.Errorf("Format() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestFloatsFromResult(t *testing.T) {
	result := &QueryResult{
		Results: []Row{
			{"float_id": "F1", "latitude": "12.5", "longitude": 60.0, "status": "active"},
		},
		Count: 1,
	}

	floats, ok := FloatsFromResult(result)
	if !ok {
		t.Fatal("FloatsFromResult() ok = false, want true for float-shaped rows")
	}
	if floats[0].FloatID != "F1" {
		t.Errorf("FloatID = %q, want F1", floats[0].FloatID)
	}
	if !floats[0].HasPosition() {
		t.Error("string-encoded coordinates should be coerced at the boundary")
	}

	generic := &QueryResult{Results: []Row{{"depth": 10.0}}, Count: 1}
	if _, ok := FloatsFromResult(generic); ok {
		t.Error("FloatsFromResult() should reject non-float-shaped rows")
	}

	if _, ok := FloatsFromResult(nil); ok {
		t.Error("FloatsFromResult(nil) should be false")
	}
}

func TestFormatDate(t *testing.T) {
	if got := FormatDate("2024-03-15"); got != "Mar 15, 2024" {
		t.Errorf("FormatDate() = %q, want %q", got, "Mar 15, 2024")
	}
	if got := FormatDate(""); got != "N/A" {
		t.Errorf("FormatDate(empty) = %q, want N/A", got)
	}
	if got := FormatDate("garbage"); got != "N/A" {
		t.Errorf("FormatDate(garbage) = %q, want N/A", got)
	}
}
