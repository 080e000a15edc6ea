// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Concurrent-safety tests for the API client. The Client is shared by
// background tea.Cmds that can fire from every tab at once, so these
// exercise parallel calls against a single instance.
package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestClient_ConcurrentQueries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"data":{"results":[{"float_id":"F001"}],"count":1,"answer":"one float"}}`))
	}))
	t.Cleanup(srv.Close)

	client, err := NewClient(&ClientConfig{BaseURL: srv.URL})
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			result, err := client.Query(context.Background(), "show floats")
			require.NoError(t, err)
			require.Equal(t, 1, result.Count)
		}()
	}
	wg.Wait()
}

func TestClient_ConcurrentMixedCalls(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/floats":
			_, _ = w.Write([]byte(`{"success":true,"data":[{"float_id":"F001","status":"active"}]}`))
		case "/api/profiles/F001":
			_, _ = w.Write([]byte(`{"success":true,"data":[{"depth":10,"temperature":28.1}]}`))
		default:
			_, _ = w.Write([]byte(`{"success":true,"data":{"results":[],"count":0}}`))
		}
	}))
	t.Cleanup(srv.Close)

	client, err := NewClient(&ClientConfig{BaseURL: srv.URL})
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			floats, err := client.ListFloats(context.Background())
			require.NoError(t, err)
			require.Len(t, floats, 1)
		}()
		go func() {
			defer wg.Done()
			profiles, err := client.GetProfiles(context.Background(), "F001")
			require.NoError(t, err)
			require.Len(t, profiles, 1)
		}()
	}
	wg.Wait()
}

func TestClient_SuggestThrottleUnderConcurrency(t *testing.T) {
	var mu sync.Mutex
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		hits++
		mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"data":{"suggestions":["ask about salinity"]}}`))
	}))
	t.Cleanup(srv.Close)

	client, err := NewClient(&ClientConfig{
		BaseURL:         srv.URL,
		SuggestInterval: time.Hour,
		SuggestBurst:    3,
	})
	require.NoError(t, err)

	var wg sync.WaitGroup
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = client.Suggest(ctx, "salinity")
		}()
	}
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	require.LessOrEqual(t, hits, 3, "suggest limiter should cap backend hits at the burst size")
}
