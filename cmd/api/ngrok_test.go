package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFetchNgrokURLPrefersHTTPS(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/tunnels" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(`{"tunnels":[{"public_url":"http://a.ngrok.io","proto":"http"},{"public_url":"https://a.ngrok.io","proto":"https"}]}`))
	}))
	defer srv.Close()

	got, err := detectNgrokURL(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("detectNgrokURL() error = %v", err)
	}
	if got != "https://a.ngrok.io" {
		t.Errorf("detectNgrokURL() = %q", got)
	}
}

func TestFetchNgrokURLNoTunnels(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"tunnels":[]}`))
	}))
	defer srv.Close()

	_, err := fetchNgrokURL(context.Background(), srv.Client(), srv.URL+"/api/tunnels")
	if err != errNoTunnels {
		t.Errorf("fetchNgrokURL() error = %v, want errNoTunnels", err)
	}
}
