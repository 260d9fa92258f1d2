package asset

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	return NewService(t.TempDir(), 5*time.Second)
}

func TestFetch_EmptyURL(t *testing.T) {
	svc := newTestService(t)

	tests := []string{"", "   ", "\t\n"}
	for _, url := range tests {
		_, err := svc.Fetch(context.Background(), url)
		if !errors.Is(err, ErrEmptyURL) {
			t.Errorf("Fetch(%q) error = %v, expected ErrEmptyURL", url, err)
		}
	}
}

func TestFetch_EmptyURLMessage(t *testing.T) {
	if ErrEmptyURL.Error() != "model URL not provided" {
		t.Errorf("Unexpected empty URL message: %s", ErrEmptyURL.Error())
	}
}

func TestFetch_Success(t *testing.T) {
	payload := []byte("glTF-binary-payload")
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("Expected GET, got %s", r.Method)
		}
		w.Write(payload)
	}))
	defer server.Close()

	svc := newTestService(t)
	handle, err := svc.Fetch(context.Background(), server.URL+"/models/chair.glb")
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}

	if handle.Size != int64(len(payload)) {
		t.Errorf("Expected size %d, got %d", len(payload), handle.Size)
	}
	if !strings.HasSuffix(handle.Path, ".glb") {
		t.Errorf("Expected .glb extension, got %s", handle.Path)
	}

	data, err := os.ReadFile(handle.Path)
	if err != nil {
		t.Fatalf("Asset file should exist: %v", err)
	}
	if string(data) != string(payload) {
		t.Error("Asset file content mismatch")
	}

	if err := handle.Release(); err != nil {
		t.Fatalf("Release failed: %v", err)
	}
	if _, err := os.Stat(handle.Path); !os.IsNotExist(err) {
		t.Error("Asset file should be removed after release")
	}
}

func TestFetch_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	svc := newTestService(t)
	_, err := svc.Fetch(context.Background(), server.URL+"/missing.glb")
	if err == nil {
		t.Fatal("Expected error for 404 response")
	}

	var se *StatusError
	if !errors.As(err, &se) {
		t.Fatalf("Expected StatusError, got %T: %v", err, err)
	}
	if se.Code != http.StatusNotFound {
		t.Errorf("Expected code 404, got %d", se.Code)
	}
	if !strings.Contains(err.Error(), "404") {
		t.Errorf("Error message should embed the status code: %s", err.Error())
	}
}

func TestFetch_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	svc := newTestService(t)
	_, err := svc.Fetch(context.Background(), server.URL+"/model.glb")
	if !IsStatusError(err) {
		t.Errorf("Expected StatusError for 500, got %v", err)
	}
	if !strings.Contains(err.Error(), "500") {
		t.Errorf("Error message should embed the status code: %s", err.Error())
	}
}

func TestFetch_TransportError(t *testing.T) {
	svc := newTestService(t)

	// Nothing listens here
	_, err := svc.Fetch(context.Background(), "http://127.0.0.1:1/model.glb")
	if err == nil {
		t.Fatal("Expected transport error")
	}
	if IsStatusError(err) {
		t.Error("Transport failure should not be a StatusError")
	}
}

func TestFetch_ContextCancelled(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer server.Close()
	defer close(release)

	svc := newTestService(t)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	_, err := svc.Fetch(ctx, server.URL+"/slow.glb")
	if err == nil {
		t.Fatal("Expected error after cancellation")
	}
}

func TestHandle_ReleaseIdempotent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("payload"))
	}))
	defer server.Close()

	svc := newTestService(t)
	handle, err := svc.Fetch(context.Background(), server.URL+"/model.glb")
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}

	for i := 0; i < 3; i++ {
		if err := handle.Release(); err != nil {
			t.Errorf("Release call %d failed: %v", i+1, err)
		}
	}
	if !handle.Released() {
		t.Error("Handle should report released")
	}
}
