package testutils

import (
	"net/http"
	"net/http/httptest"
	"sync"
)

// MockUpstreamServer is an httptest-backed stand-in for the Entrade chart API.
type MockUpstreamServer struct {
	server *httptest.Server

	Status      int
	Body        string
	ContentType string

	mu      sync.Mutex
	lastURL string
}

// NewMockUpstreamServer creates a mock upstream serving the given status and body
func NewMockUpstreamServer(status int, body string) *MockUpstreamServer {
	mock := &MockUpstreamServer{
		Status:      status,
		Body:        body,
		ContentType: "application/json",
	}

	mock.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mock.mu.Lock()
		mock.lastURL = r.URL.String()
		mock.mu.Unlock()

		w.Header().Set("Content-Type", mock.ContentType)
		w.WriteHeader(mock.Status)
		_, _ = w.Write([]byte(mock.Body))
	}))

	return mock
}

// URL returns the base URL of the mock server
func (mock *MockUpstreamServer) URL() string {
	return mock.server.URL
}

// LastURL returns the path and query string of the most recent request
func (mock *MockUpstreamServer) LastURL() string {
	mock.mu.Lock()
	defer mock.mu.Unlock()
	return mock.lastURL
}

// Close shuts down the mock server
func (mock *MockUpstreamServer) Close() {
	mock.server.Close()
}
