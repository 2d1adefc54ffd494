package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/aromabeans/coffee-feedback/store"
)

type stubAI struct {
	suggestion string
	sentiment  string
	emotion    string
	err        error
}

func (a *stubAI) Suggest(ctx context.Context, feedback, category, product string) (string, error) {
	return a.suggestion, a.err
}

func (a *stubAI) Sentiment(ctx context.Context, text string) (string, error) {
	return a.sentiment, a.err
}

func (a *stubAI) DetectEmotion(ctx context.Context, image []byte) (string, error) {
	return a.emotion, a.err
}

type stubNotifier struct {
	mu       sync.Mutex
	messages []string
}

func (n *stubNotifier) SendText(to, body string) (string, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.messages = append(n.messages, body)
	return "wamid.test", nil
}

func (n *stubNotifier) sent() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]string, len(n.messages))
	copy(out, n.messages)
	return out
}

func newTestServer(t *testing.T) (*Server, *store.MemoryStore, *stubNotifier) {
	t.Helper()
	st := store.NewMemoryStore()
	ai := &stubAI{suggestion: "Brew at a lower temperature.", sentiment: "Negative", emotion: "happy"}
	notifier := &stubNotifier{}
	return NewServer(st, ai, notifier, nil), st, notifier
}

func postForm(handler http.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	handler(w, req)
	return w
}

func postJSON(handler http.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler(w, req)
	return w
}

func httptestGet(path string) *http.Request {
	return httptest.NewRequest(http.MethodGet, path, nil)
}

func record(handler http.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	handler(w, req)
	return w
}
