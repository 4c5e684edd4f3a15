package telegram

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"path"
	"sync"
	"testing"

	"github.com/go-telegram/bot"
	"github.com/stretchr/testify/require"
)

type apiCall struct {
	Method string
	Form   map[string]string
}

// fakeAPI is a minimal Bot API server that records every call.
type fakeAPI struct {
	mu       sync.Mutex
	calls    []apiCall
	failWith map[string]apiFailure
}

type apiFailure struct {
	code        int
	description string
}

func newFakeAPI(t *testing.T, opts ...bot.Option) (*fakeAPI, *bot.Bot) {
	t.Helper()
	api := &fakeAPI{failWith: make(map[string]apiFailure)}
	srv := httptest.NewServer(http.HandlerFunc(api.serve))
	t.Cleanup(srv.Close)

	opts = append([]bot.Option{bot.WithServerURL(srv.URL), bot.WithSkipGetMe()}, opts...)
	b, err := bot.New("123:test", opts...)
	require.NoError(t, err)
	return api, b
}

func (a *fakeAPI) serve(w http.ResponseWriter, r *http.Request) {
	method := path.Base(r.URL.Path)
	_ = r.ParseMultipartForm(1 << 20)

	form := make(map[string]string)
	for key, values := range r.Form {
		if len(values) > 0 {
			form[key] = values[0]
		}
	}

	a.mu.Lock()
	a.calls = append(a.calls, apiCall{Method: method, Form: form})
	failure, fail := a.failWith[method]
	a.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if fail {
		w.WriteHeader(failure.code)
		_, _ = fmt.Fprintf(w, `{"ok":false,"error_code":%d,"description":%q}`, failure.code, failure.description)
		return
	}

	switch method {
	case "getUpdates":
		_, _ = w.Write([]byte(`{"ok":true,"result":[]}`))
	case "getMe":
		_, _ = w.Write([]byte(`{"ok":true,"result":{"id":42,"is_bot":true,"first_name":"relay","username":"relay_bot"}}`))
	default:
		_, _ = w.Write([]byte(`{"ok":true,"result":{"message_id":1,"date":0,"chat":{"id":-1003309759576,"type":"channel"}}}`))
	}
}

func (a *fakeAPI) fail(method, description string) {
	a.failCode(method, http.StatusBadRequest, description)
}

func (a *fakeAPI) failCode(method string, code int, description string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.failWith[method] = apiFailure{code: code, description: description}
}

func (a *fakeAPI) recorded() []apiCall {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]apiCall, len(a.calls))
	copy(out, a.calls)
	return out
}

func (a *fakeAPI) methods() []string {
	calls := a.recorded()
	out := make([]string, 0, len(calls))
	for _, call := range calls {
		out = append(out, call.Method)
	}
	return out
}
