package mock

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
)

type recordedRequest struct {
	body   map[string]any
	header http.Header
}

type cannedResponse struct {
	status int
	body   map[string]any
}

// route holds what one method+path has seen and how it should answer.
type route struct {
	requests []recordedRequest
	scripted map[int]cannedResponse // Keyed by request index
	fallback *cannedResponse
}

func (r *route) responseFor(index int) cannedResponse {
	if resp, ok := r.scripted[index]; ok {
		return resp
	}
	if r.fallback != nil {
		return *r.fallback
	}
	return cannedResponse{status: http.StatusOK, body: map[string]any{}}
}

// ApiMock is a recording HTTP server standing in for third-party APIs such as Resend.
type ApiMock struct {
	mu     sync.Mutex
	server *httptest.Server
	routes map[string]*route
}

func NewApiServer() *ApiMock {
	return &ApiMock{routes: map[string]*route{}}
}

func (a *ApiMock) Start() {
	a.server = httptest.NewServer(http.HandlerFunc(a.serve))
}

func (a *ApiMock) serve(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	defer a.mu.Unlock()

	body := map[string]any{}
	if raw, err := io.ReadAll(r.Body); err == nil && len(raw) > 0 {
		_ = json.Unmarshal(raw, &body)
	}

	rt := a.route(r.Method, r.URL.Path)
	index := len(rt.requests)
	rt.requests = append(rt.requests, recordedRequest{body: body, header: r.Header.Clone()})

	resp := rt.responseFor(index)
	if resp.status == 0 {
		resp.status = http.StatusOK
	}
	payload, _ := json.Marshal(resp.body)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.status)
	_, _ = w.Write(payload)
}

// route returns the entry for method+path, creating it. Callers hold a.mu.
func (a *ApiMock) route(method, path string) *route {
	key := method + " " + path
	rt, ok := a.routes[key]
	if !ok {
		rt = &route{scripted: map[int]cannedResponse{}}
		a.routes[key] = rt
	}
	return rt
}

// Close shuts the server down.
func (a *ApiMock) Close() {
	if a.server != nil {
		a.server.Close()
	}
}

func (a *ApiMock) GetUrl() string {
	if a.server == nil {
		return ""
	}
	return a.server.URL
}

// SetResponse scripts the answer to the index-th request on method+path.
// An index of -1 sets the answer used when nothing is scripted.
func (a *ApiMock) SetResponse(index int, method, path string, status int, response map[string]any) {
	a.mu.Lock()
	defer a.mu.Unlock()

	rt := a.route(method, path)
	resp := cannedResponse{status: status, body: response}
	if index == -1 {
		rt.fallback = &resp
		return
	}
	rt.scripted[index] = resp
}

// ClearResponses forgets recorded requests and scripted answers for method+path.
func (a *ApiMock) ClearResponses(method, path string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	delete(a.routes, method+" "+path)
}

// RequestCount returns how many requests hit method+path.
func (a *ApiMock) RequestCount(method, path string) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	if rt, ok := a.routes[method+" "+path]; ok {
		return len(rt.requests)
	}
	return 0
}

// GetRequestBody returns the decoded JSON body of the index-th request, or nil.
func (a *ApiMock) GetRequestBody(method, path string, index int) map[string]any {
	if req, ok := a.request(method, path, index); ok {
		return req.body
	}
	return nil
}

// GetRequestHeader returns header name of the index-th request, or "".
func (a *ApiMock) GetRequestHeader(method, path string, index int, name string) string {
	if req, ok := a.request(method, path, index); ok {
		return req.header.Get(name)
	}
	return ""
}

func (a *ApiMock) request(method, path string, index int) (recordedRequest, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	rt, ok := a.routes[method+" "+path]
	if !ok || index < 0 || index >= len(rt.requests) {
		return recordedRequest{}, false
	}
	return rt.requests[index], true
}
