package httptesting

import (
	"net/http"
	"strings"

	"github.com/pkg/errors"
)

type RoundTripFunc func(req *http.Request) (*http.Response, error)

// MockTransport dispatches requests to handlers registered by method and URL path.
type MockTransport struct {
	getHandlers  map[string]RoundTripFunc
	postHandlers map[string]RoundTripFunc

	// Requests records every request that reached a handler, in order.
	Requests []*http.Request
}

func (transport *MockTransport) GET(path string, f RoundTripFunc) {
	if transport.getHandlers == nil {
		transport.getHandlers = make(map[string]RoundTripFunc)
	}

	transport.getHandlers[path] = f
}

func (transport *MockTransport) POST(path string, f RoundTripFunc) {
	if transport.postHandlers == nil {
		transport.postHandlers = make(map[string]RoundTripFunc)
	}

	transport.postHandlers[path] = f
}

func (transport *MockTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	var handlers map[string]RoundTripFunc

	switch strings.ToUpper(req.Method) {
	case http.MethodGet:
		handlers = transport.getHandlers
	case http.MethodPost:
		handlers = transport.postHandlers

	default:
		return nil, errors.Errorf("unsupported mock transport request method: %s", req.Method)
	}

	f, ok := handlers[req.URL.Path]
	if !ok {
		return nil, errors.Errorf("roundtrip mock to %s %s is not defined", req.Method, req.URL.Path)
	}

	transport.Requests = append(transport.Requests, req)
	return f(req)
}

func (transport *MockTransport) Client() *http.Client {
	return &http.Client{Transport: transport}
}

// ReplyString returns a handler that always answers with the given body and status 200.
func ReplyString(content string) RoundTripFunc {
	return func(_ *http.Request) (*http.Response, error) {
		resp := BuildResponseString(http.StatusOK, content)
		SetHeader(resp, "Content-Type", "application/json")
		return resp, nil
	}
}
