package httptesting

import (
	"net/http"
)

// EchoSave answers every request with fixed content and stores the last request in saveTo.
type EchoSave struct {
	saveTo  **http.Request
	content string
	err     error
}

func (st *EchoSave) RoundTrip(req *http.Request) (*http.Response, error) {
	if st.saveTo != nil {
		*st.saveTo = req
	}

	if st.err != nil {
		return nil, st.err
	}

	resp := BuildResponseString(http.StatusOK, st.content)
	SetHeader(resp, "Content-Type", "application/json")
	return resp, nil
}

func HttpClientWithContent(content string) *http.Client {
	transport := EchoSave{content: content}
	return &http.Client{Transport: &transport}
}

func HttpClientWithError(err error) *http.Client {
	transport := EchoSave{err: err}
	return &http.Client{Transport: &transport}
}

// HttpClientSaver stores the outgoing *http.Request in the caller's variable.
func HttpClientSaver(saved **http.Request, content string) *http.Client {
	transport := EchoSave{saveTo: saved, content: content}
	return &http.Client{Transport: &transport}
}
