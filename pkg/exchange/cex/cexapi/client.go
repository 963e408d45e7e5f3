package cexapi

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/c9s/requestgen"
	"github.com/sirupsen/logrus"
	"github.com/valyala/fastjson"

	"github.com/c9s/cexio/pkg/types"
)

const defaultHTTPTimeout = time.Second * 15

const RestBaseURL = "https://cex.io/api/"

var log = logrus.WithFields(logrus.Fields{
	"exchange": "cex",
	"module":   "cexapi",
})

type RestClient struct {
	requestgen.BaseAPIClient

	key, secret, uid string

	nonce *Nonce
}

func NewClient() *RestClient {
	u, err := url.Parse(RestBaseURL)
	if err != nil {
		panic(err)
	}

	return &RestClient{
		BaseAPIClient: requestgen.BaseAPIClient{
			BaseURL: u,
			HttpClient: &http.Client{
				Timeout: defaultHTTPTimeout,
			},
		},
		nonce: NewNonce(),
	}
}

// SetBaseURL points the client at another API root, e.g. a proxy.
func (c *RestClient) SetBaseURL(baseURL string) error {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	u, err := url.Parse(baseURL)
	if err != nil {
		return err
	}

	c.BaseURL = u
	return nil
}

func (c *RestClient) Auth(key, secret, uid string) *RestClient {
	c.key = key
	// pragma: allowlist nextline secret
	c.secret = secret
	c.uid = uid
	return c
}

func (c *RestClient) HasCredentials() bool {
	return c.key != "" && c.secret != "" && c.uid != ""
}

// NewRequest creates a public request. params are sent as the query string.
func (c *RestClient) NewRequest(ctx context.Context, method, refURL string, params url.Values) (*http.Request, error) {
	rel, err := url.Parse(refURL)
	if err != nil {
		return nil, err
	}

	if len(params) > 0 {
		rel.RawQuery = params.Encode()
	}

	pathURL := c.BaseURL.ResolveReference(rel)
	return http.NewRequestWithContext(ctx, method, pathURL.String(), nil)
}

// NewAuthenticatedRequest creates a signed private request.
// The credentials, nonce and signature are form-encoded together with params in the body.
func (c *RestClient) NewAuthenticatedRequest(ctx context.Context, method, refURL string, params url.Values) (*http.Request, error) {
	if !c.HasCredentials() {
		return nil, types.ErrMissingCredentials
	}

	rel, err := url.Parse(refURL)
	if err != nil {
		return nil, err
	}

	pathURL := c.BaseURL.ResolveReference(rel)

	nonce := c.nonce.GetString()

	form := url.Values{}
	for k, vs := range params {
		form[k] = append([]string(nil), vs...)
	}
	form.Set("key", c.key)
	form.Set("signature", Sign(nonce, c.uid, c.key, c.secret))
	form.Set("nonce", nonce)

	req, err := http.NewRequestWithContext(ctx, method, pathURL.String(), bytes.NewBufferString(form.Encode()))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	return req, nil
}

// SendRequest sends the request and reads the whole response body.
func (c *RestClient) SendRequest(req *http.Request) (*requestgen.Response, error) {
	resp, err := c.HttpClient.Do(req)
	if err != nil {
		return nil, err
	}

	response, err := requestgen.NewResponse(resp)
	if err != nil {
		return response, err
	}

	if response.IsError() {
		return response, fmt.Errorf("cex api %s %s returned http status %d: %s",
			req.Method, req.URL.Path, response.StatusCode, string(response.Body))
	}

	return response, nil
}

// Call builds, sends and classifies one request to the given endpoint.
// Params named by the endpoint's path placeholders are substituted into the path,
// the rest become the query string of public requests or the form body of private ones.
func (c *RestClient) Call(ctx context.Context, endpoint Endpoint, params url.Values) (*fastjson.Value, error) {
	def, ok := endpoint.definition()
	if !ok {
		return nil, fmt.Errorf("unknown cex endpoint %d", endpoint)
	}

	path, rest, err := implodeParams(def.Path, params)
	if err != nil {
		return nil, err
	}

	var req *http.Request
	if def.Private {
		req, err = c.NewAuthenticatedRequest(ctx, def.Method, path, rest)
	} else {
		req, err = c.NewRequest(ctx, def.Method, path, rest)
	}
	if err != nil {
		return nil, err
	}

	log.Debugf("%s %s", def.Method, req.URL.Path)

	start := time.Now()
	response, err := c.SendRequest(req)
	if err != nil {
		recordRequestMetrics(endpoint, start, requestStatusError)
		return nil, err
	}

	v, err := ClassifyResponse(response.Body)
	if err != nil {
		recordRequestMetrics(endpoint, start, requestStatusRejected)
		return nil, err
	}

	recordRequestMetrics(endpoint, start, requestStatusOK)
	return v, nil
}

// Sign computes the request signature: the upper-case hex HMAC-SHA256 of nonce, uid and api key, keyed by the secret.
func Sign(nonce, uid, key, secret string) string {
	sig := hmac.New(sha256.New, []byte(secret))
	_, _ = sig.Write([]byte(nonce + uid + key))
	return strings.ToUpper(hex.EncodeToString(sig.Sum(nil)))
}
