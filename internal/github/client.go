package github

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"time"

	clog "github.com/charmbracelet/log"
)

// userAgent identifies this client on every request.
const userAgent = "perch-cli"

// maxRedirectHops bounds how many 302 hops a single call will follow.
const maxRedirectHops = 5

// Client issues authenticated requests against the GitHub REST API.
// It holds no mutable state between calls and is safe for concurrent use.
type Client struct {
	log   *clog.Logger
	http  *http.Client
	base  string
	creds Credentials
}

// New creates a Client that authenticates every request with the given
// credentials. The timeout applies to each HTTP call; zero means the
// transport default.
func New(creds Credentials, timeout time.Duration) *Client {
	return &Client{
		log: clog.Default().WithPrefix("github"),
		http: &http.Client{
			Timeout: timeout,
			// Redirects are followed manually in execute so the same
			// method, body and credentials are re-sent on each hop.
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		base:  APIBaseURL,
		creds: creds,
	}
}

// execute sends one API request and normalizes the outcome: 200/201
// yield the raw response body, 302 is followed (up to maxRedirectHops)
// with identical method/body/credentials, anything else becomes a
// *RequestError. Transport failures are returned wrapped, distinct
// from HTTP-status errors.
func (c *Client) execute(method string, e Endpoint, body []byte) ([]byte, error) {
	url := buildURL(c.base, e)

	for hop := 0; ; hop++ {
		c.log.Debug("sending request", "method", method, "url", url)

		var payload io.Reader
		if body != nil {
			payload = bytes.NewReader(body)
		}

		req, err := http.NewRequest(method, url, payload)
		if err != nil {
			return nil, fmt.Errorf("github: build %s %s: %w", method, url, err)
		}
		req.Header.Set("User-Agent", userAgent)
		req.Header.Set("Accept", "application/vnd.github.v3+json")
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		c.creds.apply(req)

		resp, err := c.http.Do(req)
		if err != nil {
			return nil, fmt.Errorf("github: %s %s: %w", method, url, err)
		}

		respBody, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("github: read response of %s %s: %w", method, url, err)
		}

		switch resp.StatusCode {
		case http.StatusOK, http.StatusCreated:
			return respBody, nil
		case http.StatusFound:
			location := resp.Header.Get("Location")
			if location == "" {
				return nil, &RequestError{Method: method, URL: url, Status: resp.StatusCode, Header: resp.Header, Body: respBody}
			}
			if hop >= maxRedirectHops {
				return nil, fmt.Errorf("github: %s %s: more than %d redirects", method, url, maxRedirectHops)
			}
			url = location
		default:
			return nil, &RequestError{Method: method, URL: url, Status: resp.StatusCode, Header: resp.Header, Body: respBody}
		}
	}
}
