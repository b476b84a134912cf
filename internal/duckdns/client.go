// Package duckdns implements the DuckDNS update wire protocol:
// a GET request on the fixed update endpoint answered by a plain text
// body of up to four newline separated fields.
package duckdns

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

const defaultEndpoint = "https://www.duckdns.org/update"

type Client struct {
	httpClient *http.Client
	endpoint   string
}

func New(httpClient *http.Client) *Client {
	return &Client{
		httpClient: httpClient,
		endpoint:   defaultEndpoint,
	}
}

// Request holds the query parameters for one update call.
// An empty IPv4 or IPv6 omits the corresponding parameter entirely,
// leaving the provider's record for that family untouched.
type Request struct {
	Domains string // comma separated subdomain labels
	Token   string
	IPv4    string
	IPv6    string
}

// Response is the parsed verbose response of a successful update call.
type Response struct {
	// IPv4 is the address confirmed as now active, empty when the
	// provider answered NOCHANGE or sent no value.
	IPv4 string
	IPv6 string
	// Status is the update status token, UPDATED when the provider
	// sent none.
	Status string
}

func (c *Client) Update(ctx context.Context, request Request) (
	response Response, err error) {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return Response{}, fmt.Errorf("parsing endpoint: %w", err)
	}
	values := url.Values{}
	values.Set("domains", request.Domains)
	values.Set("token", request.Token)
	values.Set("verbose", "true")
	if request.IPv4 != "" {
		values.Set("ip", request.IPv4)
	}
	if request.IPv6 != "" {
		values.Set("ipv6", request.IPv6)
	}
	u.RawQuery = values.Encode()

	httpRequest, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return Response{}, fmt.Errorf("creating http request: %w", err)
	}

	httpResponse, err := c.httpClient.Do(httpRequest)
	if err != nil {
		return Response{}, err
	}
	defer httpResponse.Body.Close()

	b, err := io.ReadAll(httpResponse.Body)
	if err != nil {
		return Response{}, fmt.Errorf("reading response body: %w", err)
	}

	if httpResponse.StatusCode != http.StatusOK {
		return Response{}, fmt.Errorf("%w: %d: %s",
			ErrStatusNotOK, httpResponse.StatusCode, toSingleLine(string(b)))
	}

	return parseBody(string(b))
}

// parseBody interprets the up to four lines of the verbose body:
// "OK", the confirmed IPv4, the confirmed IPv6 and the status token.
func parseBody(body string) (response Response, err error) {
	lines := strings.Split(strings.TrimSpace(body), "\n")
	if lines[0] != "OK" {
		return Response{}, fmt.Errorf("%w: %s",
			ErrInvalidResponse, toSingleLine(body))
	}

	response.Status = "UPDATED"
	const (
		ipv4Line   = 1
		ipv6Line   = 2
		statusLine = 3
	)
	for i, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		switch {
		case i == ipv4Line && line != "" && line != "NOCHANGE":
			response.IPv4 = line
		case i == ipv6Line && line != "" && line != "NOCHANGE":
			response.IPv6 = line
		case i == statusLine && line != "":
			response.Status = line
		}
	}
	return response, nil
}

func toSingleLine(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), "\n", " | ")
}
