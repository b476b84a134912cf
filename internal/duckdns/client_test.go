package duckdns

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Client_Update(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		request    Request
		status     int
		body       string
		query      url.Values // expected query received by the server
		response   Response
		errWrapped error
		errMessage string
	}{
		"all parameters set": {
			request: Request{
				Domains: "example1,example2",
				Token:   "secret",
				IPv4:    "1.2.3.4",
				IPv6:    "::1",
			},
			status: http.StatusOK,
			body:   "OK",
			query: url.Values{
				"domains": []string{"example1,example2"},
				"token":   []string{"secret"},
				"verbose": []string{"true"},
				"ip":      []string{"1.2.3.4"},
				"ipv6":    []string{"::1"},
			},
			response: Response{Status: "UPDATED"},
		},
		"ipv6 only omits the ip parameter": {
			request: Request{
				Domains: "example",
				Token:   "secret",
				IPv6:    "::1",
			},
			status: http.StatusOK,
			body:   "OK",
			query: url.Values{
				"domains": []string{"example"},
				"token":   []string{"secret"},
				"verbose": []string{"true"},
				"ipv6":    []string{"::1"},
			},
			response: Response{Status: "UPDATED"},
		},
		"no addresses omits both parameters": {
			request: Request{
				Domains: "example",
				Token:   "secret",
			},
			status: http.StatusOK,
			body:   "OK",
			query: url.Values{
				"domains": []string{"example"},
				"token":   []string{"secret"},
				"verbose": []string{"true"},
			},
			response: Response{Status: "UPDATED"},
		},
		"verbose success": {
			request: Request{Domains: "example", Token: "secret", IPv4: "1.2.3.4"},
			status:  http.StatusOK,
			body:    "OK\n1.2.3.4\n\nUPDATED",
			query: url.Values{
				"domains": []string{"example"},
				"token":   []string{"secret"},
				"verbose": []string{"true"},
				"ip":      []string{"1.2.3.4"},
			},
			response: Response{IPv4: "1.2.3.4", Status: "UPDATED"},
		},
		"nochange lines give no addresses": {
			request: Request{Domains: "example", Token: "secret"},
			status:  http.StatusOK,
			body:    "OK\nNOCHANGE\nNOCHANGE",
			query: url.Values{
				"domains": []string{"example"},
				"token":   []string{"secret"},
				"verbose": []string{"true"},
			},
			response: Response{Status: "UPDATED"},
		},
		"both addresses confirmed": {
			request: Request{Domains: "example", Token: "secret", IPv4: "1.2.3.4", IPv6: "::1"},
			status:  http.StatusOK,
			body:    "OK\n1.2.3.4\n::1\nUPDATED",
			query: url.Values{
				"domains": []string{"example"},
				"token":   []string{"secret"},
				"verbose": []string{"true"},
				"ip":      []string{"1.2.3.4"},
				"ipv6":    []string{"::1"},
			},
			response: Response{IPv4: "1.2.3.4", IPv6: "::1", Status: "UPDATED"},
		},
		"KO response": {
			request:    Request{Domains: "example", Token: "bad"},
			status:     http.StatusOK,
			body:       "KO",
			errWrapped: ErrInvalidResponse,
			errMessage: "invalid response: KO",
		},
		"server error": {
			request:    Request{Domains: "example", Token: "secret"},
			status:     http.StatusInternalServerError,
			body:       "oops",
			errWrapped: ErrStatusNotOK,
			errMessage: "HTTP status code is not valid: 500: oops",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(
				func(w http.ResponseWriter, r *http.Request) {
					if testCase.query != nil {
						assert.Equal(t, testCase.query, r.URL.Query())
					}
					w.WriteHeader(testCase.status)
					_, err := w.Write([]byte(testCase.body))
					assert.NoError(t, err)
				}))
			t.Cleanup(server.Close)

			client := New(server.Client())
			client.endpoint = server.URL

			response, err := client.Update(context.Background(), testCase.request)

			assert.ErrorIs(t, err, testCase.errWrapped)
			if testCase.errWrapped != nil {
				assert.EqualError(t, err, testCase.errMessage)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.response, response)
		})
	}
}

func Test_Client_Update_networkError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {}))
	serverURL := server.URL
	server.Close() // refuse connections

	client := New(&http.Client{})
	client.endpoint = serverURL

	_, err := client.Update(context.Background(), Request{
		Domains: "example", Token: "secret",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}
