package update

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/duckup/duckup/internal/duckdns"
	"github.com/duckup/duckup/internal/models"
	"github.com/duckup/duckup/internal/update/mock_update"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

type testLogger struct{}

func (l testLogger) Debug(_ string) {}
func (l testLogger) Info(_ string)  {}
func (l testLogger) Warn(_ string)  {}
func (l testLogger) Error(_ string) {}

func Test_Updater_Update(t *testing.T) {
	t.Parallel()

	errTest := errors.New("test error")
	testTime := time.Date(2026, time.August, 25, 13, 30, 0, 0,
		time.FixedZone("CEST", 2*60*60))

	testCases := map[string]struct {
		settings     models.Settings
		discoveredIP string
		discoveryErr error
		noDiscovery  bool
		request      duckdns.Request
		response     duckdns.Response
		clientErr    error
		result       models.Result
	}{
		"discovered ipv4": {
			settings: models.Settings{
				Domains:    "example",
				Token:      "secret",
				UpdateIPv4: true,
			},
			discoveredIP: "9.9.9.9",
			request: duckdns.Request{
				Domains: "example",
				Token:   "secret",
				IPv4:    "9.9.9.9",
			},
			response: duckdns.Response{
				IPv4:   "9.9.9.9",
				Status: "UPDATED",
			},
			result: models.Result{
				Success:   true,
				Message:   "Update successful: UPDATED",
				IPv4:      "9.9.9.9",
				Timestamp: testTime.UTC(),
			},
		},
		"custom ipv4 skips discovery": {
			settings: models.Settings{
				Domains:       "example",
				Token:         "secret",
				UpdateIPv4:    true,
				UseCustomIPv4: true,
				CustomIPv4:    "1.2.3.4",
			},
			noDiscovery: true,
			request: duckdns.Request{
				Domains: "example",
				Token:   "secret",
				IPv4:    "1.2.3.4",
			},
			response: duckdns.Response{
				IPv4:   "1.2.3.4",
				Status: "NOCHANGE",
			},
			result: models.Result{
				Success:   true,
				Message:   "Update successful: NOCHANGE",
				IPv4:      "1.2.3.4",
				Timestamp: testTime.UTC(),
			},
		},
		"ipv4 disabled": {
			settings: models.Settings{
				Domains:    "example",
				Token:      "secret",
				UpdateIPv6: true,
				CustomIPv6: "::1",
			},
			noDiscovery: true,
			request: duckdns.Request{
				Domains: "example",
				Token:   "secret",
				IPv6:    "::1",
			},
			response: duckdns.Response{
				IPv6:   "::1",
				Status: "UPDATED",
			},
			result: models.Result{
				Success:   true,
				Message:   "Update successful: UPDATED",
				IPv6:      "::1",
				Timestamp: testTime.UTC(),
			},
		},
		"discovery failure omits ipv4": {
			settings: models.Settings{
				Domains:    "example",
				Token:      "secret",
				UpdateIPv4: true,
			},
			discoveryErr: errTest,
			request: duckdns.Request{
				Domains: "example",
				Token:   "secret",
			},
			response: duckdns.Response{
				Status: "UPDATED",
			},
			result: models.Result{
				Success:   true,
				Message:   "Update successful: UPDATED",
				Timestamp: testTime.UTC(),
			},
		},
		"ipv6 without custom address is omitted": {
			settings: models.Settings{
				Domains:    "example",
				Token:      "secret",
				UpdateIPv4: true,
				UpdateIPv6: true,
			},
			discoveredIP: "9.9.9.9",
			request: duckdns.Request{
				Domains: "example",
				Token:   "secret",
				IPv4:    "9.9.9.9",
			},
			response: duckdns.Response{
				IPv4:   "9.9.9.9",
				Status: "UPDATED",
			},
			result: models.Result{
				Success:   true,
				Message:   "Update successful: UPDATED",
				IPv4:      "9.9.9.9",
				Timestamp: testTime.UTC(),
			},
		},
		"invalid response": {
			settings: models.Settings{
				Domains:    "example",
				Token:      "bad",
				UpdateIPv4: true,
			},
			discoveredIP: "9.9.9.9",
			request: duckdns.Request{
				Domains: "example",
				Token:   "bad",
				IPv4:    "9.9.9.9",
			},
			clientErr: duckdns.ErrInvalidResponse,
			result: models.Result{
				Message:   "Update failed: Invalid response",
				Timestamp: testTime.UTC(),
			},
		},
		"status not ok": {
			settings: models.Settings{
				Domains:    "example",
				Token:      "secret",
				UpdateIPv4: true,
			},
			discoveredIP: "9.9.9.9",
			request: duckdns.Request{
				Domains: "example",
				Token:   "secret",
				IPv4:    "9.9.9.9",
			},
			clientErr: duckdns.ErrStatusNotOK,
			result: models.Result{
				Message:   "Update failed: HTTP status code is not valid",
				Timestamp: testTime.UTC(),
			},
		},
		"network error": {
			settings: models.Settings{
				Domains:    "example",
				Token:      "secret",
				UpdateIPv4: true,
			},
			discoveredIP: "9.9.9.9",
			request: duckdns.Request{
				Domains: "example",
				Token:   "secret",
				IPv4:    "9.9.9.9",
			},
			clientErr: errTest,
			result: models.Result{
				Message:   "Network error: test error",
				Timestamp: testTime.UTC(),
			},
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			ctx := context.Background()

			client := mock_update.NewMockDNSClient(ctrl)
			client.EXPECT().Update(ctx, testCase.request).
				Return(testCase.response, testCase.clientErr)

			ipGetter := mock_update.NewMockPublicIPFetcher(ctrl)
			if !testCase.noDiscovery {
				ipGetter.EXPECT().IPv4(ctx).
					Return(testCase.discoveredIP, testCase.discoveryErr)
			}

			timeNow := func() time.Time { return testTime }
			updater := NewUpdater(client, ipGetter, testLogger{}, timeNow)

			result := updater.Update(ctx, testCase.settings)

			assert.Equal(t, testCase.result, result)
		})
	}
}
