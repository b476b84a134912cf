package publicip

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testLogger struct{}

func (l testLogger) Info(_ string) {}
func (l testLogger) Warn(_ string) {}

func boolPtr(b bool) *bool { return &b }

func Test_Fetcher_IPv4(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		handlers   []http.HandlerFunc // one server per handler, tried in order
		ip         string
		errWrapped error
	}{
		"first service answers": {
			handlers: []http.HandlerFunc{
				func(w http.ResponseWriter, r *http.Request) {
					_, _ = w.Write([]byte("1.2.3.4\n"))
				},
			},
			ip: "1.2.3.4",
		},
		"first service fails, second answers": {
			handlers: []http.HandlerFunc{
				func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(http.StatusInternalServerError)
				},
				func(w http.ResponseWriter, r *http.Request) {
					_, _ = w.Write([]byte("  5.6.7.8  "))
				},
			},
			ip: "5.6.7.8",
		},
		"empty body is a failure": {
			handlers: []http.HandlerFunc{
				func(w http.ResponseWriter, r *http.Request) {},
			},
			errWrapped: ErrIPNotFound,
		},
		"all services fail": {
			handlers: []http.HandlerFunc{
				func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(http.StatusNotFound)
				},
				func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(http.StatusInternalServerError)
				},
				func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(http.StatusBadGateway)
				},
			},
			errWrapped: ErrIPNotFound,
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			urls := make([]string, len(testCase.handlers))
			for i, handler := range testCase.handlers {
				server := httptest.NewServer(handler)
				t.Cleanup(server.Close)
				urls[i] = server.URL
			}

			fetcher := New(Settings{
				Timeout:    time.Second,
				IPv4URLs:   urls,
				DNSEnabled: boolPtr(false),
				Logger:     testLogger{},
			})

			ip, err := fetcher.IPv4(context.Background())

			assert.ErrorIs(t, err, testCase.errWrapped)
			if testCase.errWrapped != nil {
				assert.Empty(t, ip)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.ip, ip)
		})
	}
}

func Test_Fetcher_IPv4_doesNotValidate(t *testing.T) {
	t.Parallel()

	// the provider validates addresses, not us, so any non empty
	// trimmed body is returned as is
	server := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("not-an-ip"))
		}))
	t.Cleanup(server.Close)

	fetcher := New(Settings{
		Timeout:    time.Second,
		IPv4URLs:   []string{server.URL},
		DNSEnabled: boolPtr(false),
		Logger:     testLogger{},
	})

	ip, err := fetcher.IPv4(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "not-an-ip", ip)
}

func Test_Settings_SetDefaults(t *testing.T) {
	t.Parallel()

	var settings Settings
	settings.SetDefaults()

	assert.Equal(t, 5*time.Second, settings.Timeout)
	assert.GreaterOrEqual(t, len(settings.IPv4URLs), 3)
	assert.GreaterOrEqual(t, len(settings.IPv6URLs), 3)
	require.NotNil(t, settings.DNSEnabled)
	assert.True(t, *settings.DNSEnabled)
}
