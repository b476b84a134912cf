package publicip

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

var (
	ErrIPNotFound    = errors.New("public IP address not found")
	ErrStatusNotOK   = errors.New("HTTP status code is not valid")
	ErrResponseEmpty = errors.New("response body is empty")
)

// IPv4 returns the host's public IPv4 address as the trimmed response
// body of the first echo service to answer. The string is not checked
// to be a syntactically valid address; the DNS provider validates it.
func (f *Fetcher) IPv4(ctx context.Context) (ip string, err error) {
	return f.fetchFirst(ctx, f.ipv4URLs, familyIPv4)
}

// IPv6 returns the host's public IPv6 address, see IPv4.
func (f *Fetcher) IPv6(ctx context.Context) (ip string, err error) {
	return f.fetchFirst(ctx, f.ipv6URLs, familyIPv6)
}

func (f *Fetcher) fetchFirst(ctx context.Context, urls []string,
	family ipFamily) (ip string, err error) {
	for _, url := range urls {
		ip, err = f.fetch(ctx, url)
		if err != nil {
			f.logger.Warn("getting public IP from " + url + ": " + err.Error())
			continue
		}
		f.logger.Info("public IP from " + url + ": " + ip)
		return ip, nil
	}

	if f.dns != nil {
		ip, err = f.dns.fetch(ctx, family)
		if err == nil {
			f.logger.Info("public IP from DNS: " + ip)
			return ip, nil
		}
		f.logger.Warn("getting public IP over DNS: " + err.Error())
	}

	return "", fmt.Errorf("%w: all %d services failed",
		ErrIPNotFound, len(urls))
}

func (f *Fetcher) fetch(ctx context.Context, url string) (ip string, err error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("creating http request: %w", err)
	}

	response, err := f.client.Do(request)
	if err != nil {
		return "", err
	}
	defer response.Body.Close()

	b, err := io.ReadAll(response.Body)
	if err != nil {
		return "", fmt.Errorf("reading response body: %w", err)
	}

	if response.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: %d", ErrStatusNotOK, response.StatusCode)
	}

	ip = strings.TrimSpace(string(b))
	if ip == "" {
		return "", fmt.Errorf("%w", ErrResponseEmpty)
	}
	return ip, nil
}
