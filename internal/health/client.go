package health

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// IsClientMode is true when the program is launched as the ephemeral
// healthcheck client querying the long lived instance.
func IsClientMode(args []string) bool {
	return len(args) > 1 && args[1] == "healthcheck"
}

type Client struct {
	*http.Client
}

func NewClient() *Client {
	const timeout = 5 * time.Second
	return &Client{
		Client: &http.Client{Timeout: timeout},
	}
}

// Query sends an HTTP request to the health server of the other
// instance of the program.
func (c *Client) Query(ctx context.Context, address string) error {
	url := "http://" + address
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := c.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusOK {
		return nil
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s: reading response body: %w", resp.Status, err)
	}
	return fmt.Errorf("%s: %s", resp.Status, string(b))
}
