package deploy

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"
)

// CheckEndpoint probes the document server's healthcheck URL once.
// The endpoint answers a literal "true" once the server is ready.
func CheckEndpoint(ctx context.Context, url string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("healthcheck returned %s", resp.Status)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, 64))
	if err != nil {
		return err
	}
	if strings.TrimSpace(string(body)) != "true" {
		return fmt.Errorf("healthcheck not ready: %q", strings.TrimSpace(string(body)))
	}
	return nil
}

// WaitHealthy polls the healthcheck URL with exponential backoff until the
// server reports ready or the timeout elapses. The document server takes a
// while to warm up after the container starts.
func WaitHealthy(ctx context.Context, url string, timeout time.Duration) error {
	_, err := backoff.Retry(ctx, func() (struct{}, error) {
		return struct{}{}, CheckEndpoint(ctx, url)
	},
		backoff.WithBackOff(backoff.NewExponentialBackOff()),
		backoff.WithMaxElapsedTime(timeout),
	)
	if err != nil {
		return fmt.Errorf("document server did not become healthy within %s: %w", timeout, err)
	}
	return nil
}
