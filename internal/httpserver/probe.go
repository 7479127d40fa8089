package httpserver

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
)

// probeClient has no timeout of its own; the pinger bounds every probe through ctx.
var probeClient = &http.Client{}

// probe requests path from the server listening on addr and expects a 2xx answer.
func probe(ctx context.Context, addr, path string) error {
	target, err := loopbackURL(addr, path)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, http.NoBody)
	if err != nil {
		return fmt.Errorf("build probe request: %w", err)
	}

	resp, err := probeClient.Do(req)
	if err != nil {
		return fmt.Errorf("probe %s: %w", target, err)
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("probe %s: %w: status %d", target, ErrProbeFailed, resp.StatusCode)
	}

	return nil
}

// loopbackURL turns a listener address into a URL on the same port. Wildcard
// listeners are reached through 127.0.0.1.
func loopbackURL(addr, path string) (string, error) {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return "", fmt.Errorf("split listener address %q: %w", addr, err)
	}

	if ip := net.ParseIP(host); host == "" || (ip != nil && ip.IsUnspecified()) {
		host = "127.0.0.1"
	}

	return (&url.URL{Scheme: "http", Host: net.JoinHostPort(host, port), Path: path}).String(), nil
}
