package pkg

import (
	"context"
	"io"
	"net/http"
	"time"
)

// DefaultConsoleTimeout bounds the console GET
const DefaultConsoleTimeout = 5 * time.Second

// ConsoleConfig holds configuration for CheckConsole
type ConsoleConfig struct {
	URL        string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// CheckConsole issues one unauthenticated GET. 200 means the console is
// exposed, any other status means it is absent or protected, and a transport
// error means it is unreachable.
func CheckConsole(ctx context.Context, cfg ConsoleConfig) Result {
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultConsoleTimeout
	}
	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}

	res := Result{Probe: ProbeConsole, URL: cfg.URL}

	reqCtx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, cfg.URL, nil)
	if err != nil {
		res.Status = StatusUnreachable
		res.Error = err.Error()
		return res
	}

	resp, err := client.Do(req)
	if err != nil {
		res.Status = StatusUnreachable
		res.Error = err.Error()
		return res
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64*1024))

	res.StatusCode = resp.StatusCode
	if resp.StatusCode == http.StatusOK {
		res.Status = StatusExposed
	} else {
		res.Status = StatusProtected
	}
	return res
}
