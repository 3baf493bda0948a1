package transport

import (
	"fmt"
	"net/http"
	"os"
	"os/exec"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// defaultDialer builds the wire transport for a server configuration. An
// empty type means stdio.
func defaultDialer(cfg ServerConfig) (mcp.Transport, error) {
	switch cfg.Type {
	case "", "stdio":
		return stdioTransport(cfg)
	case "http":
		return httpTransport(cfg), nil
	case "sse":
		return sseTransport(cfg), nil
	default:
		return nil, fmt.Errorf("unsupported transport type %q", cfg.Type)
	}
}

func stdioTransport(cfg ServerConfig) (mcp.Transport, error) {
	if cfg.Command == "" {
		return nil, fmt.Errorf("stdio transport requires a command")
	}

	cmd := exec.Command(cfg.Command, cfg.Args...)
	if cfg.Cwd != "" {
		cmd.Dir = cfg.Cwd
	}
	if len(cfg.Env) > 0 {
		cmd.Env = os.Environ()
		for k, v := range cfg.Env {
			cmd.Env = append(cmd.Env, fmt.Sprintf("%s=%s", k, v))
		}
	}

	return &mcp.CommandTransport{Command: cmd}, nil
}

// headerRoundTripper injects configured headers into every request.
type headerRoundTripper struct {
	headers map[string]string
	next    http.RoundTripper
}

func (hrt *headerRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	for k, v := range hrt.headers {
		req.Header.Set(k, v)
	}
	return hrt.next.RoundTrip(req)
}

func httpTransport(cfg ServerConfig) mcp.Transport {
	client := &http.Client{}
	if len(cfg.Headers) > 0 {
		client.Transport = &headerRoundTripper{
			headers: cfg.Headers,
			next:    http.DefaultTransport,
		}
	}

	return &mcp.StreamableClientTransport{
		Endpoint:   cfg.URL,
		HTTPClient: client,
	}
}

func sseTransport(cfg ServerConfig) mcp.Transport {
	return &mcp.SSEClientTransport{
		Endpoint: cfg.URL,
	}
}
