// Package transport owns the server configuration registry, the live
// connection cache, and the typed call primitive used by generated code at
// run time. One cached connection serves all calls to a server name; the
// underlying MCP session multiplexes concurrent calls through JSON-RPC
// request ids, so no per-server queue is needed.
package transport

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// ServerConfig describes how to reach one MCP server. Registered entries are
// replaced wholesale on re-registration, never mutated in place.
type ServerConfig struct {
	Type string `json:"type,omitempty"` // "stdio" (default), "http", or "sse"

	// Stdio fields.
	Command string            `json:"command,omitempty"`
	Args    []string          `json:"args,omitempty"`
	Cwd     string            `json:"cwd,omitempty"`
	Env     map[string]string `json:"env,omitempty"`

	// HTTP/SSE fields.
	URL     string            `json:"url,omitempty"`
	Headers map[string]string `json:"headers,omitempty"`
}

// Dialer creates the wire transport for a server configuration. Overridable
// so tests can connect registries to in-process servers.
type Dialer func(cfg ServerConfig) (mcp.Transport, error)

const defaultCallTimeout = 60 * time.Second

type conn struct {
	name    string
	session *mcp.ClientSession
}

// Registry maps server names to configurations and caches one live
// connection per name. Connections are created lazily on first use and
// destroyed only by explicit disconnect.
type Registry struct {
	mu      sync.RWMutex
	configs map[string]ServerConfig
	conns   map[string]*conn

	dialing     singleflight.Group
	dial        Dialer
	callTimeout time.Duration
	log         *zap.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger attaches a logger to the registry.
func WithLogger(log *zap.Logger) Option {
	return func(r *Registry) { r.log = log }
}

// WithCallTimeout sets the overall per-call timeout. Expiry surfaces as a
// CallFailed error.
func WithCallTimeout(d time.Duration) Option {
	return func(r *Registry) { r.callTimeout = d }
}

// WithDialer replaces the transport factory.
func WithDialer(dial Dialer) Option {
	return func(r *Registry) { r.dial = dial }
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		configs:     make(map[string]ServerConfig),
		conns:       make(map[string]*conn),
		dial:        defaultDialer,
		callTimeout: defaultCallTimeout,
		log:         zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RegisterServer upserts a server configuration. An already-cached
// connection for the name is left untouched.
func (r *Registry) RegisterServer(name string, cfg ServerConfig) {
	r.mu.Lock()
	r.configs[name] = cfg
	r.mu.Unlock()
}

// IsConnected reports whether a live connection is cached for the name.
func (r *Registry) IsConnected(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.conns[name]
	return ok
}

// Connect ensures a cached connection exists for the name, dialing if needed.
func (r *Registry) Connect(ctx context.Context, name string) error {
	_, err := r.connection(ctx, name)
	return err
}

// connection returns the cached connection for name, creating it on first
// use. Concurrent first callers share a single in-flight dial.
func (r *Registry) connection(ctx context.Context, name string) (*conn, error) {
	r.mu.RLock()
	c, connected := r.conns[name]
	cfg, registered := r.configs[name]
	r.mu.RUnlock()

	if connected {
		return c, nil
	}
	if !registered {
		return nil, &CallError{
			Kind:    KindUnknownServer,
			Server:  name,
			Message: fmt.Sprintf("server %q is not registered", name),
		}
	}

	v, err, _ := r.dialing.Do(name, func() (any, error) {
		// Re-check under the flight: an earlier caller may have populated
		// the cache before this one queued.
		r.mu.RLock()
		c, ok := r.conns[name]
		r.mu.RUnlock()
		if ok {
			return c, nil
		}

		wire, err := r.dial(cfg)
		if err != nil {
			return nil, fmt.Errorf("create transport for %q: %w", name, err)
		}

		client := mcp.NewClient(&mcp.Implementation{
			Name:    "mcp-bindgen",
			Version: "1.0.0",
		}, &mcp.ClientOptions{})

		session, err := client.Connect(ctx, wire, &mcp.ClientSessionOptions{})
		if err != nil {
			return nil, fmt.Errorf("connect to %q: %w", name, err)
		}

		c = &conn{name: name, session: session}
		r.mu.Lock()
		r.conns[name] = c
		r.mu.Unlock()

		r.log.Debug("connected", zap.String("server", name))
		return c, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*conn), nil
}

// ListTools fetches the tool catalog from a server, connecting lazily.
func (r *Registry) ListTools(ctx context.Context, name string) ([]*mcp.Tool, error) {
	c, err := r.connection(ctx, name)
	if err != nil {
		return nil, err
	}

	result, err := c.session.ListTools(ctx, &mcp.ListToolsParams{})
	if err != nil {
		return nil, fmt.Errorf("list tools on %q: %w", name, err)
	}
	return result.Tools, nil
}

// CallTool performs a raw tool invocation, returning the SDK result without
// classification. Most callers want Call.
func (r *Registry) CallTool(ctx context.Context, server, tool string, args any) (*mcp.CallToolResult, error) {
	c, err := r.connection(ctx, server)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, r.callTimeout)
	defer cancel()

	result, err := c.session.CallTool(ctx, &mcp.CallToolParams{
		Name:      tool,
		Arguments: args,
	})
	if err != nil {
		return nil, &CallError{
			Kind:    KindCallFailed,
			Server:  server,
			Tool:    tool,
			Message: err.Error(),
			Err:     err,
		}
	}
	return result, nil
}

// Disconnect closes and evicts the cached connection for the name. A no-op
// when nothing is connected.
func (r *Registry) Disconnect(name string) error {
	r.mu.Lock()
	c, ok := r.conns[name]
	delete(r.conns, name)
	r.mu.Unlock()

	if !ok {
		return nil
	}
	if err := c.session.Close(); err != nil {
		return fmt.Errorf("close connection to %q: %w", name, err)
	}
	return nil
}

// DisconnectAll closes and evicts every cached connection.
func (r *Registry) DisconnectAll() error {
	r.mu.Lock()
	conns := r.conns
	r.conns = make(map[string]*conn)
	r.mu.Unlock()

	var errs []error
	for name, c := range conns {
		if err := c.session.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close connection to %q: %w", name, err))
		}
	}
	return errors.Join(errs...)
}
