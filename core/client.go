package core

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/url"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"pangea-client/internal/envutil"
	"pangea-client/internal/logging"
)

const wsPath = "v1/websocket"

// ClientBuilder configures and dials a Client, pulling its defaults from
// the environment so that most callers only need to call Build.
type ClientBuilder struct {
	endpoint string
	secure   bool
	username string
	password string
	logger   *logrus.Logger
}

// NewClientBuilder returns a builder seeded with the documented defaults:
// endpoint from PANGEA_URL (else "app.pangea.foundation"), secure true,
// and credentials from PANGEA_USERNAME/PANGEA_PASSWORD.
func NewClientBuilder() *ClientBuilder {
	return &ClientBuilder{
		endpoint: envutil.OrDefault("PANGEA_URL", "app.pangea.foundation"),
		secure:   true,
		username: envutil.OrDefault("PANGEA_USERNAME", ""),
		password: envutil.OrDefault("PANGEA_PASSWORD", ""),
	}
}

// Endpoint overrides the server host (no scheme, no path).
func (b *ClientBuilder) Endpoint(endpoint string) *ClientBuilder {
	b.endpoint = endpoint
	return b
}

// Credential sets HTTP Basic credentials for the upgrade request.
func (b *ClientBuilder) Credential(username, password string) *ClientBuilder {
	b.username = username
	b.password = password
	return b
}

// Secure toggles wss:// (true, default) vs ws:// (false).
func (b *ClientBuilder) Secure(secure bool) *ClientBuilder {
	b.secure = secure
	return b
}

// Logger installs a custom logrus.Logger; the default is
// internal/logging.New(), level-controlled by PANGEA_LOG_LEVEL.
func (b *ClientBuilder) Logger(logger *logrus.Logger) *ClientBuilder {
	b.logger = logger
	return b
}

// Build dials the server, performs the handshake, and spawns the
// Connection Worker. The returned Client is ready for use as soon as Build
// returns without error.
func (b *ClientBuilder) Build(ctx context.Context) (*Client, error) {
	if b.logger == nil {
		b.logger = logging.New()
	}

	scheme := "wss"
	if !b.secure {
		scheme = "ws"
	}
	target := url.URL{Scheme: scheme, Host: b.endpoint, Path: wsPath}

	header := http.Header{}
	if b.username != "" || b.password != "" {
		auth := b.username + ":" + b.password
		encoded := base64.StdEncoding.EncodeToString([]byte(auth))
		header.Set("Authorization", "Basic "+encoded)
	}

	dialer := *websocket.DefaultDialer
	conn, _, err := dialer.DialContext(ctx, target.String(), header)
	if err != nil {
		return nil, fmt.Errorf("pangea: dial %s: %w", target.String(), err)
	}

	incoming := make(chan workItem, outboundBuffer)
	w := newWorker(conn, incoming, b.logger)

	client := &Client{outgoing: incoming, logger: b.logger}
	go func() {
		w.run()
		client.mu.Lock()
		client.closed = true
		client.mu.Unlock()
	}()

	b.logger.WithField("endpoint", b.endpoint).Info("pangea client connected")

	return client, nil
}

// Client is the caller-facing facade: it turns typed requests into
// envelopes, hands them to the Connection Worker, and returns the
// resulting lazy response stream.
type Client struct {
	mu       sync.RWMutex
	outgoing chan<- workItem
	logger   *logrus.Logger
	closed   bool
}

// Ready reports whether the Connection Worker is still running. It is
// best-effort: the worker can exit between Ready returning true and the
// next Request, in which case Request itself surfaces the failure.
func (c *Client) Ready() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return !c.closed
}

// Close tears the connection down: it closes the channel feeding the
// Connection Worker, which drains any work already queued, closes the
// socket, and closes every open subscription's stream without a final
// error item. Close does not wait for the worker to exit. Close is
// idempotent and safe to call more than once; a Client is unusable for
// further Request calls once Close returns.
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	close(c.outgoing)
}

// Request is the generic entry point every thin per-query method (see
// methods.go) delegates to. params must already be comma-join/omitempty
// aware (ChainSet, StringSet, Bound) so that paramsOf produces the flat
// wire representation the Envelope Codec expects.
func (c *Client) Request(ctx context.Context, op Operation, params any, format Format, deltas bool) (Stream[[]byte], error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return nil, ErrBackendShutDown
	}

	raw, err := paramsOf(params)
	if err != nil {
		return nil, fmt.Errorf("pangea: marshal params: %w", err)
	}

	id := uuid.New()
	req := request{ID: id, Operation: op, Params: raw, Format: format, Deltas: deltas}

	done := make(chan struct{})
	sub := subscription{ch: make(chan Result[[]byte], sinkBufferSize), done: done}

	select {
	case c.outgoing <- workItem{req: req, sub: sub}:
	default:
		// The worker may be slow to drain; retry with a blocking send
		// bound to the caller's context so Request never wedges forever
		// on a live-but-saturated connection, while still failing fast
		// once the worker is actually gone.
		select {
		case c.outgoing <- workItem{req: req, sub: sub}:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	go func() {
		<-ctx.Done()
		close(done)
	}()

	return filterEmpty(sub.ch), nil
}

// filterEmpty wraps the raw per-subscription channel with the facade-level
// rule that a Continue frame with an empty body produces no item for the
// caller; errors and non-empty bodies pass through unchanged.
func filterEmpty(in <-chan Result[[]byte]) Stream[[]byte] {
	out := make(chan Result[[]byte])
	go func() {
		defer close(out)
		for msg := range in {
			if msg.Err == nil && len(msg.Value) == 0 {
				continue
			}
			out <- msg
		}
	}()
	return out
}
