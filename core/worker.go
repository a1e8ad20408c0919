package core

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

const (
	pingInterval    = 5 * time.Second
	readIdleTimeout = 9 * time.Second
	controlDeadline = 10 * time.Second
	sinkBufferSize  = 5
	outboundBuffer  = 64
)

// workItem is what the facade hands the worker: one outbound request and
// the subscription that should receive its responses.
type workItem struct {
	req request
	sub subscription
}

// wsConn is the subset of *websocket.Conn the worker depends on. Declaring
// it as an interface (rather than depending on *websocket.Conn directly)
// keeps the event loop unit-testable without a real socket; *websocket.Conn
// satisfies it structurally.
type wsConn interface {
	ReadMessage() (messageType int, p []byte, err error)
	WriteMessage(messageType int, data []byte) error
	WriteControl(messageType int, data []byte, deadline time.Time) error
	SetPingHandler(h func(appData string) error)
	SetPongHandler(h func(appData string) error)
	SetCloseHandler(h func(code int, text string) error)
	SetReadLimit(limit int64)
	Close() error
}

// worker is the Connection Worker: the single goroutine that owns the
// socket and the subscription registry for the lifetime of one connection.
// Nothing outside this goroutine touches either, so neither needs locking.
type worker struct {
	conn     wsConn
	incoming <-chan workItem
	reg      *registry
	logger   *logrus.Logger

	lastInbound time.Time
}

func newWorker(conn wsConn, incoming <-chan workItem, logger *logrus.Logger) *worker {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &worker{
		conn:        conn,
		incoming:    incoming,
		reg:         newRegistry(),
		logger:      logger,
		lastInbound: time.Now(),
	}
}

// readResult is what the dedicated reader goroutine forwards to the main
// loop. Only Text and Binary frames ever reach it: gorilla/websocket's
// ReadMessage never surfaces Ping/Pong/Close control frames directly, so
// those are intercepted via the handlers installed in loop() and update
// lastInbound there instead.
type readResult struct {
	messageType int
	data        []byte
	err         error
}

// run drives the event loop until a fatal error or graceful shutdown, then
// fans the outcome out to every still-registered subscription. It is meant
// to be launched with `go w.run()` immediately after a successful
// handshake.
func (w *worker) run() {
	err := w.loop()

	if err == nil {
		w.logger.Debug("connection worker shutting down gracefully")
		for _, sub := range w.reg.drain() {
			close(sub.ch)
		}
		return
	}

	w.logger.WithError(err).Error("connection worker exiting")
	final := ErrorMsg(err.Error())
	for _, sub := range w.reg.drain() {
		deliverFinal(sub, Err[[]byte](final))
		close(sub.ch)
	}
}

func (w *worker) loop() error {
	w.conn.SetReadLimit(0) // unlimited frame/message size, per handshake contract
	w.installControlHandlers()

	frames := make(chan readResult)
	go w.readLoop(frames)

	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		// Priority 1: heartbeat. Priority 2: outbound. Priority 3: inbound.
		// Two non-blocking passes ahead of the blocking three-way select
		// emulate futures::select_biased!'s ordering without busy-looping.
		select {
		case <-ticker.C:
			if err := w.heartbeat(); err != nil {
				return err
			}
			continue
		default:
		}

		select {
		case item, ok := <-w.incoming:
			if !ok {
				return w.closeGracefully()
			}
			if err := w.operate(item); err != nil {
				return err
			}
			continue
		default:
		}

		select {
		case <-ticker.C:
			if err := w.heartbeat(); err != nil {
				return err
			}
		case item, ok := <-w.incoming:
			if !ok {
				return w.closeGracefully()
			}
			if err := w.operate(item); err != nil {
				return err
			}
		case res := <-frames:
			w.lastInbound = time.Now()
			if res.err != nil {
				return mapReadError(res.err)
			}
			if err := w.handle(res.messageType, res.data); err != nil {
				return err
			}
		}
	}
}

// installControlHandlers registers the Ping/Pong/Close callbacks gorilla's
// ReadMessage relies on to surface control frames: it never returns them as
// a distinct message type, so a Ping reply and last-seen-activity tracking
// both have to happen from inside these handlers instead of the main loop.
func (w *worker) installControlHandlers() {
	w.conn.SetPingHandler(func(appData string) error {
		w.lastInbound = time.Now()
		return w.conn.WriteControl(websocket.PongMessage, []byte(appData), time.Now().Add(controlDeadline))
	})
	w.conn.SetPongHandler(func(appData string) error {
		w.lastInbound = time.Now()
		return nil
	})
	w.conn.SetCloseHandler(func(code int, text string) error {
		w.lastInbound = time.Now()
		msg := websocket.FormatCloseMessage(code, "")
		_ = w.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(controlDeadline))
		return nil
	})
}

func (w *worker) readLoop(out chan<- readResult) {
	for {
		mt, data, err := w.conn.ReadMessage()
		out <- readResult{messageType: mt, data: data, err: err}
		if err != nil {
			return
		}
	}
}

func (w *worker) heartbeat() error {
	if time.Since(w.lastInbound) > readIdleTimeout {
		return ErrPingTimeout
	}
	return w.conn.WriteMessage(websocket.PingMessage, nil)
}

func (w *worker) closeGracefully() error {
	_ = w.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	_ = w.conn.Close()
	return nil
}

// operate transmits one outbound envelope and registers its subscription
// before the write happens, so no response can race ahead of the insert.
func (w *worker) operate(item workItem) error {
	payload, err := encodeEnvelope(item.req)
	if err != nil {
		return fmt.Errorf("pangea: encode envelope: %w", err)
	}

	if prev, had := w.reg.insert(item.req.ID, item.sub); had {
		w.logger.WithField("id", item.req.ID).Warn("replacing already-registered subscription")
		close(prev.ch)
	}

	return w.conn.WriteMessage(websocket.BinaryMessage, payload)
}

func (w *worker) handle(messageType int, data []byte) error {
	switch messageType {
	case websocket.TextMessage:
		return ErrUnexpectedMessage
	case websocket.BinaryMessage:
		return w.handleBinary(data)
	default:
		// Any other message type gorilla happens to surface (it should
		// not, in practice, surface anything but Text/Binary) is treated
		// as a server-allowed raw frame and ignored.
		return nil
	}
}

func (w *worker) handleBinary(data []byte) error {
	header, body, err := parseFrame(data)
	if err != nil {
		w.logger.WithError(err).Warn("dropping malformed frame")
		return nil // malformed frame: nothing routable, nothing fatal
	}

	switch header.Kind {
	case KindStart:
		return nil

	case KindContinue:
		w.deliver(header.ID, Ok(body))
		return nil

	case KindContinueWithError:
		w.deliver(header.ID, Err[[]byte](decodeFrameError(body)))
		return nil

	case KindEnd:
		w.logger.WithField("id", header.ID).Debug("subscription ended")
		w.terminate(header.ID)
		return nil

	case KindError:
		delivered := w.deliver(header.ID, Err[[]byte](decodeTextError(body)))
		if delivered {
			w.terminate(header.ID)
		}
		return nil

	default:
		w.logger.WithField("id", header.ID).WithField("kind", header.Kind).Warn("unexpected frame kind")
		w.deliver(header.ID, Err[[]byte](ErrUnexpectedMessageFormat))
		return nil
	}
}

// deliver routes a message to the registered subscription for id, if any,
// reporting whether it was actually handed off. A Start frame (or any
// frame) for an id no longer in the registry is silently dropped, matching
// the documented race-with-caller-drop invariant. When the subscription is
// still registered but its caller has canceled its context, deliver
// removes the entry itself so the next lookup finds nothing.
func (w *worker) deliver(id uuid.UUID, msg Result[[]byte]) bool {
	sub, ok := w.reg.lookup(id)
	if !ok {
		return false
	}

	select {
	case sub.ch <- msg:
		return true
	case <-sub.done:
		w.logger.WithField("id", id).Debug("caller gone, dropping subscription")
		w.reg.remove(id)
		close(sub.ch)
		return false
	}
}

// terminate removes id's entry and closes its channel, used for the two
// frame kinds (End, Error) that absorb the subscription.
func (w *worker) terminate(id uuid.UUID) {
	if sub, ok := w.reg.remove(id); ok {
		close(sub.ch)
	}
}

func decodeFrameError(body []byte) error {
	if len(body) > 0 && body[0] == '{' {
		var re ResponseError
		if err := json.Unmarshal(body, &re); err == nil {
			return &re
		}
		return ErrUnexpectedMessageFormat
	}
	if !utf8.Valid(body) {
		return ErrUnexpectedMessageFormat
	}
	return ErrorMsg(body)
}

func decodeTextError(body []byte) error {
	if !utf8.Valid(body) {
		return ErrUnexpectedMessageFormat
	}
	return ErrorMsg(body)
}

func mapReadError(err error) error {
	if errors.Is(err, io.EOF) {
		return ErrUnexpectedClose
	}
	if websocket.IsUnexpectedCloseError(err) || websocket.IsCloseError(err,
		websocket.CloseNormalClosure, websocket.CloseGoingAway) {
		return ErrUnexpectedClose
	}
	return wrap(err, "pangea: read message")
}

// deliverFinal hands a subscription its last message. Like deliver, it
// waits for room in the bounded sink and gives up only once the caller has
// canceled its context.
func deliverFinal(sub subscription, msg Result[[]byte]) {
	select {
	case sub.ch <- msg:
	case <-sub.done:
	}
}
