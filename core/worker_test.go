package core

import (
	"encoding/json"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// fakeConn is a minimal wsConn stand-in. ReadMessage is unused by the tests
// below (they drive operate/handleBinary/heartbeat directly rather than the
// event loop), but is implemented so fakeConn satisfies wsConn.
type controlWrite struct {
	messageType int
	data        []byte
}

type fakeConn struct {
	mu       sync.Mutex
	written  [][]byte
	controls []controlWrite

	pingHandler  func(string) error
	pongHandler  func(string) error
	closeHandler func(int, string) error
}

func (f *fakeConn) ReadMessage() (int, []byte, error) {
	return 0, nil, io.EOF
}

func (f *fakeConn) WriteMessage(messageType int, data []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.written = append(f.written, data)
	return nil
}

func (f *fakeConn) WriteControl(messageType int, data []byte, deadline time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.controls = append(f.controls, controlWrite{messageType: messageType, data: append([]byte(nil), data...)})
	return nil
}

func (f *fakeConn) SetPingHandler(h func(string) error)       { f.pingHandler = h }
func (f *fakeConn) SetPongHandler(h func(string) error)       { f.pongHandler = h }
func (f *fakeConn) SetCloseHandler(h func(int, string) error) { f.closeHandler = h }
func (f *fakeConn) SetReadLimit(limit int64)                  {}
func (f *fakeConn) Close() error                              { return nil }

func newTestWorker() (*worker, *fakeConn) {
	conn := &fakeConn{}
	w := newWorker(conn, make(chan workItem), logrus.New())
	return w, conn
}

func encodeFrame(t *testing.T, kind Kind, id uuid.UUID, counter uint64, body string) []byte {
	t.Helper()
	h := Header{Kind: kind, ID: id, Counter: counter}
	raw, err := json.Marshal(h)
	if err != nil {
		t.Fatalf("marshal header: %v", err)
	}
	return append(append(raw, '\n'), []byte(body)...)
}

func TestWorkerOperateRegistersAndWrites(t *testing.T) {
	w, conn := newTestWorker()
	id := uuid.New()
	sub := newTestSubscription()

	item := workItem{req: request{ID: id, Operation: OpGetBlocks, Format: FormatJSONStream}, sub: sub}
	if err := w.operate(item); err != nil {
		t.Fatalf("operate: %v", err)
	}

	if _, ok := w.reg.lookup(id); !ok {
		t.Fatalf("expected subscription registered")
	}
	if len(conn.written) != 1 {
		t.Fatalf("expected one write, got %d", len(conn.written))
	}
}

func TestHandleBinaryContinueDelivers(t *testing.T) {
	w, _ := newTestWorker()
	id := uuid.New()
	sub := newTestSubscription()
	w.reg.insert(id, sub)

	frame := encodeFrame(t, KindContinue, id, 1, `{"x":1}`)
	if err := w.handleBinary(frame); err != nil {
		t.Fatalf("handleBinary: %v", err)
	}

	select {
	case msg := <-sub.ch:
		if msg.Err != nil || string(msg.Value) != `{"x":1}` {
			t.Fatalf("unexpected message: %+v", msg)
		}
	default:
		t.Fatalf("expected a delivered message")
	}

	if _, ok := w.reg.lookup(id); !ok {
		t.Fatalf("Continue must not remove the registry entry")
	}
}

func TestHandleBinaryEndTerminates(t *testing.T) {
	w, _ := newTestWorker()
	id := uuid.New()
	sub := newTestSubscription()
	w.reg.insert(id, sub)

	frame := encodeFrame(t, KindEnd, id, 2, "")
	if err := w.handleBinary(frame); err != nil {
		t.Fatalf("handleBinary: %v", err)
	}

	if _, ok := w.reg.lookup(id); ok {
		t.Fatalf("expected entry removed after End")
	}
	if _, ok := <-sub.ch; ok {
		t.Fatalf("expected sink closed after End")
	}
}

func TestHandleBinaryErrorTerminates(t *testing.T) {
	w, _ := newTestWorker()
	id := uuid.New()
	sub := newTestSubscription()
	w.reg.insert(id, sub)

	frame := encodeFrame(t, KindError, id, 3, "boom")
	if err := w.handleBinary(frame); err != nil {
		t.Fatalf("handleBinary: %v", err)
	}

	msg, ok := <-sub.ch
	if !ok {
		t.Fatalf("expected a final error item before close")
	}
	if msg.Err == nil || msg.Err.Error() != "boom" {
		t.Fatalf("unexpected error: %v", msg.Err)
	}
	if _, ok := w.reg.lookup(id); ok {
		t.Fatalf("expected entry removed after Error")
	}
}

func TestHandleBinaryContinueWithErrorStaysOpen(t *testing.T) {
	w, _ := newTestWorker()
	id := uuid.New()
	sub := newTestSubscription()
	w.reg.insert(id, sub)

	frame := encodeFrame(t, KindContinueWithError, id, 4, "rate limited")
	if err := w.handleBinary(frame); err != nil {
		t.Fatalf("handleBinary: %v", err)
	}

	msg := <-sub.ch
	if msg.Err == nil || msg.Err.Error() != "rate limited" {
		t.Fatalf("unexpected error: %v", msg.Err)
	}
	if _, ok := w.reg.lookup(id); !ok {
		t.Fatalf("ContinueWithError must not remove the registry entry")
	}
}

func TestDeliverRemovesEntryWhenCallerGone(t *testing.T) {
	w, _ := newTestWorker()
	id := uuid.New()
	done := make(chan struct{})
	close(done)
	sub := subscription{ch: make(chan Result[[]byte]), done: done} // unbuffered, full immediately
	w.reg.insert(id, sub)

	if w.deliver(id, Ok[[]byte]([]byte("x"))) {
		t.Fatalf("expected delivery to report the caller as gone")
	}
	if _, ok := w.reg.lookup(id); ok {
		t.Fatalf("expected entry removed once the caller is observed gone")
	}
}

func TestHeartbeatTimesOutAfterIdleWindow(t *testing.T) {
	w, _ := newTestWorker()
	w.lastInbound = time.Now().Add(-readIdleTimeout - time.Second)

	if err := w.heartbeat(); !errors.Is(err, ErrPingTimeout) {
		t.Fatalf("expected ErrPingTimeout, got %v", err)
	}
}

func TestHeartbeatSendsPingWhenRecent(t *testing.T) {
	w, conn := newTestWorker()
	w.lastInbound = time.Now()

	if err := w.heartbeat(); err != nil {
		t.Fatalf("heartbeat: %v", err)
	}
	if len(conn.written) != 1 {
		t.Fatalf("expected a ping write, got %d writes", len(conn.written))
	}
}

func TestMapReadErrorEOF(t *testing.T) {
	if err := mapReadError(io.EOF); !errors.Is(err, ErrUnexpectedClose) {
		t.Fatalf("expected ErrUnexpectedClose, got %v", err)
	}
}

func TestMapReadErrorUnexpectedClose(t *testing.T) {
	closeErr := &websocket.CloseError{Code: websocket.CloseAbnormalClosure}
	if err := mapReadError(closeErr); !errors.Is(err, ErrUnexpectedClose) {
		t.Fatalf("expected ErrUnexpectedClose, got %v", err)
	}
}

func TestMapReadErrorWrapsOther(t *testing.T) {
	other := errors.New("reset by peer")
	err := mapReadError(other)
	if errors.Is(err, ErrUnexpectedClose) {
		t.Fatalf("did not expect ErrUnexpectedClose for a generic error")
	}
	if err == nil {
		t.Fatalf("expected a wrapped error")
	}
}

func TestDecodeFrameErrorInvalidJSONBody(t *testing.T) {
	err := decodeFrameError([]byte(`{not valid json`))
	if !errors.Is(err, ErrUnexpectedMessageFormat) {
		t.Fatalf("expected ErrUnexpectedMessageFormat, got %v", err)
	}
}

func TestDecodeFrameErrorInvalidUTF8Body(t *testing.T) {
	err := decodeFrameError([]byte{0xff, 0xfe, 0xfd})
	if !errors.Is(err, ErrUnexpectedMessageFormat) {
		t.Fatalf("expected ErrUnexpectedMessageFormat, got %v", err)
	}
}

func TestDecodeFrameErrorPlainTextBody(t *testing.T) {
	err := decodeFrameError([]byte("rate limited"))
	if err == nil || err.Error() != "rate limited" {
		t.Fatalf("expected a plain ErrorMsg, got %v", err)
	}
}

func TestDecodeFrameErrorStructuredBody(t *testing.T) {
	err := decodeFrameError([]byte(`{"code":"429","message":"slow down"}`))
	var re *ResponseError
	if !errors.As(err, &re) {
		t.Fatalf("expected a *ResponseError, got %v", err)
	}
}

func TestHandleTextMessageIsFatal(t *testing.T) {
	w, _ := newTestWorker()
	if err := w.handle(websocket.TextMessage, []byte("unexpected")); !errors.Is(err, ErrUnexpectedMessage) {
		t.Fatalf("expected ErrUnexpectedMessage, got %v", err)
	}
}

func TestHandleBinaryMessageDelegates(t *testing.T) {
	w, _ := newTestWorker()
	id := uuid.New()
	sub := newTestSubscription()
	w.reg.insert(id, sub)

	frame := encodeFrame(t, KindContinue, id, 1, `{"x":1}`)
	if err := w.handle(websocket.BinaryMessage, frame); err != nil {
		t.Fatalf("handle: %v", err)
	}
	if _, ok := <-sub.ch; !ok {
		t.Fatalf("expected a delivered message")
	}
}

func TestInstalledPingHandlerEchoesPong(t *testing.T) {
	w, conn := newTestWorker()
	w.installControlHandlers()

	if conn.pingHandler == nil {
		t.Fatalf("expected a ping handler to be installed")
	}

	payload := "keepalive-token"
	if err := conn.pingHandler(payload); err != nil {
		t.Fatalf("ping handler: %v", err)
	}

	if len(conn.controls) != 1 {
		t.Fatalf("expected one control write, got %d", len(conn.controls))
	}
	got := conn.controls[0]
	if got.messageType != websocket.PongMessage {
		t.Fatalf("expected a Pong reply, got message type %d", got.messageType)
	}
	if string(got.data) != payload {
		t.Fatalf("expected the Pong payload to echo the Ping payload, got %q", got.data)
	}
}

func TestInstalledPongHandlerUpdatesLastInbound(t *testing.T) {
	w, conn := newTestWorker()
	w.installControlHandlers()
	w.lastInbound = time.Time{}

	if err := conn.pongHandler("ignored"); err != nil {
		t.Fatalf("pong handler: %v", err)
	}
	if w.lastInbound.IsZero() {
		t.Fatalf("expected lastInbound to be updated by the Pong handler")
	}
}
