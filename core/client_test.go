package core

import (
	"context"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

// blockingConn is a wsConn whose ReadMessage never returns on its own, so a
// worker driven by it can only exit via its incoming channel closing.
type blockingConn struct {
	block chan struct{}
}

func (c *blockingConn) ReadMessage() (int, []byte, error) {
	<-c.block
	return 0, nil, nil
}

func (c *blockingConn) WriteMessage(messageType int, data []byte) error { return nil }
func (c *blockingConn) WriteControl(messageType int, data []byte, deadline time.Time) error {
	return nil
}
func (c *blockingConn) SetPingHandler(h func(string) error)       {}
func (c *blockingConn) SetPongHandler(h func(string) error)       {}
func (c *blockingConn) SetCloseHandler(h func(int, string) error) {}
func (c *blockingConn) SetReadLimit(limit int64)                  {}
func (c *blockingConn) Close() error                              { return nil }

func TestRequestFiltersEmptyBodies(t *testing.T) {
	ch := make(chan workItem, 1)
	client := &Client{outgoing: ch}

	stream, err := client.Request(context.Background(), OpGetBlocks, NewGetBlocksRequest(), FormatJSONStream, false)
	if err != nil {
		t.Fatalf("Request: %v", err)
	}

	item := <-ch
	item.sub.ch <- Ok[[]byte](nil)
	item.sub.ch <- Ok([]byte("data"))
	close(item.sub.ch)

	var got [][]byte
	for msg := range stream {
		if msg.Err != nil {
			t.Fatalf("unexpected error item: %v", msg.Err)
		}
		got = append(got, msg.Value)
	}

	if len(got) != 1 || string(got[0]) != "data" {
		t.Fatalf("expected exactly one non-empty item, got %v", got)
	}
}

func TestRequestFailsOnceClosed(t *testing.T) {
	client := &Client{outgoing: make(chan workItem, 1), closed: true}

	if _, err := client.Request(context.Background(), OpGetBlocks, NewGetBlocksRequest(), FormatJSONStream, false); err != ErrBackendShutDown {
		t.Fatalf("expected ErrBackendShutDown, got %v", err)
	}
}

func TestRequestClosesDoneOnContextCancel(t *testing.T) {
	ch := make(chan workItem, 1)
	client := &Client{outgoing: ch}

	ctx, cancel := context.WithCancel(context.Background())
	if _, err := client.Request(ctx, OpGetBlocks, NewGetBlocksRequest(), FormatJSONStream, false); err != nil {
		t.Fatalf("Request: %v", err)
	}

	item := <-ch
	cancel()

	select {
	case <-item.sub.done:
	case <-time.After(time.Second):
		t.Fatalf("expected done to close after context cancellation")
	}
}

func TestCheckFuelChainsRejectsNonFuelEntries(t *testing.T) {
	chains := NewChainSet(ChainFuel, ChainEthereum)
	err := checkFuelChains(chains)
	if err == nil {
		t.Fatalf("expected an error for a mixed chain set")
	}
	if _, ok := err.(*InvalidChainIDError); !ok {
		t.Fatalf("expected *InvalidChainIDError, got %T", err)
	}
}

func TestCheckFuelChainsAcceptsFuelOnly(t *testing.T) {
	chains := NewChainSet(ChainFuel, ChainFuelTestnet)
	if err := checkFuelChains(chains); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestClientCloseIsIdempotentAndRejectsFurtherRequests(t *testing.T) {
	client := &Client{outgoing: make(chan workItem, 1)}

	client.Close()
	client.Close() // must not panic on a second call

	if client.Ready() {
		t.Fatalf("expected Ready to report false after Close")
	}
	if _, err := client.Request(context.Background(), OpGetBlocks, NewGetBlocksRequest(), FormatJSONStream, false); err != ErrBackendShutDown {
		t.Fatalf("expected ErrBackendShutDown, got %v", err)
	}
}

func TestClientCloseDrivesWorkerToGracefulShutdown(t *testing.T) {
	incoming := make(chan workItem, outboundBuffer)
	conn := &blockingConn{block: make(chan struct{})}
	w := newWorker(conn, incoming, logrus.New())
	client := &Client{outgoing: incoming}

	done := make(chan struct{})
	go func() {
		w.run()
		close(done)
	}()

	client.Close()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("expected the worker to exit after Close")
	}
}
