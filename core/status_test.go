package core

import (
	"context"
	"testing"
)

func TestGetStatusDecodesRecords(t *testing.T) {
	ch := make(chan workItem, 1)
	client := &Client{outgoing: ch}

	stream, err := client.GetStatus(context.Background())
	if err != nil {
		t.Fatalf("GetStatus: %v", err)
	}

	item := <-ch
	item.sub.ch <- Ok([]byte(`{"type":"Toolbox","chain":1,"chain_code":"eth","chain_name":"Ethereum","entity":"indexer","latest_block_height":100,"service":"pangea","status":"Healthy","timestamp":1700000000}`))
	item.sub.ch <- Ok([]byte(`not json`))
	close(item.sub.ch)

	first := <-stream
	if first.Err != nil {
		t.Fatalf("unexpected error: %v", first.Err)
	}
	if first.Value.ChainCode != "eth" || first.Value.LatestBlockHeight != 100 {
		t.Fatalf("unexpected status: %+v", first.Value)
	}

	second := <-stream
	if second.Err == nil {
		t.Fatalf("expected a decode error for the malformed chunk")
	}

	if _, ok := <-stream; ok {
		t.Fatalf("expected stream to close after both items")
	}
}
