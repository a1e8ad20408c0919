package core

import (
	"context"
	"encoding/json"
	"fmt"
)

// Status is the server's status-telemetry record, the one payload shape the
// core decodes on the caller's behalf rather than leaving it as opaque
// bytes.
type Status struct {
	Type              string `json:"type"`
	Chain             uint64 `json:"chain"`
	ChainCode         string `json:"chain_code"`
	ChainName         string `json:"chain_name"`
	Entity            string `json:"entity"`
	LatestBlockHeight uint64 `json:"latest_block_height"`
	Service           string `json:"service"`
	Status            string `json:"status"`
	Timestamp         uint64 `json:"timestamp"`
}

// statusParams is the (empty) request record for getStatus: the query takes
// no filters, but still flows through the same envelope machinery as every
// other operation.
type statusParams struct{}

// GetStatus subscribes to the server's status feed and decodes each chunk
// into a Status record. A chunk that fails to decode becomes an item-level
// error; the stream itself is not torn down by one bad record.
func (c *Client) GetStatus(ctx context.Context) (<-chan Result[Status], error) {
	raw, err := c.Request(ctx, OpGetStatus, statusParams{}, FormatJSONStream, false)
	if err != nil {
		return nil, err
	}

	out := make(chan Result[Status])
	go func() {
		defer close(out)
		for msg := range raw {
			if msg.Err != nil {
				out <- Err[Status](msg.Err)
				continue
			}
			var s Status
			if err := json.Unmarshal(msg.Value, &s); err != nil {
				out <- Err[Status](fmt.Errorf("pangea: decode status: %w", err))
				continue
			}
			out <- Ok(s)
		}
	}()

	return out, nil
}
