package core

import (
	"bytes"
	"encoding/json"
)

// encodeEnvelope serializes a request into the single JSON document the
// server expects on the wire: id, operation, format, deltas, and the
// request record's own fields flattened into the same top-level object (no
// "params" nesting). Unset parameter fields are omitted by the request
// record's own struct tags before they ever reach this function.
func encodeEnvelope(r request) ([]byte, error) {
	out := make(map[string]json.RawMessage, len(r.Params)+4)
	for k, v := range r.Params {
		out[k] = v
	}

	idJSON, err := json.Marshal(r.ID.String())
	if err != nil {
		return nil, err
	}
	opJSON, err := json.Marshal(r.Operation)
	if err != nil {
		return nil, err
	}
	formatJSON, err := json.Marshal(r.Format)
	if err != nil {
		return nil, err
	}
	deltasJSON, err := json.Marshal(r.Deltas)
	if err != nil {
		return nil, err
	}

	out["id"] = idJSON
	out["operation"] = opJSON
	out["format"] = formatJSON
	out["deltas"] = deltasJSON

	return json.Marshal(out)
}

// paramsOf flattens a request record (any struct with JSON tags, typically
// using ChainSet/StringSet/Bound fields for the omit/comma-join rules) into
// the map encodeEnvelope merges into the outbound document. It mirrors the
// Rust source's `serde_json::to_value(params)` then
// `serde_json::from_value::<HashMap<String, Value>>` round trip.
func paramsOf(v any) (map[string]json.RawMessage, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	out := make(map[string]json.RawMessage)
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// parseFrame splits one inbound socket message into its header and opaque
// body. An empty body is legal (Start/End frames carry no data); the Codec
// never inspects body bytes, so non-UTF-8 error bodies are tolerated here
// and left for the caller (worker.go) to interpret per frame Kind.
func parseFrame(data []byte) (Header, []byte, error) {
	idx := bytes.IndexByte(data, '\n')
	if idx < 0 {
		return Header{}, nil, ErrUnexpectedMessageFormat
	}

	var h Header
	if err := json.Unmarshal(data[:idx], &h); err != nil {
		return Header{}, nil, ErrUnexpectedMessageFormat
	}

	return h, data[idx+1:], nil
}
