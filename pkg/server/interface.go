/*
Package server implements msgpack IPC for the spellchecker.

The server reads binary msgpack requests from stdin and writes responses to
stdout, one message per request, processed synchronously with timing info
included. The short field tags keep messages small for editor integrations
that check words on every keystroke.

A check request asks whether a word is a valid form:

	{"id": "req_001", "op": "check", "w": "colour"}
	{"id": "req_001", "ok": true, "t": 12}

A suggest request returns ranked corrections:

	{"id": "req_002", "op": "suggest", "w": "collor", "l": 8}
	{"id": "req_002", "s": [{"w": "color", "c": 1}, {"w": "colour", "c": 2}], "n": 2, "t": 180}

A stats request reports dictionary aggregates for diagnostics. Errors come
back with a status code and the request's ID so clients can correlate.
*/
package server

// Request is an incoming IPC message. Op is "check", "suggest" or "stats".
type Request struct {
	ID    string `msgpack:"id"`
	Op    string `msgpack:"op"`
	Word  string `msgpack:"w,omitempty"`
	Limit int    `msgpack:"l,omitempty"`
}

// Suggestion is one ranked correction in a suggest response.
type Suggestion struct {
	Word string  `msgpack:"w"`
	Cost float64 `msgpack:"c"`
}

// CheckResponse answers a check request.
type CheckResponse struct {
	ID        string `msgpack:"id"`
	Correct   bool   `msgpack:"ok"`
	TimeTaken int64  `msgpack:"t"`
}

// SuggestResponse answers a suggest request.
type SuggestResponse struct {
	ID          string       `msgpack:"id"`
	Suggestions []Suggestion `msgpack:"s"`
	Count       int          `msgpack:"n"`
	TimeTaken   int64        `msgpack:"t"`
}

// StatsResponse answers a stats request with dictionary aggregates.
type StatsResponse struct {
	ID          string  `msgpack:"id"`
	Size        int     `msgpack:"size"`
	UniqueWords int     `msgpack:"unique"`
	MinLength   int     `msgpack:"min_len"`
	MaxLength   int     `msgpack:"max_len"`
	AvgLength   float64 `msgpack:"avg_len"`
}

// ErrorResponse reports a failed request.
type ErrorResponse struct {
	ID     string `msgpack:"id,omitempty"`
	Error  string `msgpack:"error"`
	Status int    `msgpack:"status"`
}

// ReadyResponse is emitted once at startup so clients know the dictionary
// finished building.
type ReadyResponse struct {
	Status string `msgpack:"status"`
	Words  int    `msgpack:"words"`
}
