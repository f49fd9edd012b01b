package server

import (
	"bytes"
	"io"
	"testing"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/lexhart/spellserve/pkg/config"
	"github.com/lexhart/spellserve/pkg/dictionary"
	"github.com/lexhart/spellserve/pkg/spell"
)

func testChecker(t *testing.T) *spell.Checker {
	t.Helper()
	dict := dictionary.New()
	dict.AddWords([]string{"color", "colour", "the", "there"})
	checker, err := spell.New(dict, nil, spell.Options{})
	if err != nil {
		t.Fatal(err)
	}
	return checker
}

// runServer feeds encoded requests through a server and returns a decoder
// over everything it wrote.
func runServer(t *testing.T, requests ...Request) *msgpack.Decoder {
	t.Helper()
	var in, out bytes.Buffer
	enc := msgpack.NewEncoder(&in)
	for _, req := range requests {
		if err := enc.Encode(req); err != nil {
			t.Fatal(err)
		}
	}

	srv := NewServer(testChecker(t), &in, &out, config.DefaultConfig().Server)
	if err := srv.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	return msgpack.NewDecoder(&out)
}

func expectReady(t *testing.T, dec *msgpack.Decoder) {
	t.Helper()
	var ready ReadyResponse
	if err := dec.Decode(&ready); err != nil {
		t.Fatalf("decoding ready: %v", err)
	}
	if ready.Status != "ready" || ready.Words != 4 {
		t.Fatalf("ready = %+v", ready)
	}
}

func TestServerCheck(t *testing.T) {
	dec := runServer(t,
		Request{ID: "r1", Op: "check", Word: "color"},
		Request{ID: "r2", Op: "check", Word: "collor"},
	)
	expectReady(t, dec)

	var resp CheckResponse
	if err := dec.Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if resp.ID != "r1" || !resp.Correct {
		t.Errorf("check color = %+v, want correct", resp)
	}
	if err := dec.Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if resp.ID != "r2" || resp.Correct {
		t.Errorf("check collor = %+v, want incorrect", resp)
	}
}

func TestServerSuggest(t *testing.T) {
	dec := runServer(t, Request{ID: "s1", Op: "suggest", Word: "collor", Limit: 8})
	expectReady(t, dec)

	var resp SuggestResponse
	if err := dec.Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if resp.ID != "s1" || resp.Count == 0 {
		t.Fatalf("suggest = %+v, want suggestions", resp)
	}
	if resp.Suggestions[0].Word != "color" {
		t.Errorf("first suggestion = %+v, want color", resp.Suggestions[0])
	}
	for i := 1; i < len(resp.Suggestions); i++ {
		if resp.Suggestions[i-1].Cost > resp.Suggestions[i].Cost {
			t.Errorf("suggestions out of cost order: %v", resp.Suggestions)
		}
	}
}

func TestServerStats(t *testing.T) {
	dec := runServer(t, Request{ID: "st1", Op: "stats"})
	expectReady(t, dec)

	var resp StatsResponse
	if err := dec.Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if resp.Size != 4 || resp.UniqueWords != 4 {
		t.Errorf("stats = %+v, want 4 entries", resp)
	}
}

func TestServerErrors(t *testing.T) {
	dec := runServer(t,
		Request{ID: "e1", Op: "frobnicate"},
		Request{ID: "e2", Op: "check"},
	)
	expectReady(t, dec)

	for _, id := range []string{"e1", "e2"} {
		var resp ErrorResponse
		if err := dec.Decode(&resp); err != nil {
			t.Fatal(err)
		}
		if resp.ID != id || resp.Status != 400 {
			t.Errorf("error response = %+v, want id %s status 400", resp, id)
		}
	}

	// Stream fully consumed.
	var extra map[string]any
	if err := dec.Decode(&extra); err != io.EOF {
		t.Errorf("unexpected trailing response: %v %v", extra, err)
	}
}
