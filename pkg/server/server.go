package server

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/lexhart/spellserve/pkg/config"
	"github.com/lexhart/spellserve/pkg/spell"
)

// Server handles the IPC loop for spellcheck requests.
type Server struct {
	checker *spell.Checker
	dec     *msgpack.Decoder
	enc     *msgpack.Encoder
	cfg     config.ServerConfig
}

// NewServer creates a server over the given streams. The checker must be
// fully built before the first request is read.
func NewServer(checker *spell.Checker, r io.Reader, w io.Writer, cfg config.ServerConfig) *Server {
	return &Server{
		checker: checker,
		dec:     msgpack.NewDecoder(r),
		enc:     msgpack.NewEncoder(w),
		cfg:     cfg,
	}
}

// Start signals readiness and then processes requests until the input
// stream closes.
func (s *Server) Start() error {
	log.Debug("starting spellcheck server")
	s.send(ReadyResponse{Status: "ready", Words: s.checker.Dictionary().Size()})

	for {
		var req Request
		if err := s.dec.Decode(&req); err != nil {
			if err == io.EOF {
				return nil
			}
			log.Errorf("decoding request: %v", err)
			s.send(ErrorResponse{Error: "malformed request", Status: 400})
			continue
		}
		s.handle(req)
	}
}

func (s *Server) handle(req Request) {
	switch req.Op {
	case "check":
		s.handleCheck(req)
	case "suggest":
		s.handleSuggest(req)
	case "stats":
		s.handleStats(req)
	default:
		s.send(ErrorResponse{ID: req.ID, Error: fmt.Sprintf("unknown op: %s", req.Op), Status: 400})
	}
}

func (s *Server) handleCheck(req Request) {
	if req.Word == "" {
		s.send(ErrorResponse{ID: req.ID, Error: "missing 'w' parameter", Status: 400})
		return
	}
	if len(req.Word) > s.cfg.MaxWordLen {
		s.send(ErrorResponse{ID: req.ID, Error: "word too long", Status: 400})
		return
	}
	start := time.Now()
	correct := s.checker.Correct(req.Word)
	s.send(CheckResponse{
		ID:        req.ID,
		Correct:   correct,
		TimeTaken: time.Since(start).Microseconds(),
	})
}

func (s *Server) handleSuggest(req Request) {
	if req.Word == "" {
		s.send(ErrorResponse{ID: req.ID, Error: "missing 'w' parameter", Status: 400})
		return
	}
	if len(req.Word) > s.cfg.MaxWordLen {
		s.send(ErrorResponse{ID: req.ID, Error: "word too long", Status: 400})
		return
	}
	limit := req.Limit
	if limit <= 0 || limit > s.cfg.MaxLimit {
		limit = s.cfg.MaxLimit
	}

	start := time.Now()
	set, err := s.checker.Suggest(req.Word)
	if err != nil {
		log.Errorf("suggest %q: %v", req.Word, err)
		s.send(ErrorResponse{ID: req.ID, Error: err.Error(), Status: 500})
		return
	}

	candidates := set.Candidates()
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	suggestions := make([]Suggestion, len(candidates))
	for i, c := range candidates {
		suggestions[i] = Suggestion{Word: c.Word, Cost: c.Cost}
	}
	s.send(SuggestResponse{
		ID:          req.ID,
		Suggestions: suggestions,
		Count:       len(suggestions),
		TimeTaken:   time.Since(start).Microseconds(),
	})
}

func (s *Server) handleStats(req Request) {
	stats := s.checker.Statistics()
	s.send(StatsResponse{
		ID:          req.ID,
		Size:        stats.Size,
		UniqueWords: stats.UniqueWords,
		MinLength:   stats.MinLength,
		MaxLength:   stats.MaxLength,
		AvgLength:   stats.AvgLength,
	})
}

func (s *Server) send(response any) {
	if err := s.enc.Encode(response); err != nil {
		log.Errorf("encoding response: %v", err)
	}
}
