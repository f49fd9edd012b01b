// Package cli handles cmd line input for interactive spellchecking, meant
// for debugging and testing dictionary changes.
package cli

import (
	"bufio"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lexhart/spellserve/internal/utils"
	"github.com/lexhart/spellserve/pkg/spell"
)

// InputHandler reads words from stdin and prints correctness plus ranked
// suggestions for each.
type InputHandler struct {
	checker      *spell.Checker
	suggestLimit int
	requestCount int
}

// NewInputHandler handles initialization of the InputHandler.
func NewInputHandler(checker *spell.Checker, limit int) *InputHandler {
	return &InputHandler{
		checker:      checker,
		suggestLimit: limit,
	}
}

// Start begins the interface loop. It continuously reads a line from stdin
// and checks the trimmed token. Terminates when stdin closes.
func (h *InputHandler) Start() error {
	log.Print("SpellServe CLI")
	log.Print("type a word and press Enter to check it (Ctrl+C to exit):")
	reader := bufio.NewReader(os.Stdin)

	for {
		log.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		word := strings.TrimSpace(line)
		if word == "" {
			continue
		}
		h.handleInput(word)
	}
}

func (h *InputHandler) handleInput(word string) {
	h.requestCount++
	if !utils.IsValidToken(word) {
		log.Warnf("not a checkable token: %q", word)
		return
	}

	start := time.Now()
	if h.checker.Correct(word) {
		log.Infof("%q is correct (%v)", word, time.Since(start))
		return
	}

	set, err := h.checker.Suggest(word)
	if err != nil {
		log.Errorf("suggest failed: %v", err)
		return
	}
	elapsed := time.Since(start)
	if set.Empty() {
		log.Infof("%q is misspelled, no suggestions (%v)", word, elapsed)
		return
	}

	candidates := set.Candidates()
	if len(candidates) > h.suggestLimit && h.suggestLimit > 0 {
		candidates = candidates[:h.suggestLimit]
	}
	log.Infof("%q is misspelled, %d suggestions (%v):", word, len(candidates), elapsed)
	for i, c := range candidates {
		log.Infof("  %2d. %-20s cost=%.2f source=%s", i+1, c.Word, c.Cost, c.Source)
	}
}
