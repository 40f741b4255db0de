// Package cli is the interactive lookup prompt: type a text, get the outlines
// the loaded dictionaries offer for it.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/bastiangx/tapeytape/pkg/dictionary"
	"github.com/bastiangx/tapeytape/pkg/steno"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// DefaultLimit caps the translations listed when browsing by prefix.
const DefaultLimit = 10

// Dictionaries is the lookup surface the prompt needs. *dictionary.Stack
// implements it.
type Dictionaries interface {
	ReverseLookup(text string) ([]steno.Outline, error)
	Browse(prefix string, limit int) []dictionary.Entry
}

// InputHandler reads one text per line and prints how to write it.
type InputHandler struct {
	dicts        Dictionaries
	limit        int
	in           io.Reader
	out          io.Writer
	outlineStyle lipgloss.Style
	wordStyle    lipgloss.Style
	requestCount int
}

// NewInputHandler creates a prompt reading from in and printing to out. A
// limit of zero or less uses DefaultLimit.
func NewInputHandler(dicts Dictionaries, limit int, in io.Reader, out io.Writer) *InputHandler {
	if limit <= 0 {
		limit = DefaultLimit
	}
	renderer := lipgloss.NewRenderer(out)
	return &InputHandler{
		dicts:        dicts,
		limit:        limit,
		in:           in,
		out:          out,
		outlineStyle: renderer.NewStyle().Foreground(lipgloss.Color("75")).Bold(true),
		wordStyle:    renderer.NewStyle().Foreground(lipgloss.Color("250")),
	}
}

// Start runs the prompt until the input ends.
func (h *InputHandler) Start() error {
	fmt.Fprintln(h.out, "Tapey Tape lookup")
	fmt.Fprintln(h.out, "type a word or phrase and press Enter (Ctrl+D to exit):")
	reader := bufio.NewReader(h.in)

	for {
		fmt.Fprint(h.out, "> ")
		line, err := reader.ReadString('\n')
		if text := strings.TrimSpace(line); text != "" {
			h.handleInput(text)
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(h.out)
				log.Debugf("Lookup prompt closed after %d requests", h.requestCount)
				return nil
			}
			return err
		}
	}
}

func (h *InputHandler) handleInput(text string) {
	h.requestCount++
	start := time.Now()

	outlines, err := h.dicts.ReverseLookup(text)
	if err != nil {
		log.Errorf("Lookup failed for '%s': %v", text, err)
		return
	}
	if len(outlines) > 0 {
		log.Debugf("Took [ %v ] for '%s'", time.Since(start), text)
		fmt.Fprintf(h.out, "Found %d outlines for '%s':\n", len(outlines), text)
		for i, o := range outlines {
			fmt.Fprintf(h.out, "%2d. %s\n", i+1, h.outlineStyle.Render(o.String()))
		}
		return
	}

	entries := h.dicts.Browse(text, h.limit)
	log.Debugf("Took [ %v ] for '%s'", time.Since(start), text)
	if len(entries) == 0 {
		log.Warnf("No outlines found for '%s'", text)
		return
	}

	fmt.Fprintf(h.out, "No outlines for '%s', translations starting with it:\n", text)
	for i, e := range entries {
		outlines := make([]string, len(e.Outlines))
		for j, o := range e.Outlines {
			outlines[j] = h.outlineStyle.Render(o.String())
		}
		fmt.Fprintf(h.out, "%2d. %s  %s\n", i+1, h.wordStyle.Render(e.Translation), strings.Join(outlines, " "))
	}
}
