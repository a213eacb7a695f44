// Package script collects page scripts by position. Each statement is kept
// once per key, in registration order, so repeated widgets on a page cannot
// bind the same handlers twice.
package script

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// Position selects where a statement runs on the page.
type Position int

const (
	// Head statements are emitted inside <head> and run immediately.
	Head Position = iota
	// Ready statements run once the DOM is ready.
	Ready
	// Load statements run after the window load event.
	Load
)

var positionNames = map[Position]string{
	Head:  "head",
	Ready: "ready",
	Load:  "load",
}

func (p Position) String() string {
	if name, ok := positionNames[p]; ok {
		return name
	}
	return "position(" + strconv.Itoa(int(p)) + ")"
}

// ParsePosition maps a position name to its value.
func ParsePosition(name string) (Position, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for pos, candidate := range positionNames {
		if candidate == normalized {
			return pos, nil
		}
	}
	return 0, fmt.Errorf("script: unknown position %q", name)
}

// Sink receives script statements.
type Sink interface {
	RegisterJS(pos Position, key, js string)
}

type entry struct {
	key string
	js  string
}

// Collector is a Sink that stores statements for later rendering. It is safe
// for concurrent use.
type Collector struct {
	mu      sync.Mutex
	entries map[Position][]entry
	seen    map[Position]map[string]struct{}
}

var _ Sink = (*Collector)(nil)

// NewCollector returns an empty Collector.
func NewCollector() *Collector {
	return &Collector{
		entries: make(map[Position][]entry),
		seen:    make(map[Position]map[string]struct{}),
	}
}

// Key returns the default deduplication key for a statement.
func Key(js string) string {
	return strconv.FormatUint(xxhash.Sum64String(js), 16)
}

// RegisterJS stores js at pos unless a statement with the same key was
// already registered there. An empty key falls back to Key(js).
func (c *Collector) RegisterJS(pos Position, key, js string) {
	if strings.TrimSpace(js) == "" {
		return
	}
	if key == "" {
		key = Key(js)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.seen[pos] == nil {
		c.seen[pos] = make(map[string]struct{})
	}
	if _, exists := c.seen[pos][key]; exists {
		return
	}
	c.seen[pos][key] = struct{}{}
	c.entries[pos] = append(c.entries[pos], entry{key: key, js: js})
}

// Statements returns the statements registered at pos in order.
func (c *Collector) Statements(pos Position) []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	entries := c.entries[pos]
	if len(entries) == 0 {
		return nil
	}
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.js)
	}
	return out
}

// Len reports how many statements are registered at pos.
func (c *Collector) Len(pos Position) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries[pos])
}

// Block joins the statements at pos, one per line, into a single script body, wrapping
// ready and load statements in their jQuery event handlers. It returns an
// empty string when nothing was registered.
func (c *Collector) Block(pos Position) string {
	statements := c.Statements(pos)
	if len(statements) == 0 {
		return ""
	}
	for idx, statement := range statements {
		statements[idx] = strings.TrimRight(statement, "\n")
	}
	body := strings.Join(statements, "\n")
	switch pos {
	case Ready:
		return "jQuery(function ($) {\n" + body + "\n});"
	case Load:
		return "jQuery(window).on('load', function () {\n" + body + "\n});"
	default:
		return body
	}
}
