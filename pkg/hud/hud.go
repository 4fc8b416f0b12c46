// Package hud keeps the variable display shown next to the dungeon.
package hud

import (
	"fmt"
	"strings"
	"sync"
)

// Entry is one displayed variable
type Entry struct {
	Name   string
	Array  bool
	Values []int // a single value for scalars
}

func (e Entry) String() string {
	if !e.Array {
		return fmt.Sprintf("%s = %d", e.Name, e.Values[0])
	}

	parts := make([]string, len(e.Values))
	for i, v := range e.Values {
		parts[i] = fmt.Sprintf("%d", v)
	}
	return fmt.Sprintf("%s = [%s]", e.Name, strings.Join(parts, ", "))
}

// Board is a concurrency-safe variable display. The interpreter writes to it
// while the render loop reads snapshots.
type Board struct {
	mu      sync.RWMutex
	order   []string
	entries map[string]Entry
	version uint64
}

// NewBoard creates an empty board
func NewBoard() *Board {
	return &Board{entries: make(map[string]Entry)}
}

// ScalarSet shows name with a single value
func (b *Board) ScalarSet(name string, value int) {
	b.set(Entry{Name: name, Values: []int{value}})
}

// ArraySet shows name with a copy of values
func (b *Board) ArraySet(name string, values []int) {
	b.set(Entry{Name: name, Array: true, Values: append([]int(nil), values...)})
}

func (b *Board) set(e Entry) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.entries[e.Name]; !ok {
		b.order = append(b.order, e.Name)
	}
	b.entries[e.Name] = e
	b.version++
}

// Clear removes every entry
func (b *Board) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.order = nil
	b.entries = make(map[string]Entry)
	b.version++
}

// Entries returns the entries in the order they were first set
func (b *Board) Entries() []Entry {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]Entry, 0, len(b.order))
	for _, name := range b.order {
		e := b.entries[name]
		e.Values = append([]int(nil), e.Values...)
		out = append(out, e)
	}
	return out
}

// Get returns a single entry
func (b *Board) Get(name string) (Entry, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	e, ok := b.entries[name]
	if ok {
		e.Values = append([]int(nil), e.Values...)
	}
	return e, ok
}

// Version changes whenever the board does; renderers use it to skip redraws.
func (b *Board) Version() uint64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.version
}

// String renders one entry per line
func (b *Board) String() string {
	var sb strings.Builder
	for _, e := range b.Entries() {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
