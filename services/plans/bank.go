package plans

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// SharedBucket holds the focus areas that apply to every position.
const SharedBucket = "felles_utvikling"

// FocusArea is one development focus from the utviklingsbank reference file.
type FocusArea struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Utviklingsmaal string   `json:"utviklingsmaal"`
	Trening        []string `json:"trening"`
	Kamp           []string `json:"kamp"`
}

// Bank caches the utviklingsbank.json reference data in memory. The cache has
// an explicit lifetime: it is filled once at startup and replaced atomically
// on Reload.
type Bank struct {
	path string

	mu    sync.RWMutex
	areas map[string][]FocusArea
}

func NewBank(path string) *Bank {
	return &Bank{
		path:  path,
		areas: map[string][]FocusArea{},
	}
}

// Load reads the reference file and swaps the cache.
func (b *Bank) Load() error {
	raw, err := os.ReadFile(b.path)
	if err != nil {
		return fmt.Errorf("read utviklingsbank: %w", err)
	}

	var areas map[string][]FocusArea
	if err := json.Unmarshal(raw, &areas); err != nil {
		return fmt.Errorf("parse utviklingsbank: %w", err)
	}

	b.mu.Lock()
	b.areas = areas
	b.mu.Unlock()
	return nil
}

// AreasFor lists the focus areas a player in the given position can pick
// from: the position bucket plus the shared one.
func (b *Bank) AreasFor(position string) []FocusArea {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := append([]FocusArea{}, b.areas[position]...)
	out = append(out, b.areas[SharedBucket]...)
	return out
}

// Find resolves a focus area id, preferring the position bucket, then the
// shared bucket, then any bucket.
func (b *Bank) Find(id, position string) (FocusArea, bool) {
	if id == "" {
		return FocusArea{}, false
	}

	for _, area := range b.AreasFor(position) {
		if area.ID == id {
			return area, true
		}
	}

	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, bucket := range b.areas {
		for _, area := range bucket {
			if area.ID == id {
				return area, true
			}
		}
	}
	return FocusArea{}, false
}
