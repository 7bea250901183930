// Package prompts serves prompt fragments embedded with the binary. Each
// JSON file is a flat object mapping fragment name to text; files are parsed
// once and cached for the life of the process.
package prompts

import (
	"embed"
	"encoding/json"
	"fmt"
	"sync"
)

//go:embed *.json
var promptFiles embed.FS

var (
	mu    sync.RWMutex
	cache = make(map[string]map[string]string)
)

// Get returns one fragment from an embedded prompt file. The filename is
// bare, e.g. "narrative.json".
func Get(filename, key string) (string, error) {
	fragments, err := load(filename)
	if err != nil {
		return "", err
	}
	text, ok := fragments[key]
	if !ok {
		return "", fmt.Errorf("prompt file %q has no fragment %q", filename, key)
	}
	return text, nil
}

// MustGet is Get for fragments named at compile time; a missing fragment is
// a build defect and panics.
func MustGet(filename, key string) string {
	text, err := Get(filename, key)
	if err != nil {
		panic(err)
	}
	return text
}

func load(filename string) (map[string]string, error) {
	mu.RLock()
	fragments, ok := cache[filename]
	mu.RUnlock()
	if ok {
		return fragments, nil
	}

	data, err := promptFiles.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("prompt file %q is not embedded: %w", filename, err)
	}
	fragments = make(map[string]string)
	if err := json.Unmarshal(data, &fragments); err != nil {
		return nil, fmt.Errorf("prompt file %q is not a flat JSON object: %w", filename, err)
	}

	mu.Lock()
	cache[filename] = fragments
	mu.Unlock()
	return fragments, nil
}
