package theme

import (
	"slices"
	"sync"
)

// DefaultName is the theme used when none is configured.
const DefaultName = "tokyonight"

var globalManager = &manager{
	themes: make(map[string]Theme),
}

type manager struct {
	mu          sync.RWMutex
	themes      map[string]Theme
	currentName string
}

// Register adds a theme to the registry. Until SetTheme is called the
// current theme is DefaultName, or the first registered one.
func Register(t Theme) {
	globalManager.mu.Lock()
	defer globalManager.mu.Unlock()
	globalManager.themes[t.Name] = t
	if globalManager.currentName == "" || t.Name == DefaultName {
		globalManager.currentName = t.Name
	}
}

// SetTheme switches to a registered theme by name.
// Returns true if the theme was found and set.
func SetTheme(name string) bool {
	globalManager.mu.Lock()
	defer globalManager.mu.Unlock()
	if _, ok := globalManager.themes[name]; !ok {
		return false
	}
	globalManager.currentName = name
	return true
}

// Current returns the active theme.
func Current() Theme {
	globalManager.mu.RLock()
	defer globalManager.mu.RUnlock()
	return globalManager.themes[globalManager.currentName]
}

// CurrentName returns the name of the active theme.
func CurrentName() string {
	globalManager.mu.RLock()
	defer globalManager.mu.RUnlock()
	return globalManager.currentName
}

// Available returns all registered theme names in sorted order.
func Available() []string {
	globalManager.mu.RLock()
	defer globalManager.mu.RUnlock()
	return sortedNames(globalManager.themes)
}

// CycleTheme switches to the next theme in sorted order and returns its name.
func CycleTheme() string {
	globalManager.mu.Lock()
	defer globalManager.mu.Unlock()

	names := sortedNames(globalManager.themes)
	if len(names) == 0 {
		return ""
	}
	next := (slices.Index(names, globalManager.currentName) + 1) % len(names)
	globalManager.currentName = names[next]
	return names[next]
}

func sortedNames(themes map[string]Theme) []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
