// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"fmt"
	"math/rand"
	"sort"
	"sync"

	"github.com/vovakirdan/canvas-arcade/internal/config"
	"github.com/vovakirdan/canvas-arcade/internal/core"
)

// Category groups games on the card grid.
type Category string

const (
	CategoryAll    Category = "all"
	CategoryRacing Category = "racing"
	CategoryMath   Category = "math"
	CategoryAction Category = "action"
	CategoryPuzzle Category = "puzzle"
)

// Categories lists the filter options in display order.
var Categories = []Category{CategoryAll, CategoryRacing, CategoryMath, CategoryAction, CategoryPuzzle}

// Env is everything a session receives when it starts. All of it is bound
// to that one session: timers and input handlers stop reaching the game as
// soon as the session is torn down.
type Env struct {
	Surface  core.Surface
	Input    core.Input
	Timers   core.Timers
	Rand     *rand.Rand
	Settings config.Games
}

// Game is the core interface that all arcade games must implement.
// Games contain pure logic with no Bubble Tea dependency; the lifecycle
// controller drives them one frame at a time.
type Game interface {
	// ID returns the launch identifier (e.g., "racing1").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Category returns the card-grid category.
	Category() Category

	// Description returns the one-line card text.
	Description() string

	// Start initializes fresh state and attaches input handlers and timers.
	Start(env Env)

	// Update advances the simulation by one frame.
	Update()

	// Render clears and redraws the full surface.
	Render(dst core.Surface)

	// State returns score and terminal flags.
	State() core.GameState
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID          string
	Title       string
	Category    Category
	Description string
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]GameInfo)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f

	// Get metadata by creating a temporary instance
	g := f()
	infos[id] = GameInfo{
		ID:          id,
		Title:       g.Title(),
		Category:    g.Category(),
		Description: g.Description(),
	}
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Lookup returns the metadata of a registered game.
func Lookup(id string) (GameInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	info, ok := infos[id]
	return info, ok
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
