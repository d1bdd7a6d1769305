package windows

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"nyxshell/internal/domain"
)

// MainLabel is the label of the host window Wails itself owns. It is
// always present and cannot be created or closed through the registry.
const MainLabel = "main"

const (
	defaultWidth  = 800
	defaultHeight = 600
)

var ErrNotFound = errors.New("window not found")

// Registry tracks the labeled shell windows the frontend renders. The
// backend is the source of truth for which labels exist; the web view
// draws a surface per label when notified.
type Registry struct {
	mu      sync.RWMutex
	windows map[string]domain.WindowInfo
	now     func() time.Time
}

func NewRegistry() *Registry {
	return &Registry{
		windows: make(map[string]domain.WindowInfo),
		now:     time.Now,
	}
}

// Create registers a new labeled window. Width and height fall back to
// defaults when non-positive, matching a caller that omits them.
func (r *Registry) Create(label, title string, width, height int) (domain.WindowInfo, error) {
	clean := strings.TrimSpace(label)
	if clean == "" {
		return domain.WindowInfo{}, errors.New("window label is required")
	}
	if clean == MainLabel {
		return domain.WindowInfo{}, fmt.Errorf("label %q is reserved for the host window", MainLabel)
	}
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.windows[clean]; exists {
		return domain.WindowInfo{}, fmt.Errorf("window %q already exists", clean)
	}
	info := domain.WindowInfo{
		Label:       clean,
		Title:       title,
		Width:       width,
		Height:      height,
		CreatedUnix: r.now().Unix(),
	}
	r.windows[clean] = info
	return info, nil
}

// Get returns the window for a label, or ErrNotFound.
func (r *Registry) Get(label string) (domain.WindowInfo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	info, exists := r.windows[strings.TrimSpace(label)]
	if !exists {
		return domain.WindowInfo{}, ErrNotFound
	}
	return info, nil
}

// Close removes a labeled window. The main label is rejected, unknown
// labels return ErrNotFound.
func (r *Registry) Close(label string) error {
	clean := strings.TrimSpace(label)
	if clean == MainLabel {
		return fmt.Errorf("the host window cannot be closed through the registry")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.windows[clean]; !exists {
		return ErrNotFound
	}
	delete(r.windows, clean)
	return nil
}

// List returns a snapshot ordered by creation time, then label.
func (r *Registry) List() []domain.WindowInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.WindowInfo, 0, len(r.windows))
	for _, info := range r.windows {
		out = append(out, info)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedUnix != out[j].CreatedUnix {
			return out[i].CreatedUnix < out[j].CreatedUnix
		}
		return out[i].Label < out[j].Label
	})
	return out
}

func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.windows)
}
