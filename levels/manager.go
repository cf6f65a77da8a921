package levels

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/milk9111/pixel/logger"
)

var (
	ErrNoLevels        = errors.New("levels: no levels loaded")
	ErrIndexOutOfRange = errors.New("levels: index out of range")
	ErrNoCurrentLevel  = errors.New("levels: no current level")
)

// Manager holds the ordered level list and the current level.
type Manager struct {
	dir     string
	levels  []*Level
	current *Level
}

// NewManager loads every <index>.json in dir. Files whose base name is not
// an integer are logged and skipped.
func NewManager(dir string) (*Manager, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("levels: read dir %s: %w", dir, err)
	}

	m := &Manager{dir: dir}
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".json") {
			continue
		}
		idx, err := strconv.Atoi(strings.TrimSuffix(e.Name(), filepath.Ext(e.Name())))
		if err != nil {
			logger.For("levels").WithField("file", e.Name()).Warn("skipping level with non-numeric name")
			continue
		}
		lvl, err := Load(idx, filepath.Join(dir, e.Name()))
		if err != nil {
			logger.For("levels").WithError(err).Warn("skipping unreadable level")
			continue
		}
		m.levels = append(m.levels, lvl)
	}
	if len(m.levels) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoLevels, dir)
	}
	m.sortLevels()
	m.current = m.levels[0]
	return m, nil
}

// NewMemoryManager wraps already-built levels.
func NewMemoryManager(lvls ...*Level) (*Manager, error) {
	if len(lvls) == 0 {
		return nil, ErrNoLevels
	}
	m := &Manager{levels: append([]*Level(nil), lvls...)}
	m.sortLevels()
	m.current = m.levels[0]
	return m, nil
}

func (m *Manager) sortLevels() {
	sort.SliceStable(m.levels, func(i, j int) bool { return m.levels[i].index < m.levels[j].index })
	// positions, not file names, are the indices used for navigation
	for i, l := range m.levels {
		l.index = i
	}
}

// Dir is the directory levels were loaded from; empty for memory managers.
func (m *Manager) Dir() string { return m.dir }

// Levels returns the ordered levels.
func (m *Manager) Levels() []*Level {
	return append([]*Level(nil), m.levels...)
}

// Current returns the current level.
func (m *Manager) Current() *Level { return m.current }

// LastIndex is the index of the final level.
func (m *Manager) LastIndex() int { return len(m.levels) - 1 }

// NextAfter returns the level following index, or the same level when index
// is the last one.
func (m *Manager) NextAfter(index int) *Level {
	if index < 0 || index >= len(m.levels) {
		return nil
	}
	if index != m.LastIndex() {
		return m.levels[index+1]
	}
	return m.levels[index]
}

// SwitchTo makes the level at index current.
func (m *Manager) SwitchTo(index int) (*Level, error) {
	if index < 0 || index >= len(m.levels) {
		return nil, fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	m.current = m.levels[index]
	return m.current, nil
}

// GoNext advances to the following level.
func (m *Manager) GoNext() *Level {
	if m.current == nil {
		return nil
	}
	m.current = m.NextAfter(m.current.index)
	return m.current
}

// Resume returns the furthest playable level: the last one, or the first
// available level whose successor is still locked.
func (m *Manager) Resume() *Level {
	for _, l := range m.levels {
		if l.index == m.LastIndex() {
			return l
		}
		if l.IsAvailable() && !m.NextAfter(l.index).IsAvailable() {
			return l
		}
	}
	return m.levels[0]
}

// SetCurrentCompleted completes the current level and opens the next.
func (m *Manager) SetCurrentCompleted() error {
	if m.current == nil {
		return ErrNoCurrentLevel
	}
	if err := m.current.Complete(); err != nil {
		return err
	}
	return m.NextAfter(m.current.index).Open()
}
