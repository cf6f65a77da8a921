package levels

import (
	"encoding/json"
	"fmt"
	"os"
)

// Extra-data keys shared with the map.
const (
	ExtraCollectedItemsIDs = "collected_items_ids"
)

// ObjectData describes one object to place when the level loads.
type ObjectData struct {
	Type          string `json:"type"`
	Args          Args   `json:"args"`
	FactoryMethod string `json:"factory_method"`
}

// BoundingLine caps how far down the camera may scroll while its horizontal
// span lies within [XStart, XEnd]. Stored in JSON as [x_start, x_end, y].
type BoundingLine struct {
	XStart int
	XEnd   int
	Y      int
}

func (b BoundingLine) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]int{b.XStart, b.XEnd, b.Y})
}

func (b *BoundingLine) UnmarshalJSON(data []byte) error {
	var raw []int
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("levels: bounding line: %w", err)
	}
	if len(raw) != 3 {
		return fmt.Errorf("levels: bounding line: want 3 values, got %d", len(raw))
	}
	b.XStart, b.XEnd, b.Y = raw[0], raw[1], raw[2]
	return nil
}

// Data is the on-disk level document.
type Data struct {
	Objects       []ObjectData   `json:"objects"`
	IsAvailable   bool           `json:"is_available"`
	IsCompleted   bool           `json:"is_completed"`
	W             int            `json:"w"`
	H             int            `json:"h"`
	BoundingLines []BoundingLine `json:"camera_bounding_horizontal_lines,omitempty"`
	ExtraData     map[string]any `json:"extra_data"`
}

// Level is a loaded level file. A Level without a path lives only in memory
// and Save is a no-op.
type Level struct {
	index int
	path  string
	data  Data
}

// New wraps in-memory data as a level.
func New(index int, data Data) *Level {
	if data.ExtraData == nil {
		data.ExtraData = map[string]any{}
	}
	return &Level{index: index, data: data}
}

// Load reads a level JSON file.
func Load(index int, path string) (*Level, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", path, err)
	}
	lvl, err := Parse(index, b)
	if err != nil {
		return nil, fmt.Errorf("levels: %s: %w", path, err)
	}
	lvl.path = path
	return lvl, nil
}

// Parse decodes a level document.
func Parse(index int, b []byte) (*Level, error) {
	var data Data
	if err := json.Unmarshal(b, &data); err != nil {
		return nil, fmt.Errorf("unmarshal level: %w", err)
	}
	if data.W <= 0 || data.H <= 0 {
		return nil, fmt.Errorf("invalid level dimensions: %dx%d", data.W, data.H)
	}
	return New(index, data), nil
}

func (l *Level) Index() int        { return l.index }
func (l *Level) Path() string      { return l.path }
func (l *Level) W() int            { return l.data.W }
func (l *Level) H() int            { return l.data.H }
func (l *Level) IsAvailable() bool { return l.data.IsAvailable }
func (l *Level) IsCompleted() bool { return l.data.IsCompleted }
func (l *Level) BoundingLines() []BoundingLine {
	return append([]BoundingLine(nil), l.data.BoundingLines...)
}

// Objects returns a copy of the object list.
func (l *Level) Objects() []ObjectData {
	return append([]ObjectData(nil), l.data.Objects...)
}

// Extra returns a shallow copy of the extra data.
func (l *Level) Extra() map[string]any {
	out := make(map[string]any, len(l.data.ExtraData))
	for k, v := range l.data.ExtraData {
		out[k] = v
	}
	return out
}

// CollectedIDs returns the persisted ids of items already collected.
func (l *Level) CollectedIDs() []int {
	raw, ok := l.data.ExtraData[ExtraCollectedItemsIDs]
	if !ok {
		return nil
	}
	switch v := raw.(type) {
	case []int:
		return append([]int(nil), v...)
	case []any:
		out := make([]int, 0, len(v))
		for _, item := range v {
			if n, ok := toInt(item); ok {
				out = append(out, n)
			}
		}
		return out
	}
	return nil
}

// Complete marks the level completed and persists it.
func (l *Level) Complete() error {
	l.data.IsCompleted = true
	return l.Save()
}

// Open makes the level available and persists it.
func (l *Level) Open() error {
	l.data.IsAvailable = true
	return l.Save()
}

// UpdateExtra merges kv into the extra data and persists it.
func (l *Level) UpdateExtra(kv map[string]any) error {
	if l.data.ExtraData == nil {
		l.data.ExtraData = map[string]any{}
	}
	for k, v := range kv {
		l.data.ExtraData[k] = v
	}
	return l.Save()
}

// Save writes the level back to its file.
func (l *Level) Save() error {
	if l.path == "" {
		return nil
	}
	b, err := json.MarshalIndent(l.data, "", "  ")
	if err != nil {
		return fmt.Errorf("levels: marshal %s: %w", l.path, err)
	}
	if err := os.WriteFile(l.path, b, 0o644); err != nil {
		return fmt.Errorf("levels: write %s: %w", l.path, err)
	}
	return nil
}
