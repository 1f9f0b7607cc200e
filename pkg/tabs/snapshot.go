package tabs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const snapshotVersion = "1"

// Snapshot is a window's tabs as stored on disk.
type Snapshot struct {
	Version  string
	WindowID int
	Tabs     []Tab
}

// snapshotFile is the on-disk layout. group_id is optional and defaults to
// GroupNone, which the zero value of Tab cannot express.
type snapshotFile struct {
	Version  string      `yaml:"version" json:"version"`
	WindowID int         `yaml:"window_id,omitempty" json:"window_id,omitempty"`
	Tabs     []tabRecord `yaml:"tabs" json:"tabs"`
}

type tabRecord struct {
	ID             int       `yaml:"id" json:"id"`
	Index          *int      `yaml:"index,omitempty" json:"index,omitempty"`
	OpenerTabID    int       `yaml:"opener_tab_id,omitempty" json:"opener_tab_id,omitempty"`
	Title          string    `yaml:"title,omitempty" json:"title,omitempty"`
	URL            string    `yaml:"url" json:"url"`
	IsInReaderMode bool      `yaml:"reader_mode,omitempty" json:"reader_mode,omitempty"`
	Active         bool      `yaml:"active,omitempty" json:"active,omitempty"`
	Highlighted    bool      `yaml:"highlighted,omitempty" json:"highlighted,omitempty"`
	Pinned         bool      `yaml:"pinned,omitempty" json:"pinned,omitempty"`
	GroupID        *int      `yaml:"group_id,omitempty" json:"group_id,omitempty"`
	CookieStoreID  string    `yaml:"cookie_store_id,omitempty" json:"cookie_store_id,omitempty"`
	LastAccessed   time.Time `yaml:"last_accessed,omitempty" json:"last_accessed,omitempty"`
}

// LoadSnapshot reads a snapshot from a YAML or JSON file, chosen by
// extension. Tabs without an index take their position in the file.
func LoadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	var file snapshotFile
	if isJSON(path) {
		err = json.Unmarshal(data, &file)
	} else {
		err = yaml.Unmarshal(data, &file)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse snapshot %s: %w", path, err)
	}

	snap := &Snapshot{
		Version:  file.Version,
		WindowID: file.WindowID,
		Tabs:     make([]Tab, 0, len(file.Tabs)),
	}
	for i, rec := range file.Tabs {
		t := Tab{
			ID:             rec.ID,
			Index:          i,
			WindowID:       file.WindowID,
			OpenerTabID:    rec.OpenerTabID,
			Title:          rec.Title,
			URL:            rec.URL,
			IsInReaderMode: rec.IsInReaderMode || strings.HasPrefix(rec.URL, ReaderPrefix),
			Active:         rec.Active,
			Highlighted:    rec.Highlighted || rec.Active,
			Pinned:         rec.Pinned,
			GroupID:        GroupNone,
			CookieStoreID:  rec.CookieStoreID,
			LastAccessed:   rec.LastAccessed,
		}
		if rec.Index != nil {
			t.Index = *rec.Index
		}
		if rec.GroupID != nil {
			t.GroupID = *rec.GroupID
		}
		if t.ID == 0 {
			return nil, fmt.Errorf("snapshot %s: tab at position %d has no id", path, i)
		}
		snap.Tabs = append(snap.Tabs, t)
	}
	SortByIndex(snap.Tabs)
	return snap, nil
}

// SaveSnapshot writes a snapshot as YAML or JSON, chosen by extension.
func SaveSnapshot(path string, snap *Snapshot) error {
	file := snapshotFile{
		Version:  snapshotVersion,
		WindowID: snap.WindowID,
		Tabs:     make([]tabRecord, 0, len(snap.Tabs)),
	}
	for _, t := range snap.Tabs {
		index := t.Index
		rec := tabRecord{
			ID:             t.ID,
			Index:          &index,
			OpenerTabID:    t.OpenerTabID,
			Title:          t.Title,
			URL:            t.URL,
			IsInReaderMode: t.IsInReaderMode,
			Active:         t.Active,
			Highlighted:    t.Highlighted,
			Pinned:         t.Pinned,
			CookieStoreID:  t.CookieStoreID,
			LastAccessed:   t.LastAccessed,
		}
		if t.HasGroup() {
			group := t.GroupID
			rec.GroupID = &group
		}
		file.Tabs = append(file.Tabs, rec)
	}

	var (
		data []byte
		err  error
	)
	if isJSON(path) {
		data, err = json.MarshalIndent(file, "", "  ")
	} else {
		data, err = yaml.Marshal(file)
	}
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("failed to create snapshot directory: %w", err)
	}
	tempPath := path + ".tmp"
	if err := os.WriteFile(tempPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to rename snapshot: %w", err)
	}
	return nil
}

func isJSON(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}
