package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/julianstephens/dayplanner/internal/models"
)

func newTestJSONStore(t *testing.T) *JSONStore {
	t.Helper()
	return NewJSONStore(filepath.Join(t.TempDir(), ".obsidian", "plugins", "obsidian-day-planner", "data.json"))
}

func TestJSONStore_LoadMissingFileReturnsDefaults(t *testing.T) {
	store := newTestJSONStore(t)
	if err := store.Load(); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	settings, err := store.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings() failed: %v", err)
	}
	if settings != models.DefaultSettings() {
		t.Errorf("expected defaults, got %+v", settings)
	}
}

func TestJSONStore_InitAndRoundTrip(t *testing.T) {
	store := newTestJSONStore(t)
	if err := store.Init(); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	if _, err := os.Stat(store.GetConfigPath()); err != nil {
		t.Fatalf("expected data.json to exist: %v", err)
	}

	settings := models.DefaultSettings()
	settings.Mode = models.ModeCommand
	settings.CustomFolder = "Planner"
	settings.Mermaid = true
	settings.TimelineIcon = "clock"
	if err := store.SaveSettings(settings); err != nil {
		t.Fatalf("SaveSettings() failed: %v", err)
	}

	got, err := store.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings() failed: %v", err)
	}
	if got != settings {
		t.Errorf("got %+v, want %+v", got, settings)
	}
}

func TestJSONStore_InitKeepsExistingFile(t *testing.T) {
	store := newTestJSONStore(t)
	settings := models.DefaultSettings()
	settings.EndLabel = "STOP"
	if err := store.SaveSettings(settings); err != nil {
		t.Fatalf("SaveSettings() failed: %v", err)
	}

	if err := store.Init(); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	got, err := store.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings() failed: %v", err)
	}
	if got.EndLabel != "STOP" {
		t.Errorf("Init overwrote existing settings: %+v", got)
	}
}

func TestJSONStore_PreservesUnknownKeys(t *testing.T) {
	store := newTestJSONStore(t)
	if err := os.MkdirAll(filepath.Dir(store.GetConfigPath()), 0755); err != nil {
		t.Fatal(err)
	}
	raw := `{"mermaid": false, "startHour": 6, "pluginVersion": "0.9.0"}`
	if err := os.WriteFile(store.GetConfigPath(), []byte(raw), 0644); err != nil {
		t.Fatal(err)
	}

	settings, err := store.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings() failed: %v", err)
	}
	settings.Mermaid = true
	if err := store.SaveSettings(settings); err != nil {
		t.Fatalf("SaveSettings() failed: %v", err)
	}

	data, err := os.ReadFile(store.GetConfigPath())
	if err != nil {
		t.Fatal(err)
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("data.json is not valid JSON: %v", err)
	}
	if doc["startHour"] != float64(6) || doc["pluginVersion"] != "0.9.0" {
		t.Errorf("unknown keys were not preserved: %v", doc)
	}
	if doc["mermaid"] != true {
		t.Errorf("expected mermaid true, got %v", doc["mermaid"])
	}
}

func TestJSONStore_InvalidFile(t *testing.T) {
	store := newTestJSONStore(t)
	if err := os.MkdirAll(filepath.Dir(store.GetConfigPath()), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(store.GetConfigPath(), []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := store.GetSettings(); err == nil {
		t.Error("expected error for malformed data.json")
	}
	if err := store.SaveSettings(models.DefaultSettings()); err == nil {
		t.Error("expected SaveSettings to refuse to clobber malformed data.json")
	}
}

func TestJSONStore_ConcurrentSaves(t *testing.T) {
	store := newTestJSONStore(t)

	var wg sync.WaitGroup
	for i := 1; i <= 5; i++ {
		wg.Add(1)
		go func(zoom int) {
			defer wg.Done()
			settings := models.DefaultSettings()
			settings.TimelineZoomLevel = zoom
			if err := store.SaveSettings(settings); err != nil {
				t.Errorf("SaveSettings() failed: %v", err)
			}
		}(i)
	}
	wg.Wait()

	got, err := store.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings() failed: %v", err)
	}
	if got.TimelineZoomLevel < 1 || got.TimelineZoomLevel > 5 {
		t.Errorf("unexpected zoom level after concurrent saves: %d", got.TimelineZoomLevel)
	}

	entries, err := os.ReadDir(filepath.Dir(store.GetConfigPath()))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("expected only data.json to remain, found %d entries", len(entries))
	}
}
