package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"sysreport/internal/model"
)

func TestWriteContainsEverySectionKey(t *testing.T) {
	// GPU and sensors deliberately unavailable: their keys must still
	// be written with markers.
	r := &model.Report{
		GeneratedAt: time.Now(),
		GPU:         model.GPUSection{Available: false, Note: "no GPU query tool found"},
		Sensors:     model.SensorsSection{TempErr: "not supported"},
	}

	path := filepath.Join(t.TempDir(), "system_report.json")
	if err := Write(r, path); err != nil {
		t.Fatalf("Write: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}

	var decoded map[string]json.RawMessage
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("report is not valid JSON: %v", err)
	}

	keys := []string{
		"generated_at", "basic_system", "uptime", "cpu", "memory",
		"disks", "network", "sensors", "gpu", "processes", "connections",
	}
	for _, k := range keys {
		if _, ok := decoded[k]; !ok {
			t.Errorf("top-level key %q missing from exported report", k)
		}
	}

	var gpu struct {
		Available bool   `json:"available"`
		Note      string `json:"note"`
	}
	if err := json.Unmarshal(decoded["gpu"], &gpu); err != nil {
		t.Fatalf("gpu section: %v", err)
	}
	if gpu.Available || gpu.Note == "" {
		t.Errorf("unavailable GPU should export available=false with a note, got %+v", gpu)
	}
}

func TestWriteToUnwritablePath(t *testing.T) {
	r := &model.Report{}
	err := Write(r, filepath.Join(t.TempDir(), "missing", "report.json"))
	if err == nil {
		t.Error("expected an I/O error for a nonexistent directory")
	}
}
