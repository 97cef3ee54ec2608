package export

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/sadopc/projtimer/internal/store"
)

type jsonExport struct {
	ExportedAt string        `json:"exported_at"`
	Count      int           `json:"count"`
	Sessions   []jsonSession `json:"sessions"`
}

type jsonSession struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	ElapsedSec int64  `json:"elapsed_seconds"`
	Elapsed    string `json:"elapsed"`
	RecordedAt string `json:"recorded_at"`
}

func ToJSON(sessions []store.Session, path string) error {
	export := jsonExport{
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Count:      len(sessions),
	}

	for _, s := range sessions {
		export.Sessions = append(export.Sessions, jsonSession{
			ID:         s.ID,
			Name:       s.Name,
			ElapsedSec: s.ElapsedSeconds,
			Elapsed:    s.ElapsedDisplay,
			RecordedAt: s.RecordedAt.Local().Format(time.RFC3339),
		})
	}

	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write json file: %w", err)
	}
	return nil
}
