// Package export writes the recorded sessions of a screen to disk.
package export

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/sadopc/projtimer/internal/store"
)

const (
	FormatCSV  = "csv"
	FormatJSON = "json"
)

// FileName returns projtimer-export-YYYY-MM-DD.<format>.
func FileName(format string, day time.Time) string {
	return fmt.Sprintf("projtimer-export-%s.%s", day.Format("2006-01-02"), format)
}

// ToFile writes sessions into dir using format and returns the path written.
func ToFile(sessions []store.Session, format, dir string) (string, error) {
	path := filepath.Join(dir, FileName(format, time.Now()))
	switch format {
	case FormatCSV:
		return path, ToCSV(sessions, path)
	case FormatJSON:
		return path, ToJSON(sessions, path)
	}
	return "", fmt.Errorf("unknown export format %q", format)
}
