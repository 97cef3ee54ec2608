package tui

import (
	"github.com/sadopc/projtimer/internal/hms"
	"github.com/sadopc/projtimer/internal/store"
)

// --- Messages ---

type sessionsLoadedMsg struct {
	sessions []store.Session
}


type statusMsg struct {
	text    string
	isError bool
}

type exportDoneMsg struct {
	path string
}

// --- Helpers ---

func formatSeconds(secs int64) string {
	return hms.Format(secs)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if n <= 0 || len(r) <= n {
		return s
	}
	if n == 1 {
		return "…"
	}
	return string(r[:n-1]) + "…"
}
