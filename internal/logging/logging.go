package logging

import (
	"fmt"
	"path/filepath"
	"time"
)

// LogFilePath builds a per-session log file path using OS-appropriate path
// separators.
func LogFilePath(logsDir, app string, sessionStart time.Time) string {
	return filepath.Join(
		logsDir,
		fmt.Sprintf("%s.%s.log", app, sessionStart.Format("20060102_150405")),
	)
}
