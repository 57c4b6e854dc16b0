package model

// AddRawLineToActivityLog adds a pre-formatted log entry to the model's activity log,
// ensuring it doesn't exceed MaxActivityLogLines and sets the dirty flag.
func AddRawLineToActivityLog(m *Model, entry string) {
	m.ActivityLog = append(m.ActivityLog, entry)
	if len(m.ActivityLog) > MaxActivityLogLines {
		m.ActivityLog = m.ActivityLog[len(m.ActivityLog)-MaxActivityLogLines:]
	}
	m.ActivityLogDirty = true
}

// PushHistory records a submitted command line for recall. Blank lines and
// repeats of the previous entry are skipped. The recall cursor is reset.
func PushHistory(m *Model, line string) {
	if line == "" {
		m.HistoryIndex = len(m.CommandHistory)
		return
	}
	if n := len(m.CommandHistory); n == 0 || m.CommandHistory[n-1] != line {
		m.CommandHistory = append(m.CommandHistory, line)
		if len(m.CommandHistory) > MaxCommandHistory {
			m.CommandHistory = m.CommandHistory[len(m.CommandHistory)-MaxCommandHistory:]
		}
	}
	m.HistoryIndex = len(m.CommandHistory)
}

// RecallHistory moves the recall cursor by delta (-1 older, +1 newer) and
// returns the line to show. Moving past the newest entry yields "".
func RecallHistory(m *Model, delta int) (string, bool) {
	if len(m.CommandHistory) == 0 {
		return "", false
	}
	i := m.HistoryIndex + delta
	if i < 0 {
		i = 0
	}
	if i >= len(m.CommandHistory) {
		m.HistoryIndex = len(m.CommandHistory)
		return "", true
	}
	m.HistoryIndex = i
	return m.CommandHistory[i], true
}
