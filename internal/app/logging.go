package app

import (
	"fmt"
	"time"

	"github.com/Gaurav-Gosain/deskfolio/internal/config"
)

// logsPerPage returns how many log lines fit in the log viewer.
func (m *Desktop) logsPerPage() int {
	maxDisplayHeight := max(m.Height-8, 8)
	// title, blank, blank, hint
	fixedLines := 4
	if len(m.LogMessages) > maxDisplayHeight-fixedLines {
		// scroll indicator and its blank line
		fixedLines = 6
	}
	return max(maxDisplayHeight-fixedLines, 1)
}

func (m *Desktop) maxLogScroll() int {
	return max(len(m.LogMessages)-m.logsPerPage(), 0)
}

// Log adds a new log message to the log buffer and mirrors it to the
// process logger.
func (m *Desktop) Log(level, format string, args ...any) {
	message := fmt.Sprintf(format, args...)

	switch level {
	case "ERROR":
		m.logger.Error(message, "session", m.SessionID)
	case "WARN":
		m.logger.Warn(message, "session", m.SessionID)
	default:
		m.logger.Debug(message, "session", m.SessionID)
	}

	wasAtBottom := m.ShowLogs && m.LogScrollOffset >= m.maxLogScroll()-2

	m.LogMessages = append(m.LogMessages, LogMessage{
		Time:    time.Now(),
		Level:   level,
		Message: message,
	})
	if len(m.LogMessages) > config.MaxLogMessages {
		m.LogMessages = m.LogMessages[len(m.LogMessages)-config.MaxLogMessages:]
	}

	// sticky scroll
	if wasAtBottom {
		m.LogScrollOffset = m.maxLogScroll()
	}
}

// LogInfo logs an informational message.
func (m *Desktop) LogInfo(format string, args ...any) {
	m.Log("INFO", format, args...)
}

// LogWarn logs a warning message.
func (m *Desktop) LogWarn(format string, args ...any) {
	m.Log("WARN", format, args...)
}

// LogError logs an error message.
func (m *Desktop) LogError(format string, args ...any) {
	m.Log("ERROR", format, args...)
}

// ToggleLogs opens or closes the log viewer, scrolled to the newest entry.
func (m *Desktop) ToggleLogs() {
	m.ShowLogs = !m.ShowLogs
	if m.ShowLogs {
		m.LogInfo("Log viewer opened")
		m.LogScrollOffset = m.maxLogScroll()
	}
}

// ScrollLogs moves the log viewer by delta lines.
func (m *Desktop) ScrollLogs(delta int) {
	m.LogScrollOffset = min(max(m.LogScrollOffset+delta, 0), m.maxLogScroll())
}

// ShowNotification displays a temporary notification.
func (m *Desktop) ShowNotification(message, notifType string, duration time.Duration) {
	m.Notifications = append(m.Notifications, Notification{
		ID:        createID(),
		Message:   message,
		Type:      notifType,
		StartTime: time.Now(),
		Duration:  duration,
	})

	switch notifType {
	case "error":
		m.LogError("%s", message)
	case "warning":
		m.LogWarn("%s", message)
	default:
		m.LogInfo("%s", message)
	}
}

// CleanupNotifications removes expired notifications.
func (m *Desktop) CleanupNotifications() {
	now := time.Now()
	var active []Notification

	for _, notif := range m.Notifications {
		if now.Sub(notif.StartTime) < notif.Duration {
			active = append(active, notif)
		}
	}

	m.Notifications = active
}
