package config

import "time"

// Layout
const (
	MenuBarHeight = 1
	IconHeight    = 3
)

// Overlay stacking. Windows occupy ZIndexBase and up, see DesktopConfig.
const (
	ZIndexDesktop       = 0
	ZIndexIcons         = 10
	ZIndexMenuBar       = 1000
	ZIndexNotifications = 1100
	ZIndexLogs          = 1200
	ZIndexHelp          = 1300
)

// Timing
const (
	NormalFPS                = 60
	ClockInterval            = time.Second
	CPUUpdateInterval        = 2 * time.Second
	NotificationDuration     = 3 * time.Second
	DefaultAnimationDuration = 300 * time.Millisecond
	FastAnimationDuration    = 150 * time.Millisecond

	// FrameDelay is how long a newly mounted window stays in its
	// entering state before it settles.
	FrameDelay = time.Second / NormalFPS
)

// MaxLogMessages caps the in-app log buffer.
const MaxLogMessages = 100

var (
	// AnimationsEnabled is false when --no-animations or
	// appearance.no_animations is set.
	AnimationsEnabled = true

	// UseASCIIOnly replaces box drawing and glyphs with plain ASCII.
	UseASCIIOnly = false
)

// GetAnimationDuration returns the window enter duration, or zero when
// animations are disabled.
func GetAnimationDuration() time.Duration {
	if !AnimationsEnabled {
		return 0
	}
	return DefaultAnimationDuration
}

// GetFastAnimationDuration returns the duration of short transitions.
func GetFastAnimationDuration() time.Duration {
	if !AnimationsEnabled {
		return 0
	}
	return FastAnimationDuration
}
