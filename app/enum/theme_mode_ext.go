package enum

const (
	sentinelDark  = "dark-mode"
	sentinelLight = "light-mode"
)

// Toggle returns the opposite mode (dark↔light).
func (t ThemeMode) Toggle() ThemeMode {
	if t == ThemeModeDark {
		return ThemeModeLight
	}
	return ThemeModeDark
}

// Dark reports whether the mode sets the dark marker.
func (t ThemeMode) Dark() bool {
	return t == ThemeModeDark
}

// Sentinel returns the value persisted for the mode: "dark-mode" or "light-mode".
// The zero ThemeMode persists as light.
func (t ThemeMode) Sentinel() string {
	if t.Dark() {
		return sentinelDark
	}
	return sentinelLight
}

// ParseSentinel resolves a persisted value to a mode. Only "dark-mode" means dark,
// anything else, including an empty value, is light.
func ParseSentinel(v string) ThemeMode {
	if v == sentinelDark {
		return ThemeModeDark
	}
	return ThemeModeLight
}
