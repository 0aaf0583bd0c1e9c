package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconAdd      = "+"
	IconDelete   = "🗑"
	IconUsed     = "✓"
	IconClose    = "×"
	IconListView = "☰"
	IconGridView = "▦"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	PriorityBadgeText  = "PRIORITY ALERT"
	PricePrefix        = "Rp"
)

// Layout sizing
const (
	StatusDotSize    float32 = 12
	CardMinWidth     float32 = 360
	GridCellWidth    float32 = 260
	GridCellHeight   float32 = 120
	AddDialogWidth   float32 = 420
	AddDialogHeight  float32 = 460
	SettingsDlgWidth float32 = 420
	SettingsDlgMinH  float32 = 260
)

// Window sizing
const (
	WindowWidth  float32 = 480
	WindowHeight float32 = 720
)
