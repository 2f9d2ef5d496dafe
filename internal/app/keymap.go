package app

// Key binding constants used in handleKey.
const (
	KeyQuit         = "ctrl+c"
	KeyEsc          = "esc"
	KeyTab          = "tab"
	KeyEnter        = "enter"
	KeyBackspace    = "backspace"
	KeyUp           = "up"
	KeyDown         = "down"
	KeyToggleRecord = "ctrl+r"
	KeyNewChat      = "ctrl+n"
	KeyToggleReport = "ctrl+o"
	KeySaveCharts   = "ctrl+s"
	KeyDeleteChat   = "ctrl+d"
)
