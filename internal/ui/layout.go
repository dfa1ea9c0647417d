package ui

import "time"

// Screen rows used outside the list body.
const (
	// chromeRows is the header plus the footer.
	chromeRows = 2

	// sessionBarRows is added while an action session is open.
	sessionBarRows = 1

	// minListRows keeps the list usable on tiny terminals.
	minListRows = 3

	// rowChromeWidth covers the cursor, checkbox, spinner and badge padding.
	rowChromeWidth = 14
)

// Help overlay dimensions.
const (
	helpModalWidth = 44
	helpKeyWidth   = 12
)

// Timing constants.
const (
	// DefaultUIInterval is the default UI refresh interval.
	DefaultUIInterval = time.Second

	// statusMessageTTL is how long footer messages stay visible.
	statusMessageTTL = 3 * time.Second
)

// spinnerFrames animate running rows while the UI is resumed.
var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
