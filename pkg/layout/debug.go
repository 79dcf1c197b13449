package layout

import "log"

// DebugMode enables diagnostic logging for degenerate layouts such as
// composites with no children.
var DebugMode = false

// SetDebugMode enables or disables diagnostic logging.
func SetDebugMode(debug bool) {
	DebugMode = debug
}

// Debugf logs a diagnostic message when DebugMode is enabled.
func Debugf(format string, args ...any) {
	if !DebugMode {
		return
	}
	log.Printf("DEBUG: "+format, args...)
}
