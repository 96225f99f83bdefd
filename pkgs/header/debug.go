package header

import (
	"github.com/whtowbin/empaparse/internal/logging"
)

// debugLog traces segmentation when debug output is enabled.
var debugLog = logging.New(false)

// SetDebug enables or disables segmenter debug output (the CLI's
// --debug flag).
func SetDebug(on bool) {
	debugLog = logging.New(on)
}
