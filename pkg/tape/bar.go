package tape

import (
	"strings"
	"time"

	"github.com/bastiangx/tapeytape/pkg/config"
)

// bar draws the time elapsed since the previous stroke. Without a previous
// stroke it is blank.
func bar(cfg *config.Config, elapsed time.Duration, first bool) string {
	if first {
		return strings.Repeat(" ", max(cfg.BarMaxWidth, 0))
	}

	seconds := max(elapsed.Seconds()-cfg.BarThreshold, 0)
	width := min(int(seconds/cfg.BarTimeUnit), cfg.BarMaxWidth)
	width = max(width, 0)

	drawn := strings.Repeat(cfg.BarCharacter, width)
	padding := strings.Repeat(" ", cfg.BarMaxWidth-width)
	if cfg.BarAlignment == config.AlignLeft {
		return drawn + padding
	}
	return padding + drawn
}
