// ABOUTME: Resolves the drawable page geometry from settings and the terminal size
// ABOUTME: Explicit sizes win; non-terminal output falls back to 80x24

package config

import (
	"fmt"

	"github.com/mauromedda/pagecols/internal/layout"
	"github.com/mauromedda/pagecols/internal/log"
)

// Fallback dimensions when output is not a terminal and no size is set.
const (
	FallbackWidth  = 80
	FallbackHeight = 24
)

// SizeFunc reports terminal dimensions.
type SizeFunc func() (width, height int, err error)

// Geometry returns the area frames are laid out in. size is consulted
// only when a dimension is unset; when it is nil or fails the fallback
// dimensions apply, with a warning when the query itself failed. One row is reserved for the status line when
// enabled.
func (s *Settings) Geometry(size SizeFunc) (layout.Geometry, error) {
	g := layout.Geometry{Width: s.Width, Height: s.Height}

	if g.Width == 0 || g.Height == 0 {
		w, h := FallbackWidth, FallbackHeight
		if size != nil {
			tw, th, err := size()
			if err != nil {
				log.Warn("terminal size unavailable (%v); assuming %dx%d", err, w, h)
			} else {
				w, h = tw, th
			}
		}
		if g.Width == 0 {
			g.Width = w
		}
		if g.Height == 0 {
			g.Height = h
		}
	}

	if s.Status {
		g.Height--
	}
	if g.Width < 1 || g.Height < 1 {
		return layout.Geometry{}, fmt.Errorf("%w: drawable area %dx%d", ErrInvalidSetting, g.Width, g.Height)
	}
	return g, nil
}
