package scheduler

import (
	"golang.org/x/image/colornames"

	"github.com/color-game/swatchbook/notation"
)

// LocalName returns the SVG color keyword closest to c in RGB space. Ties go to the
// alphabetically first keyword, so aqua wins over cyan.
func LocalName(c notation.Color) string {
	best, bestDistance := "", 4.0
	for _, name := range colornames.Names {
		named := notation.FromImageColor(colornames.Map[name])
		dr, dg, db := c.Red-named.Red, c.Green-named.Green, c.Blue-named.Blue
		if d := dr*dr + dg*dg + db*db; d < bestDistance {
			best, bestDistance = name, d
		}
	}
	return best
}
