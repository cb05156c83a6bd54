package visualize

// ANSI foreground colors.
const (
	ansiReset  = "\033[0m"
	ansiRed    = "\033[31m"
	ansiGreen  = "\033[32m"
	ansiYellow = "\033[33m"
	ansiCyan   = "\033[36m"
)

func paint(s, color string, enabled bool) string {
	if !enabled {
		return s
	}
	return color + s + ansiReset
}

// Grid is the read-only view of a score matrix used for rendering.
type Grid interface {
	Rows() int
	Cols() int
	At(i, j int) int
}
