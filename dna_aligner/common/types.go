package common

// GapChar marks a position where one sequence is aligned against nothing.
const GapChar = '-'

// Alignment modes, named the way they are selected on the command line.
const (
	ModeLocal  = "smith-waterman"
	ModeGlobal = "needleman-wunsch"
)

// Scheme is a linear scoring scheme.
// Match and Mismatch score a substitution, Gap scores each gap position.
type Scheme struct {
	Match    int `yaml:"match"`
	Mismatch int `yaml:"mismatch"`
	Gap      int `yaml:"gap"`
}

// Subst returns the substitution score for aligning a against b.
func (s Scheme) Subst(a, b byte) int {
	if a == b {
		return s.Match
	}
	return s.Mismatch
}

// Position is a matrix cell coordinate. Row indexes seq1, Col indexes seq2.
type Position struct {
	Row int
	Col int
}

// MaxScoreLocation is the highest scoring cell found while filling a local matrix.
// On ties the first cell in row-major order wins.
type MaxScoreLocation struct {
	Score    int
	Position Position
}

// AlignedPair holds two equal-length aligned strings.
type AlignedPair struct {
	Top    string
	Bottom string
}

// Len returns the number of alignment columns.
func (p AlignedPair) Len() int {
	return len(p.Top)
}
