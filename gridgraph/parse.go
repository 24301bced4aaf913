package gridgraph

import (
	"bufio"
	"fmt"
	"strings"
)

// CharMapping translates one character of a text grid into a cell value.
// ok=false rejects the character. marker=true additionally records the
// character's position in the Markers result of ParseText.
type CharMapping func(r rune) (value int, marker, ok bool)

// DefaultCharMapping understands the usual maze notation:
//
//	'#'        wall, value 0
//	'.'        open floor, value 1
//	'1'..'9'   terrain costing the digit to enter
//	'A'..'Z'   open floor (value 1) recorded as a marker, e.g. S and E
func DefaultCharMapping(r rune) (value int, marker, ok bool) {
	switch {
	case r == '#':
		return 0, false, true
	case r == '.':
		return 1, false, true
	case r >= '1' && r <= '9':
		return int(r - '0'), false, true
	case r >= 'A' && r <= 'Z':
		return 1, true, true
	default:
		return 0, false, false
	}
}

// Parsed is the result of ParseText.
type Parsed struct {
	Grid *GridGraph
	// Markers maps each marker character to its positions in row-major order.
	Markers map[rune][]Point
}

// Marker returns the single position of r, or false if r occurs zero or
// several times.
func (p *Parsed) Marker(r rune) (Point, bool) {
	pts := p.Markers[r]
	if len(pts) != 1 {
		return Point{}, false
	}
	return pts[0], true
}

// ParseText builds a GridGraph from lines of text, one row per line.
// Leading and trailing blank lines are ignored, as is a trailing '\r'.
// A nil mapping means DefaultCharMapping.
//
// Returns ErrEmptyGrid, ErrNonRectangular, or ErrBadRune (wrapped with the
// offending position).
func ParseText(text string, mapping CharMapping, opts GridOptions) (*Parsed, error) {
	if mapping == nil {
		mapping = DefaultCharMapping
	}

	var lines []string
	sc := bufio.NewScanner(strings.NewReader(strings.Trim(text, "\r\n")))
	sc.Buffer(make([]byte, 0, 64*1024), 1<<24)
	for sc.Scan() {
		lines = append(lines, strings.TrimSuffix(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gridgraph: reading text: %w", err)
	}

	values := make([][]int, 0, len(lines))
	markers := make(map[rune][]Point)
	for y, line := range lines {
		row := make([]int, 0, len(line))
		x := 0
		for _, r := range line {
			v, marker, ok := mapping(r)
			if !ok {
				return nil, fmt.Errorf("%w: %q at %d,%d", ErrBadRune, r, x, y)
			}
			if marker {
				markers[r] = append(markers[r], Pt(x, y))
			}
			row = append(row, v)
			x++
		}
		values = append(values, row)
	}

	gg, err := NewGridGraph(values, opts)
	if err != nil {
		return nil, err
	}
	return &Parsed{Grid: gg, Markers: markers}, nil
}
