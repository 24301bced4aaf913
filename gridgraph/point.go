package gridgraph

import "fmt"

// Point is a cell coordinate. X grows to the right, Y grows downwards (row index).
type Point struct {
	X, Y int
}

// Unit steps in screen orientation.
var (
	Up    = Point{0, -1}
	Down  = Point{0, 1}
	Left  = Point{-1, 0}
	Right = Point{1, 0}
)

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point { return Point{X: x, Y: y} }

// Add returns p translated by d.
func (p Point) Add(d Point) Point { return Point{p.X + d.X, p.Y + d.Y} }

// Sub returns the offset from q to p.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Scale multiplies both components by k.
func (p Point) Scale(k int) Point { return Point{p.X * k, p.Y * k} }

// RotateRight turns an offset 90° clockwise on screen.
func (p Point) RotateRight() Point { return Point{-p.Y, p.X} }

// RotateLeft turns an offset 90° counter-clockwise on screen.
func (p Point) RotateLeft() Point { return Point{p.Y, -p.X} }

// Manhattan returns |dx| + |dy| between p and q.
func (p Point) Manhattan(q Point) int { return absInt(p.X-q.X) + absInt(p.Y-q.Y) }

// Chebyshev returns max(|dx|, |dy|) between p and q.
func (p Point) Chebyshev(q Point) int { return max(absInt(p.X-q.X), absInt(p.Y-q.Y)) }

// String formats p as "x,y".
func (p Point) String() string { return fmt.Sprintf("%d,%d", p.X, p.Y) }

// ParseDirection maps an arrow or letter to a unit step:
// '^' 'U' 'u' → Up, 'v' 'D' 'd' → Down, '<' 'L' 'l' → Left, '>' 'R' 'r' → Right.
func ParseDirection(r rune) (Point, error) {
	switch r {
	case '^', 'U', 'u':
		return Up, nil
	case 'v', 'D', 'd':
		return Down, nil
	case '<', 'L', 'l':
		return Left, nil
	case '>', 'R', 'r':
		return Right, nil
	default:
		return Point{}, fmt.Errorf("%w: %q", ErrBadDirection, r)
	}
}

// In returns the neighbor of p one step in direction r (see ParseDirection).
func (p Point) In(r rune) (Point, error) {
	d, err := ParseDirection(r)
	if err != nil {
		return p, err
	}
	return p.Add(d), nil
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
