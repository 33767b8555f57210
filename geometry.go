package cardtable

// inRange reports whether lo <= v <= hi.
func inRange(v, lo, hi float64) bool {
	return v >= lo && v <= hi
}

// Overlaps reports whether a and b overlap. Two rectangles overlap when their
// projections overlap on both axes. Rectangles that only share an edge count
// as overlapping, so a card resting flush against a slot still targets it.
func Overlaps(a, b Rect) bool {
	aLeft, bLeft := a.X, b.X
	aRight, bRight := a.X+a.Width, b.X+b.Width
	aTop, bTop := a.Y, b.Y
	aBottom, bBottom := a.Y+a.Height, b.Y+b.Height

	xOverlap := inRange(aLeft, bLeft, bRight) || inRange(bLeft, aLeft, aRight)
	yOverlap := inRange(aTop, bTop, bBottom) || inRange(bTop, aTop, aBottom)
	return xOverlap && yOverlap
}

// Overlaps reports whether r and other overlap. See the package-level Overlaps.
func (r Rect) Overlaps(other Rect) bool {
	return Overlaps(r, other)
}
