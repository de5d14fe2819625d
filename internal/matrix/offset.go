package matrix

// Flat-offset helpers. The genetic operators walk a layer's parameters as a
// single flat index space independent of row/column semantics, so the
// offset arithmetic is exposed at package level rather than as methods.

// Offset returns the flat buffer offset of (row, col) for a matrix with the
// given column count.
func Offset(cols, row, col int) int {
	return row*cols + col
}

// RowOf returns the row of a flat offset for a matrix with the given column
// count.
func RowOf(cols, offset int) int {
	return offset / cols
}

// ColOf returns the column of a flat offset for a matrix with the given
// column count.
func ColOf(cols, offset int) int {
	return offset % cols
}
