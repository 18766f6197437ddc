package twenty48

// mergeLine compacts one line of tiles toward its leading edge: zeros drop
// out, equal adjacent survivors merge into their sum (a tile merges at most
// once per move), and the result is padded back to the input length.
// points is the sum of the merged tiles. changed reports whether the
// compaction shortened the line, which is also how move legality is
// decided.
func mergeLine(line []uint16) (merged []uint16, points float64, changed bool) {
	merged = make([]uint16, 0, len(line))

	var pending uint16
	for _, tile := range line {
		switch {
		case tile == 0:
			continue
		case tile == pending:
			merged = append(merged, 2*tile)
			points += 2 * float64(tile)
			pending = 0
		default:
			if pending != 0 {
				merged = append(merged, pending)
			}
			pending = tile
		}
	}
	if pending != 0 {
		merged = append(merged, pending)
	}

	changed = len(merged) != len(line)
	for len(merged) < len(line) {
		merged = append(merged, 0)
	}
	return merged, points, changed
}

// strides describes the scan order for a move: the first cell, the offset
// between lines, and the offset within a line, such that every line is
// read in the push direction of the move.
func strides(dir Direction) (start, outer, inner int) {
	switch dir {
	case Up:
		return 0, 1, Width
	case Down:
		return (Height - 1) * Width, 1, -Width
	case Left:
		return 0, Width, 1
	case Right:
		return Width*Height - 1, -Width, -1
	default:
		panic("twenty48: unknown direction")
	}
}

// shiftAndMerge applies one move to a board without spawning, returning the
// shifted board, the points it scores, and whether the move is legal.
func shiftAndMerge(tiles [Width * Height]uint16, dir Direction) ([Width * Height]uint16, float64, bool) {
	start, outer, inner := strides(dir)

	var shifted [Width * Height]uint16
	var points float64
	changed := false

	line := make([]uint16, Width)
	for o := 0; o < Height; o++ {
		for i := 0; i < Width; i++ {
			line[i] = tiles[start+o*outer+i*inner]
		}

		merged, linePoints, lineChanged := mergeLine(line)
		points += linePoints
		changed = changed || lineChanged

		for i := 0; i < Width; i++ {
			shifted[start+o*outer+i*inner] = merged[i]
		}
	}
	return shifted, points, changed
}
