package plot

// Raster renders a series onto a cols x rows character grid bounded by the
// window, with the x and y axes drawn where they fall inside it. It is the
// text analogue of a graphing calculator's screen; rows are returned top
// first.
func Raster(s Series, w Window, cols, rows int) []string {
	if cols < 2 || rows < 2 || w.XMin >= w.XMax || w.YMin >= w.YMax {
		return nil
	}
	grid := make([][]byte, rows)
	for i := range grid {
		line := make([]byte, cols)
		for j := range line {
			line[j] = ' '
		}
		grid[i] = line
	}

	axisCol, onX := project(0, w.XMin, w.XMax, cols)
	axisRow, onY := project(0, w.YMin, w.YMax, rows)
	if onY {
		r := rows - 1 - axisRow
		for j := 0; j < cols; j++ {
			grid[r][j] = '-'
		}
	}
	if onX {
		for i := 0; i < rows; i++ {
			grid[i][axisCol] = '|'
		}
	}
	if onX && onY {
		grid[rows-1-axisRow][axisCol] = '+'
	}

	for _, p := range s {
		j, ok := project(p.X, w.XMin, w.XMax, cols)
		if !ok {
			continue
		}
		i, ok := project(p.Y, w.YMin, w.YMax, rows)
		if !ok {
			continue
		}
		grid[rows-1-i][j] = '*'
	}

	lines := make([]string, rows)
	for i, line := range grid {
		lines[i] = string(line)
	}
	return lines
}

// project maps v from [min, max] onto cell indices 0..n-1, reporting whether
// it lands inside the grid.
func project(v, min, max float64, n int) (int, bool) {
	k := int((v-min)/(max-min)*float64(n-1) + 0.5)
	if k < 0 || k >= n {
		return 0, false
	}
	return k, true
}
