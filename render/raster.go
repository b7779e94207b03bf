package render

// Line calls plot for every cell on the segment (x0,y0)-(x1,y1), endpoints included
// Integer Bresenham, all octants
func Line(x0, y0, x1, y1 int, plot func(x, y int)) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// Polygon draws the closed outline through pts
func Polygon(pts [][2]int, plot func(x, y int)) {
	switch len(pts) {
	case 0:
		return
	case 1:
		plot(pts[0][0], pts[0][1])
		return
	}
	for i := range pts {
		a := pts[i]
		b := pts[(i+1)%len(pts)]
		Line(a[0], a[1], b[0], b[1], plot)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
