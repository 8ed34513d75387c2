package edges

import "golang.org/x/sync/errgroup"

// interior sweeps every interior row into out. With workers > 1 the rows are
// split into contiguous ranges; row y always lands at offset y*cols*per, so
// the output does not depend on the worker count.
func (s sweep) interior(out []Edge, workers int) {
	rows := s.h - 1
	if rows <= 0 || s.cols == 0 {
		return
	}
	if limit := rows / minRowsPerWorker; workers > limit {
		workers = limit
	}
	if workers <= 1 {
		s.rows(out, 0, rows)
		return
	}

	perRow := s.cols * s.per
	chunk := (rows + workers - 1) / workers

	var g errgroup.Group
	for y0 := 0; y0 < rows; y0 += chunk {
		y1 := min(y0+chunk, rows)
		region := out[y0*perRow : y1*perRow]
		g.Go(func() error {
			s.rows(region, y0, y1)
			return nil
		})
	}
	// Workers never fail; Wait only joins them.
	_ = g.Wait()
}
