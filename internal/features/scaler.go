package features

import "gonum.org/v1/gonum/stat"

// Standardize escala cada columna a media 0 y varianza 1 (poblacional).
// Una columna constante solo se centra; escalar por 0 metería NaN en todo
// el pipeline.
func Standardize(m [][]float64) [][]float64 {
	if len(m) == 0 {
		return nil
	}
	rows, cols := len(m), len(m[0])

	out := make([][]float64, rows)
	for i := range out {
		out[i] = make([]float64, cols)
	}

	col := make([]float64, rows)
	for j := 0; j < cols; j++ {
		for i := 0; i < rows; i++ {
			col[i] = m[i][j]
		}
		mean := stat.Mean(col, nil)
		std := stat.PopStdDev(col, nil)
		if std == 0 {
			std = 1
		}
		for i := 0; i < rows; i++ {
			out[i][j] = (m[i][j] - mean) / std
		}
	}
	return out
}
