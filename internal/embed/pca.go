package embed

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// pca proyecta cada fila sobre las dos primeras componentes principales.
func (e *Engine) pca(data [][]float64) ([][]float64, error) {
	X := toDense(data)
	rows, cols := X.Dims()
	if cols < 2 {
		return nil, fmt.Errorf("pca necesita al menos 2 columnas, hay %d", cols)
	}

	var pc stat.PC
	if ok := pc.PrincipalComponents(X, nil); !ok {
		return nil, fmt.Errorf("pca: falló la descomposición de la matriz %dx%d", rows, cols)
	}

	var vec mat.Dense
	pc.VectorsTo(&vec)

	// los scores se calculan sobre la matriz centrada por columna
	// (la entrada ya viene estandarizada, pero no lo asumimos)
	means := make([]float64, cols)
	colBuf := make([]float64, rows)
	for j := 0; j < cols; j++ {
		mat.Col(colBuf, j, X)
		means[j] = stat.Mean(colBuf, nil)
	}

	centered := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			centered.Set(i, j, X.At(i, j)-means[j])
		}
	}

	var proj mat.Dense
	proj.Mul(centered, vec.Slice(0, cols, 0, 2))

	return coordsFrom(&proj), nil
}
