package embed

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// mds aplica escalado clásico (Torgerson): doble centrado de la matriz de
// distancias euclidianas al cuadrado y coordenadas desde los dos autovalores
// más grandes. No depende de ninguna semilla: el resultado es cerrado.
func (e *Engine) mds(data [][]float64) ([][]float64, error) {
	n := len(data)

	// distancias al cuadrado entre todas las filas
	d2 := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d2.SetSym(i, j, sqDist(data[i], data[j]))
		}
	}

	// B = -1/2 * J * D² * J con J = I - (1/n)·11ᵀ
	rowMean := make([]float64, n)
	var total float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			rowMean[i] += d2.At(i, j)
		}
		rowMean[i] /= float64(n)
		total += rowMean[i]
	}
	total /= float64(n)

	b := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			b.SetSym(i, j, -0.5*(d2.At(i, j)-rowMean[i]-rowMean[j]+total))
		}
	}

	var eig mat.EigenSym
	if ok := eig.Factorize(b, true); !ok {
		return nil, fmt.Errorf("mds: falló la descomposición espectral (%d filas)", n)
	}

	vals := eig.Values(nil)
	var vecs mat.Dense
	eig.VectorsTo(&vecs)

	// gonum devuelve los autovalores en orden ascendente: los dos que
	// importan son los últimos
	coords := make([][]float64, n)
	for i := range coords {
		coords[i] = make([]float64, 2)
	}
	for c := 0; c < 2; c++ {
		idx := n - 1 - c
		ev := vals[idx]
		if ev < 0 {
			// ruido numérico en autovalores que deberían ser >= 0
			ev = 0
		}
		s := math.Sqrt(ev)
		for i := 0; i < n; i++ {
			coords[i][c] = vecs.At(i, idx) * s
		}
	}
	return coords, nil
}

func sqDist(a, b []float64) float64 {
	var s float64
	for k := range a {
		d := a[k] - b[k]
		s += d * d
	}
	return s
}
