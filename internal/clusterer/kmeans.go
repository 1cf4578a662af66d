package clusterer

import (
	"fmt"
	"math/rand"

	"github.com/muesli/clusters"
)

// tope de iteraciones de Lloyd
const maxIterations = 96

// KMeans agrupa vectores (ya estandarizados) en k clusters.
type KMeans struct {
	seed int64
}

func New(seed int64) *KMeans {
	return &KMeans{seed: seed}
}

// Partition devuelve la etiqueta de cada fila en el orden de entrada, con
// etiquetas en [0, k). Corre Lloyd sobre los primitivos de muesli/clusters
// con una fuente aleatoria propia sembrada con la seed: clusters.New
// resiembra la fuente global con el reloj, y eso haría variar los
// centroides iniciales entre corridas idénticas.
func (km *KMeans) Partition(data [][]float64, k int) ([]int, error) {
	if k <= 0 {
		return nil, fmt.Errorf("la cantidad de clusters debe ser positiva, llegó %d", k)
	}
	if len(data) < k {
		return nil, fmt.Errorf("se necesitan al menos %d registros para %d clusters, hay %d", k, k, len(data))
	}
	if len(data[0]) == 0 {
		return nil, fmt.Errorf("cada registro necesita al menos una dimensión")
	}

	var obs clusters.Observations
	for _, row := range data {
		obs = append(obs, clusters.Coordinates(row))
	}

	rng := rand.New(rand.NewSource(km.seed))
	cc := initialClusters(rng, k, len(data[0]))

	labels := make([]int, len(obs))
	for i := range labels {
		labels[i] = -1
	}

	for iter, changes := 0, 1; changes > 0 && iter < maxIterations; iter++ {
		changes = 0
		cc.Reset()

		for i, o := range obs {
			ci := cc.Nearest(o)
			cc[ci].Append(o)
			if labels[i] != ci {
				labels[i] = ci
				changes++
			}
		}

		// un cluster que quedó vacío roba una observación de alguno que
		// tenga más de una, y eso fuerza al menos una iteración más
		for ci := range cc {
			if len(cc[ci].Observations) > 0 {
				continue
			}
			ri := rng.Intn(len(obs))
			for len(cc[labels[ri]].Observations) <= 1 {
				ri = rng.Intn(len(obs))
			}
			cc[ci].Append(obs[ri])
			labels[ri] = ci
			changes = len(obs)
		}

		if changes > 0 {
			cc.Recenter()
		}
	}

	return labels, nil
}

// initialClusters arma los k centros con coordenadas tomadas de rng, igual
// que los siembra la librería pero sin pasar por la fuente global.
func initialClusters(rng *rand.Rand, k, dims int) clusters.Clusters {
	cc := make(clusters.Clusters, 0, k)
	for i := 0; i < k; i++ {
		center := make(clusters.Coordinates, dims)
		for j := range center {
			center[j] = rng.Float64()
		}
		cc = append(cc, clusters.Cluster{Center: center})
	}
	return cc
}
