package embed

import (
	"fmt"
	"log"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// Técnicas de reducción soportadas.
const (
	TechniquePCA  = "pca"
	TechniqueMDS  = "mds"
	TechniqueTSNE = "tsne"
	TechniqueUMAP = "umap"
)

// FallbackTechnique es lo que queda en la metadata cuando se pide umap
// sin tenerlo disponible y se sustituye por pca.
const FallbackTechnique = "pca (fallback)"

// Supported dice si el nombre de técnica pertenece al conjunto válido.
func Supported(technique string) bool {
	switch technique {
	case TechniquePCA, TechniqueMDS, TechniqueTSNE, TechniqueUMAP:
		return true
	}
	return false
}

type Options struct {
	Seed         int64
	Perplexity   float64
	LearningRate float64
	Iterations   int
}

// Engine aplica técnicas de reducción a 2D sobre matrices ya estandarizadas.
type Engine struct {
	seed int64

	perplexity   float64
	learningRate float64
	iterations   int
}

func NewEngine(opts Options) *Engine {
	// defaults para opciones en cero
	if opts.Perplexity <= 0 {
		opts.Perplexity = 30
	}
	if opts.LearningRate <= 0 {
		opts.LearningRate = 100
	}
	if opts.Iterations <= 0 {
		opts.Iterations = 300
	}

	// la disponibilidad de umap se decide una sola vez, acá
	if !umapAvailable {
		log.Println("[embed] umap no disponible en este build, se sustituirá por pca")
	}

	return &Engine{
		seed:         opts.Seed,
		perplexity:   opts.Perplexity,
		learningRate: opts.LearningRate,
		iterations:   opts.Iterations,
	}
}

// Reduce proyecta la matriz a 2D con la técnica pedida. Devuelve las
// coordenadas (una fila por fila de entrada, mismo orden), el nombre de la
// técnica realmente aplicada y error. Cada llamada resiembra la fuente
// aleatoria global para que corridas repetidas den el mismo resultado.
func (e *Engine) Reduce(technique string, data [][]float64) ([][]float64, string, error) {
	if len(data) < 2 {
		return nil, "", fmt.Errorf("se necesitan al menos 2 filas para proyectar, hay %d", len(data))
	}

	rand.Seed(e.seed)

	switch technique {
	case TechniquePCA:
		coords, err := e.pca(data)
		return coords, technique, err

	case TechniqueMDS:
		coords, err := e.mds(data)
		return coords, technique, err

	case TechniqueTSNE:
		coords, err := e.tsne(data)
		return coords, technique, err

	case TechniqueUMAP:
		if !umapAvailable {
			log.Printf("[embed] umap no disponible, se aplica %s", FallbackTechnique)
			coords, err := e.pca(data)
			return coords, FallbackTechnique, err
		}
		coords, err := e.umap(data)
		return coords, technique, err

	default:
		return nil, "", fmt.Errorf("técnica desconocida: %q (válidas: pca, mds, tsne, umap)", technique)
	}
}

func toDense(data [][]float64) *mat.Dense {
	rows, cols := len(data), len(data[0])
	m := mat.NewDense(rows, cols, nil)
	for i, row := range data {
		m.SetRow(i, row)
	}
	return m
}

func coordsFrom(m mat.Matrix) [][]float64 {
	rows, _ := m.Dims()
	out := make([][]float64, rows)
	for i := 0; i < rows; i++ {
		out[i] = []float64{m.At(i, 0), m.At(i, 1)}
	}
	return out
}
