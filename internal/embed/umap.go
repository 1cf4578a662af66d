package embed

import "fmt"

// No hay implementación nativa de umap en este build; el flag queda fijo y
// Reduce sustituye por pca anotando la sustitución en la metadata.
const umapAvailable = false

func (e *Engine) umap(data [][]float64) ([][]float64, error) {
	return nil, fmt.Errorf("umap no disponible en este build")
}
