package embed

import (
	"fmt"

	"github.com/danaugrs/go-tsne/tsne"
)

// tsne delega en go-tsne. La perplexity se acota a (n-1)/3 para que las
// entradas chicas no degeneren la búsqueda de sigmas, y siempre tiene que
// quedar por debajo de n.
func (e *Engine) tsne(data [][]float64) ([][]float64, error) {
	n := len(data)

	perplexity := e.perplexity
	if max := float64(n-1) / 3; perplexity > max {
		perplexity = max
	}
	if perplexity < 2 {
		perplexity = 2
	}
	if float64(n) <= perplexity {
		return nil, fmt.Errorf("tsne: con perplexity %.0f se necesitan más de %.0f filas, hay %d", perplexity, perplexity, n)
	}

	t := tsne.NewTSNE(2, perplexity, e.learningRate, e.iterations, false)
	Y := t.EmbedData(toDense(data), nil)

	return coordsFrom(Y), nil
}
