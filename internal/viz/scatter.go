package viz

import (
	"fmt"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"nodosml-viz/internal/models"
)

// MovieChart arma el scatter de películas proyectadas, una sola serie con
// el nombre de la técnica usada.
func MovieChart(result *models.ProjectionResult) *charts.Scatter {
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: "Películas en 2D",
			Subtitle: fmt.Sprintf("técnica: %s / %d puntos / años %d a %d",
				result.Metadata.Technique,
				result.Metadata.TotalPoints,
				result.Metadata.StartYear,
				result.Metadata.EndYear,
			),
		}),
	)

	data := make([]opts.ScatterData, 0, len(result.Points))
	for _, p := range result.Points {
		data = append(data, opts.ScatterData{
			Name:  p.Title,
			Value: []interface{}{p.X, p.Y},
		})
	}
	scatter.AddSeries(result.Metadata.Technique, data)
	return scatter
}

// UserChart arma el scatter de usuarios, una serie por cluster para que el
// browser los pinte de colores distintos.
func UserChart(points []models.UserPoint) *charts.Scatter {
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Clusters de usuarios",
			Subtitle: fmt.Sprintf("%d usuarios", len(points)),
		}),
	)

	byCluster := make(map[int][]opts.ScatterData)
	for _, p := range points {
		byCluster[p.Cluster] = append(byCluster[p.Cluster], opts.ScatterData{
			Name:  fmt.Sprintf("user %d", p.UserID),
			Value: []interface{}{p.X, p.Y},
		})
	}

	ids := make([]int, 0, len(byCluster))
	for id := range byCluster {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	for _, id := range ids {
		scatter.AddSeries(fmt.Sprintf("cluster %d", id), byCluster[id])
	}
	return scatter
}
