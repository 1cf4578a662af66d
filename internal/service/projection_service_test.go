package service

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"nodosml-viz/internal/embed"
	"nodosml-viz/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProjectionService() *ProjectionService {
	engine := embed.NewEngine(embed.Options{Seed: 42})
	return NewProjectionService(engine, nil, nil, "file", 3600)
}

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "movies.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func readResult(t *testing.T, path string) *models.ProjectionResult {
	t.Helper()
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var result models.ProjectionResult
	require.NoError(t, json.Unmarshal(raw, &result))
	return &result
}

const sampleInput = `[
	{"id":1,"title":"A","year":2000,"rating":7.5,"country":"US","genres":["drama"]},
	{"id":2,"title":"B","year":2010,"rating":8.0,"country":"UK","genres":["comedy"]},
	{"id":3,"title":"C","year":1995,"rating":6.2,"country":"AR","genres":["drama","crime"]},
	{"id":4,"title":"D","year":2020,"rating":9.1,"country":"JP","genres":["animation"]}
]`

func TestProjectionRun(t *testing.T) {
	svc := testProjectionService()
	input := writeInput(t, sampleInput)
	output := filepath.Join(t.TempDir(), "out.json")

	err := svc.Run(context.Background(), ProjectionRequest{
		Technique: "pca",
		Input:     input,
		Output:    output,
	})
	require.NoError(t, err)

	result := readResult(t, output)

	// un punto por película, en el orden de entrada
	require.Len(t, result.Points, 4)
	assert.Equal(t, []int{1, 2, 3, 4}, []int{
		result.Points[0].ID, result.Points[1].ID, result.Points[2].ID, result.Points[3].ID,
	})

	// la metadata refleja la entrada real
	assert.Equal(t, "pca", result.Metadata.Technique)
	assert.Equal(t, 1995, result.Metadata.StartYear)
	assert.Equal(t, 2020, result.Metadata.EndYear)
	assert.Equal(t, 4, result.Metadata.TotalPoints)

	// los campos originales viajan intactos junto a las coordenadas
	p := result.Points[2]
	assert.Equal(t, "C", p.Title)
	assert.Equal(t, 1995, p.Year)
	assert.Equal(t, 6.2, p.Rating)
	assert.Equal(t, "AR", p.Country)
	assert.Equal(t, []string{"drama", "crime"}, p.Genres)
}

func TestProjectionTwoMovieExample(t *testing.T) {
	svc := testProjectionService()
	input := writeInput(t, `[
		{"id":1,"title":"A","year":2000,"rating":7.5,"country":"US","genres":["drama"]},
		{"id":2,"title":"B","year":2010,"rating":8.0,"country":"UK","genres":["comedy"]}
	]`)
	output := filepath.Join(t.TempDir(), "out.json")

	err := svc.Run(context.Background(), ProjectionRequest{Technique: "pca", Input: input, Output: output})
	require.NoError(t, err)

	result := readResult(t, output)
	assert.Equal(t, 2000, result.Metadata.StartYear)
	assert.Equal(t, 2010, result.Metadata.EndYear)
	assert.Equal(t, 2, result.Metadata.TotalPoints)
	require.Len(t, result.Points, 2)
	assert.Equal(t, "A", result.Points[0].Title)
	assert.Equal(t, "B", result.Points[1].Title)
}

func TestProjectionUnknownTechnique(t *testing.T) {
	svc := testProjectionService()
	output := filepath.Join(t.TempDir(), "out.json")

	// la técnica se rechaza antes de tocar la entrada: el archivo ni existe
	err := svc.Run(context.Background(), ProjectionRequest{
		Technique: "isomap",
		Input:     filepath.Join(t.TempDir(), "no-existe.json"),
		Output:    output,
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "técnica desconocida")

	_, statErr := os.Stat(output)
	assert.True(t, os.IsNotExist(statErr))
}

func TestProjectionUMAPFallback(t *testing.T) {
	svc := testProjectionService()
	input := writeInput(t, sampleInput)
	output := filepath.Join(t.TempDir(), "out.json")

	err := svc.Run(context.Background(), ProjectionRequest{Technique: "umap", Input: input, Output: output})
	require.NoError(t, err)

	// la sustitución queda anotada, nunca silenciosa
	result := readResult(t, output)
	assert.Equal(t, "pca (fallback)", result.Metadata.Technique)
	assert.Len(t, result.Points, 4)
}

func TestProjectionDeterminism(t *testing.T) {
	svc := testProjectionService()
	input := writeInput(t, sampleInput)
	dir := t.TempDir()
	out1 := filepath.Join(dir, "a.json")
	out2 := filepath.Join(dir, "b.json")

	require.NoError(t, svc.Run(context.Background(), ProjectionRequest{Technique: "pca", Input: input, Output: out1}))
	require.NoError(t, svc.Run(context.Background(), ProjectionRequest{Technique: "pca", Input: input, Output: out2}))

	a, err := os.ReadFile(out1)
	require.NoError(t, err)
	b, err := os.ReadFile(out2)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestProjectionInputErrors(t *testing.T) {
	svc := testProjectionService()
	output := filepath.Join(t.TempDir(), "out.json")

	run := func(input string) error {
		return svc.Run(context.Background(), ProjectionRequest{Technique: "pca", Input: input, Output: output})
	}

	t.Run("archivo inexistente", func(t *testing.T) {
		err := run(filepath.Join(t.TempDir(), "nada.json"))
		assert.Error(t, err)
	})

	t.Run("json roto", func(t *testing.T) {
		err := run(writeInput(t, `{"no":"es un array"}`))
		assert.Error(t, err)
	})

	t.Run("falta year", func(t *testing.T) {
		err := run(writeInput(t, `[
			{"id":1,"title":"A","year":2000,"rating":7.5,"country":"US","genres":["drama"]},
			{"id":2,"title":"B","rating":8.0,"country":"UK","genres":["comedy"]}
		]`))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "year")
		assert.Contains(t, err.Error(), "película 1")
	})

	t.Run("una sola película", func(t *testing.T) {
		err := run(writeInput(t, `[{"id":1,"title":"A","year":2000,"rating":7.5,"country":"US","genres":[]}]`))
		assert.Error(t, err)
	})

	// en todos los casos la salida nunca se creó
	_, statErr := os.Stat(output)
	assert.True(t, os.IsNotExist(statErr))
}

func TestCacheKey(t *testing.T) {
	raw := []byte(sampleInput)

	// misma técnica y mismos bytes dan siempre la misma clave
	assert.Equal(t, cacheKey("pca", raw), cacheKey("pca", raw))

	// técnica o contenido distintos cambian la clave
	assert.NotEqual(t, cacheKey("pca", raw), cacheKey("mds", raw))
	assert.NotEqual(t, cacheKey("pca", raw), cacheKey("pca", []byte("[]")))

	assert.Contains(t, cacheKey("tsne", raw), "viz:proj:tsne:")
}
