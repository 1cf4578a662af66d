package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"nodosml-viz/internal/cache"
	"nodosml-viz/internal/embed"
	"nodosml-viz/internal/features"
	"nodosml-viz/internal/models"
	"nodosml-viz/internal/repository"

	"github.com/google/uuid"
)

// ====== Proyección de películas a 2D ======

type ProjectionService struct {
	engine *embed.Engine
	// movies y runs quedan en nil cuando la fuente es archivo / no hay Mongo
	movies   *repository.MovieRepository
	runs     *repository.RunRepository
	source   string
	cacheTTL int
}

func NewProjectionService(
	engine *embed.Engine,
	movies *repository.MovieRepository,
	runs *repository.RunRepository,
	source string,
	cacheTTL int,
) *ProjectionService {
	return &ProjectionService{
		engine:   engine,
		movies:   movies,
		runs:     runs,
		source:   source,
		cacheTTL: cacheTTL,
	}
}

type ProjectionRequest struct {
	Technique string
	// ruta del archivo de entrada, o nombre de colección si la fuente es mongo
	Input  string
	Output string
}

func cacheKey(technique string, raw []byte) string {
	// el resultado depende solo de (técnica, bytes de entrada), así que la
	// clave por hash nunca queda desactualizada
	sum := sha256.Sum256(raw)
	return fmt.Sprintf("viz:proj:%s:%s", technique, hex.EncodeToString(sum[:]))
}

// Run ejecuta la proyección completa: cargar, validar, estandarizar, reducir
// y escribir el resultado. El archivo de salida solo se crea si todo lo
// anterior salió bien.
func (s *ProjectionService) Run(ctx context.Context, req ProjectionRequest) error {
	// la técnica se valida antes de tocar la entrada o la salida
	if !embed.Supported(req.Technique) {
		return fmt.Errorf("técnica desconocida: %q (válidas: pca, mds, tsne, umap)", req.Technique)
	}

	start := time.Now()

	// 1) Cargar películas
	movies, raw, err := s.loadMovies(ctx, req.Input)
	if err != nil {
		return err
	}
	log.Printf("[reduce] %d películas cargadas de %s", len(movies), req.Input)

	// 2) Cache por contenido (no-op si Redis no está configurado)
	key := cacheKey(req.Technique, raw)
	var cached models.ProjectionResult
	ok, err := cache.GetJSON(ctx, key, &cached)
	if err != nil {
		log.Printf("error leyendo el cache de Redis: %v", err)
	}
	if ok {
		log.Printf("[reduce] resultado en cache, se reutiliza")
		return writeResult(req.Output, &cached)
	}

	// 3) Matriz de features (year, rating) estandarizada
	matrix, err := features.MovieMatrix(movies)
	if err != nil {
		return err
	}
	scaled := features.Standardize(matrix)
	log.Printf("[reduce] features estandarizadas (%dx2)", len(scaled))

	// 4) Reducción a 2D
	coords, used, err := s.engine.Reduce(req.Technique, scaled)
	if err != nil {
		return err
	}
	log.Printf("[reduce] técnica aplicada: %s", used)

	// 5) Armar el resultado: cada punto lleva sus campos originales
	startYear, endYear := features.YearRange(movies)
	result := &models.ProjectionResult{
		Points: make([]models.MoviePoint, len(movies)),
		Metadata: models.ProjectionMetadata{
			Technique:   used,
			StartYear:   startYear,
			EndYear:     endYear,
			TotalPoints: len(movies),
		},
	}
	for i, mv := range movies {
		result.Points[i] = models.MoviePoint{
			X:       coords[i][0],
			Y:       coords[i][1],
			ID:      mv.ID,
			Title:   mv.Title,
			Year:    *mv.Year,
			Rating:  *mv.Rating,
			Country: mv.Country,
			Genres:  mv.Genres,
		}
	}

	// 6) Escribir salida
	if err := writeResult(req.Output, result); err != nil {
		return err
	}

	// 7) Cache + historial (no rompemos el resultado si fallan)
	if err := cache.SetJSON(ctx, key, result, s.cacheTTL); err != nil {
		log.Printf("error cacheando proyección en Redis: %v", err)
	}
	if s.runs != nil {
		run := &models.ProjectionRun{
			ID:            uuid.NewString(),
			Technique:     req.Technique,
			TechniqueUsed: used,
			Source:        s.source,
			Points:        len(movies),
			DurationMs:    time.Since(start).Milliseconds(),
		}
		if err := s.runs.Insert(ctx, run); err != nil {
			log.Printf("error guardando el run en Mongo: %v", err)
		}
	}

	return nil
}

// loadMovies devuelve las películas y los bytes crudos que dan identidad a
// la corrida (el archivo tal cual, o las películas de Mongo serializadas).
func (s *ProjectionService) loadMovies(ctx context.Context, input string) ([]models.MovieRecord, []byte, error) {
	if s.movies != nil {
		movies, err := s.movies.ListForProjection(ctx, input)
		if err != nil {
			return nil, nil, fmt.Errorf("leyendo películas de mongo (colección %s): %w", input, err)
		}
		raw, err := json.Marshal(movies)
		if err != nil {
			return nil, nil, err
		}
		return movies, raw, nil
	}

	raw, err := os.ReadFile(input)
	if err != nil {
		return nil, nil, fmt.Errorf("leyendo %s: %w", input, err)
	}
	var movies []models.MovieRecord
	if err := json.Unmarshal(raw, &movies); err != nil {
		return nil, nil, fmt.Errorf("parseando %s: %w", input, err)
	}
	return movies, raw, nil
}

func writeResult(path string, result *models.ProjectionResult) error {
	b, err := json.Marshal(result)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("escribiendo %s: %w", path, err)
	}
	return nil
}
