package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"nodosml-viz/internal/cache"
	"nodosml-viz/internal/config"
	"nodosml-viz/internal/db"
	"nodosml-viz/internal/embed"
	"nodosml-viz/internal/repository"
	"nodosml-viz/internal/service"
)

func usage() {
	fmt.Fprintln(os.Stderr, "Uso: reduce <tecnica> <entrada.json> <salida.json>")
	fmt.Fprintln(os.Stderr, "  tecnica: pca | mds | tsne | umap")
	fmt.Fprintln(os.Stderr, "  con REDUCE_SOURCE=mongo, <entrada.json> es el nombre de la colección")
}

func main() {
	if len(os.Args) != 4 {
		usage()
		os.Exit(1)
	}
	technique, input, output := os.Args[1], os.Args[2], os.Args[3]

	cfg := config.Load()
	cache.InitRedis(cfg)

	engine := embed.NewEngine(embed.Options{
		Seed:         cfg.Seed,
		Perplexity:   cfg.TSNEPerplexity,
		LearningRate: cfg.TSNELearningRate,
		Iterations:   cfg.TSNEIterations,
	})

	// Mongo solo se toca cuando la fuente lo pide
	var movies *repository.MovieRepository
	var runs *repository.RunRepository
	if cfg.ReduceSource == "mongo" {
		db.InitMongo(cfg)
		movies = repository.NewMovieRepository()
		runs = repository.NewRunRepository()
	}

	svc := service.NewProjectionService(engine, movies, runs, cfg.ReduceSource, cfg.CacheTTL)

	err := svc.Run(context.Background(), service.ProjectionRequest{
		Technique: technique,
		Input:     input,
		Output:    output,
	})
	if err != nil {
		log.Fatalf("[reduce] error: %v", err)
	}

	db.Close()
	log.Printf("[reduce] listo: %s", output)
}
