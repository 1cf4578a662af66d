package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"nodosml-viz/internal/clusterer"
	"nodosml-viz/internal/config"
	"nodosml-viz/internal/embed"
	"nodosml-viz/internal/service"
)

func usage() {
	fmt.Fprintln(os.Stderr, "Uso: usercluster '<json de usuarios>'")
	fmt.Fprintln(os.Stderr, `  ejemplo: usercluster '[{"userId":1,"preferences":[0.5,1.2,3.0],"sampleRatings":[]}]'`)
}

func main() {
	if len(os.Args) != 2 {
		usage()
		os.Exit(1)
	}

	cfg := config.Load()

	engine := embed.NewEngine(embed.Options{
		Seed:         cfg.Seed,
		Perplexity:   cfg.TSNEPerplexity,
		LearningRate: cfg.TSNELearningRate,
		Iterations:   cfg.TSNEIterations,
	})
	km := clusterer.New(cfg.Seed)
	svc := service.NewClusteringService(engine, km, cfg.NumClusters)

	points, err := svc.Cluster(os.Args[1])
	if err != nil {
		log.Fatalf("[usercluster] error: %v", err)
	}

	// stdout lleva únicamente el JSON; el log ya sale por stderr
	if err := json.NewEncoder(os.Stdout).Encode(points); err != nil {
		log.Fatalf("[usercluster] error serializando la salida: %v", err)
	}
}
