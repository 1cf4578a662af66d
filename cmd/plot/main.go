package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"nodosml-viz/internal/config"
	"nodosml-viz/internal/models"
	"nodosml-viz/internal/viz"

	"github.com/go-echarts/go-echarts/v2/charts"
)

func usage() {
	fmt.Fprintln(os.Stderr, "Uso: plot <resultado.json> <salida.html>")
	fmt.Fprintln(os.Stderr, "  acepta la salida de reduce (objeto) o de usercluster (array)")
}

func main() {
	if len(os.Args) != 3 {
		usage()
		os.Exit(1)
	}
	input, output := os.Args[1], os.Args[2]

	cfg := config.Load()

	raw, err := os.ReadFile(input)
	if err != nil {
		log.Fatalf("[plot] leyendo %s: %v", input, err)
	}

	chart, err := buildChart(raw)
	if err != nil {
		log.Fatalf("[plot] %v", err)
	}

	var page bytes.Buffer
	if err := chart.Render(&page); err != nil {
		log.Fatalf("[plot] renderizando: %v", err)
	}
	if err := os.WriteFile(output, page.Bytes(), 0o644); err != nil {
		log.Fatalf("[plot] escribiendo %s: %v", output, err)
	}
	log.Printf("[plot] listo: %s", output)

	if cfg.PlotHTTPAddr != "" {
		if err := viz.Serve(cfg.PlotHTTPAddr, page.Bytes()); err != nil {
			log.Fatalf("[plot] server: %v", err)
		}
	}
}

// buildChart decide la forma del resultado por el primer byte del JSON:
// un array es salida de usercluster, un objeto es salida de reduce.
func buildChart(raw []byte) (*charts.Scatter, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("el archivo de entrada está vacío")
	}

	if trimmed[0] == '[' {
		var points []models.UserPoint
		if err := json.Unmarshal(trimmed, &points); err != nil {
			return nil, fmt.Errorf("parseando puntos de usuarios: %w", err)
		}
		return viz.UserChart(points), nil
	}

	var result models.ProjectionResult
	if err := json.Unmarshal(trimmed, &result); err != nil {
		return nil, fmt.Errorf("parseando resultado de proyección: %w", err)
	}
	return viz.MovieChart(&result), nil
}
