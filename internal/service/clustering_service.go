package service

import (
	"encoding/json"
	"fmt"
	"log"

	"nodosml-viz/internal/clusterer"
	"nodosml-viz/internal/embed"
	"nodosml-viz/internal/features"
	"nodosml-viz/internal/models"
)

// ====== Clustering de usuarios por preferencias ======

type ClusteringService struct {
	engine      *embed.Engine
	kmeans      *clusterer.KMeans
	numClusters int
}

func NewClusteringService(engine *embed.Engine, km *clusterer.KMeans, numClusters int) *ClusteringService {
	if numClusters <= 0 {
		numClusters = 5
	}
	return &ClusteringService{
		engine:      engine,
		kmeans:      km,
		numClusters: numClusters,
	}
}

// Cluster parsea el array JSON de usuarios y devuelve un punto por usuario,
// en el mismo orden: coordenadas t-SNE para graficar y etiqueta k-means
// calculada sobre los vectores estandarizados (no los reducidos).
func (s *ClusteringService) Cluster(rawInput string) ([]models.UserPoint, error) {
	var users []models.UserRecord
	if err := json.Unmarshal([]byte(rawInput), &users); err != nil {
		return nil, fmt.Errorf("parseando la entrada: %w", err)
	}
	log.Printf("[usercluster] %d usuarios cargados", len(users))

	// 1) Vectores de preferencias estandarizados
	matrix, err := features.PreferenceMatrix(users)
	if err != nil {
		return nil, err
	}
	scaled := features.Standardize(matrix)

	// 2) Coordenadas 2D, solo para visualización
	coords, _, err := s.engine.Reduce(embed.TechniqueTSNE, scaled)
	if err != nil {
		return nil, err
	}
	log.Printf("[usercluster] coordenadas t-SNE calculadas")

	// 3) Clusters sobre los vectores estandarizados
	labels, err := s.kmeans.Partition(scaled, s.numClusters)
	if err != nil {
		return nil, err
	}
	log.Printf("[usercluster] %d clusters asignados", s.numClusters)

	points := make([]models.UserPoint, len(users))
	for i, u := range users {
		points[i] = models.UserPoint{
			UserID:        u.UserID,
			X:             coords[i][0],
			Y:             coords[i][1],
			Cluster:       labels[i],
			SampleRatings: u.SampleRatings,
		}
	}
	return points, nil
}
