package repository

import (
	"context"
	"time"

	"nodosml-viz/internal/db"
	"nodosml-viz/internal/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type RunRepository struct {
	col *mongo.Collection
}

func NewRunRepository() *RunRepository {
	return &RunRepository{
		col: db.DB().Collection("projection_runs"),
	}
}

func (r *RunRepository) Insert(ctx context.Context, run *models.ProjectionRun) error {
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now()
	}
	_, err := r.col.InsertOne(ctx, run)
	return err
}
