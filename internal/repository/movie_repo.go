// internal/repository/movie_repo.go
package repository

import (
	"context"

	"nodosml-viz/internal/db"
	"nodosml-viz/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MovieRepository struct {
	db *mongo.Database
}

func NewMovieRepository() *MovieRepository {
	return &MovieRepository{db: db.DB()}
}

// movieDoc refleja los campos que nos interesan de la colección del backend;
// el rating de la proyección es el promedio de ratingStats.
type movieDoc struct {
	MovieID     int      `bson:"movieId"`
	Title       string   `bson:"title"`
	Year        *int     `bson:"year,omitempty"`
	Country     string   `bson:"country,omitempty"`
	Genres      []string `bson:"genres"`
	RatingStats *struct {
		Average float64 `bson:"average"`
		Count   int     `bson:"count"`
	} `bson:"ratingStats,omitempty"`
}

// ListForProjection carga las películas que tienen year y por lo menos un
// rating, en el orden natural de la colección (el orden de entrada es el
// orden de salida, así que no se reordena nada acá).
func (r *MovieRepository) ListForProjection(ctx context.Context, collection string) ([]models.MovieRecord, error) {
	filter := bson.M{
		"year":              bson.M{"$ne": nil},
		"ratingStats.count": bson.M{"$gt": 0},
	}

	opts := options.Find().SetProjection(bson.M{
		"movieId":     1,
		"title":       1,
		"year":        1,
		"country":     1,
		"genres":      1,
		"ratingStats": 1,
	})

	cur, err := r.db.Collection(collection).Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.MovieRecord
	for cur.Next(ctx) {
		var d movieDoc
		if err := cur.Decode(&d); err != nil {
			return nil, err
		}

		rec := models.MovieRecord{
			ID:      d.MovieID,
			Title:   d.Title,
			Year:    d.Year,
			Country: d.Country,
			Genres:  d.Genres,
		}
		if d.RatingStats != nil {
			rec.Rating = &d.RatingStats.Average
		}
		out = append(out, rec)
	}
	return out, cur.Err()
}
