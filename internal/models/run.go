package models

import "time"

// ProjectionRun es el registro que se guarda en Mongo tras cada proyección
// exitosa, para poder auditar qué se corrió y cuánto tardó.
type ProjectionRun struct {
	ID            string    `bson:"_id,omitempty"  json:"id"`
	Technique     string    `bson:"technique"      json:"technique"`
	TechniqueUsed string    `bson:"techniqueUsed"  json:"techniqueUsed"`
	Source        string    `bson:"source"         json:"source"`
	Points        int       `bson:"points"         json:"points"`
	DurationMs    int64     `bson:"durationMs"     json:"durationMs"`
	CreatedAt     time.Time `bson:"createdAt"      json:"createdAt"`
}
