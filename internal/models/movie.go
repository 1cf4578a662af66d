package models

// MovieRecord es la película tal como llega en el JSON de entrada.
// year y rating son punteros para distinguir "falta el campo" de un cero
// real al validar; el resto viaja tal cual hacia la salida.
type MovieRecord struct {
	ID      int      `json:"id" bson:"id"`
	Title   string   `json:"title" bson:"title"`
	Year    *int     `json:"year,omitempty" bson:"year,omitempty"`
	Rating  *float64 `json:"rating,omitempty" bson:"rating,omitempty"`
	Country string   `json:"country" bson:"country"`
	Genres  []string `json:"genres" bson:"genres"`
}

// MoviePoint es una película ya proyectada a 2D, con sus campos originales.
type MoviePoint struct {
	X       float64  `json:"x"`
	Y       float64  `json:"y"`
	ID      int      `json:"id"`
	Title   string   `json:"title"`
	Year    int      `json:"year"`
	Rating  float64  `json:"rating"`
	Country string   `json:"country"`
	Genres  []string `json:"genres"`
}

type ProjectionMetadata struct {
	Technique   string `json:"technique"`
	StartYear   int    `json:"startYear"`
	EndYear     int    `json:"endYear"`
	TotalPoints int    `json:"totalPoints"`
}

// ProjectionResult es el objeto que se escribe en el archivo de salida.
type ProjectionResult struct {
	Points   []MoviePoint       `json:"points"`
	Metadata ProjectionMetadata `json:"metadata"`
}
