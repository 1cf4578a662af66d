package models

import "encoding/json"

// UserRecord llega en el array JSON que se pasa inline por argv.
// sampleRatings es opaco: se copia tal cual a la salida sin interpretarlo.
type UserRecord struct {
	UserID        int             `json:"userId"`
	Preferences   []float64       `json:"preferences"`
	SampleRatings json.RawMessage `json:"sampleRatings"`
}

// UserPoint es un usuario con sus coordenadas 2D y su cluster asignado.
type UserPoint struct {
	UserID        int             `json:"userId"`
	X             float64         `json:"x"`
	Y             float64         `json:"y"`
	Cluster       int             `json:"cluster"`
	SampleRatings json.RawMessage `json:"sampleRatings"`
}
