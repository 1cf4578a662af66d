package features

import (
	"fmt"

	"nodosml-viz/internal/models"
)

// MovieMatrix arma la matriz n×2 de (year, rating) validando los campos
// requeridos de cada película. El índice en el error es la posición en la
// entrada, para que el que armó el JSON pueda ubicar el registro roto.
func MovieMatrix(movies []models.MovieRecord) ([][]float64, error) {
	if len(movies) < 2 {
		return nil, fmt.Errorf("se necesitan al menos 2 películas para proyectar, llegaron %d", len(movies))
	}

	m := make([][]float64, len(movies))
	for i, mv := range movies {
		if mv.Title == "" {
			return nil, fmt.Errorf("película %d (id=%d): falta el campo title", i, mv.ID)
		}
		if mv.Year == nil {
			return nil, fmt.Errorf("película %d (id=%d): falta el campo year", i, mv.ID)
		}
		if mv.Rating == nil {
			return nil, fmt.Errorf("película %d (id=%d): falta el campo rating", i, mv.ID)
		}
		m[i] = []float64{float64(*mv.Year), *mv.Rating}
	}
	return m, nil
}

// YearRange devuelve el mínimo y máximo de year sobre la entrada.
func YearRange(movies []models.MovieRecord) (int, int) {
	first := true
	var lo, hi int
	for _, mv := range movies {
		if mv.Year == nil {
			continue
		}
		y := *mv.Year
		if first {
			lo, hi = y, y
			first = false
			continue
		}
		if y < lo {
			lo = y
		}
		if y > hi {
			hi = y
		}
	}
	return lo, hi
}

// PreferenceMatrix extrae los vectores de preferencias de los usuarios,
// validando que todos tengan la misma longitud (no vacía) y que el campo
// sampleRatings venga presente.
func PreferenceMatrix(users []models.UserRecord) ([][]float64, error) {
	if len(users) == 0 {
		return nil, fmt.Errorf("la entrada no trae usuarios")
	}

	width := len(users[0].Preferences)
	m := make([][]float64, len(users))
	for i, u := range users {
		if len(u.Preferences) == 0 {
			return nil, fmt.Errorf("usuario %d (userId=%d): preferences vacío", i, u.UserID)
		}
		if len(u.Preferences) != width {
			return nil, fmt.Errorf("usuario %d (userId=%d): preferences tiene longitud %d, se esperaba %d", i, u.UserID, len(u.Preferences), width)
		}
		if len(u.SampleRatings) == 0 {
			return nil, fmt.Errorf("usuario %d (userId=%d): falta el campo sampleRatings", i, u.UserID)
		}
		m[i] = u.Preferences
	}
	return m, nil
}
