package helpers

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Formatos que el backend acepta para cada tipo de campo.
const (
	LayoutFecha     = "2006-01-02"
	LayoutTimestamp = "2006-01-02 15:04:05"
	LayoutHora      = "15:04"
)

// CreateLocalDate formatea un campo de solo fecha.
func CreateLocalDate(t time.Time) string {
	return t.Format(LayoutFecha)
}

// CreateTimestamp combina la fecha con una hora HH:mm (o HH:mm:ss).
// Con hora vacía se conserva el reloj de t.
func CreateTimestamp(t time.Time, hora string) (string, error) {
	hora = strings.TrimSpace(hora)
	if hora == "" {
		return t.Format(LayoutTimestamp), nil
	}
	h, m, s, err := parseHora(hora)
	if err != nil {
		return "", err
	}
	combined := time.Date(t.Year(), t.Month(), t.Day(), h, m, s, 0, t.Location())
	return combined.Format(LayoutTimestamp), nil
}

// CreateLocalTime normaliza una hora a HH:mm descartando los segundos.
func CreateLocalTime(hora string) (string, error) {
	h, m, _, err := parseHora(strings.TrimSpace(hora))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%02d:%02d", h, m), nil
}

// ParseFecha acepta yyyy-MM-dd y, por comodidad, timestamps completos.
func ParseFecha(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{LayoutFecha, LayoutTimestamp, time.RFC3339} {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("fecha inválida: %q", s)
}

func parseHora(hora string) (h, m, s int, err error) {
	parts := strings.Split(hora, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, 0, 0, fmt.Errorf("hora inválida: %q", hora)
	}
	vals := make([]int, 3)
	limits := []int{23, 59, 59}
	for i, p := range parts {
		if len(p) != 2 {
			return 0, 0, 0, fmt.Errorf("hora inválida: %q", hora)
		}
		n, convErr := strconv.Atoi(p)
		if convErr != nil || n < 0 || n > limits[i] {
			return 0, 0, 0, fmt.Errorf("hora inválida: %q", hora)
		}
		vals[i] = n
	}
	return vals[0], vals[1], vals[2], nil
}
