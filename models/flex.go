package models

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// FlexInt permite deserializar identificadores que pueden venir como número, string o estructura {id: ...}.
type FlexInt int

// UnmarshalJSON soporta formatos heterogéneos en las respuestas del backend.
func (fi *FlexInt) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*fi = 0
		return nil
	}
	switch trimmed[0] {
	case '{':
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &obj); err != nil {
			return err
		}
		for _, key := range []string{"id", "Id", "usuaId"} {
			if raw, ok := obj[key]; ok && raw != nil {
				return fi.UnmarshalJSON(raw)
			}
		}
		*fi = 0
		return nil
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*fi = 0
			return nil
		}
		v, err := strconv.Atoi(s)
		if err != nil {
			return err
		}
		*fi = FlexInt(v)
		return nil
	default:
		var f float64
		if err := json.Unmarshal(trimmed, &f); err != nil {
			return err
		}
		*fi = FlexInt(int(f))
		return nil
	}
}

// MarshalJSON serializa el valor interno como entero.
func (fi FlexInt) MarshalJSON() ([]byte, error) {
	return json.Marshal(int(fi))
}

// Int devuelve el valor entero nativo.
func (fi FlexInt) Int() int {
	return int(fi)
}

// FlexBool acepta true/false, "true"/"1"/"si"/"Activo" y números.
type FlexBool bool

// UnmarshalJSON interpreta las variantes de booleano que devuelve el backend.
func (fb *FlexBool) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*fb = false
		return nil
	}
	switch trimmed[0] {
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(trimmed, &b); err != nil {
			return err
		}
		*fb = FlexBool(b)
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		switch strings.ToLower(strings.TrimSpace(s)) {
		case "true", "1", "si", "sí", "activo", "activa":
			*fb = true
		default:
			*fb = false
		}
	default:
		var f float64
		if err := json.Unmarshal(trimmed, &f); err != nil {
			return err
		}
		*fb = f != 0
	}
	return nil
}

// Bool devuelve el valor nativo.
func (fb FlexBool) Bool() bool {
	return bool(fb)
}
