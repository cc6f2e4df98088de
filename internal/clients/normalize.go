package clients

import (
	"encoding/json"
	"strconv"
	"strings"
)

func normalizeToInt(value interface{}) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	case json.Number:
		if parsed, err := strconv.Atoi(v.String()); err == nil {
			return parsed, true
		}
	case string:
		if strings.TrimSpace(v) == "" {
			return 0, false
		}
		if parsed, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return parsed, true
		}
	case map[string]interface{}:
		for _, key := range []string{"id", "Id"} {
			if inner, ok := v[key]; ok {
				return normalizeToInt(inner)
			}
		}
	}
	return 0, false
}

// extraerID busca el identificador del recurso en la raíz de la respuesta o dentro de `data`.
func extraerID(body []byte, campo string) (int, bool) {
	if campo == "" {
		return 0, false
	}
	var raw map[string]interface{}
	if err := json.Unmarshal(body, &raw); err != nil {
		return 0, false
	}
	if id, ok := normalizeToInt(raw[campo]); ok && id > 0 {
		return id, true
	}
	if data, ok := raw["data"].(map[string]interface{}); ok {
		if id, ok := normalizeToInt(data[campo]); ok && id > 0 {
			return id, true
		}
	}
	return 0, false
}
