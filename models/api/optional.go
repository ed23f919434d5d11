package apimodels

import (
	"bytes"
	"encoding/json"
)

// Optional отличает отсутствующий ключ от явного null в теле запроса
type Optional struct {
	Set   bool // ключ присутствовал в запросе
	Value any  // nil для null
}

func (o *Optional) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		o.Value = nil
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}

func Set(value any) Optional {
	return Optional{Set: true, Value: value}
}
