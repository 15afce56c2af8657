package handler

import (
	"encoding/json"
	"strconv"
	"strings"
)

// OptionalPrice decodes a rental price that may arrive as a number, a
// numeric string, an empty string, or null. Empty and non-numeric values
// decode to absent, never to zero.
type OptionalPrice struct {
	Value *int64
}

func (p *OptionalPrice) UnmarshalJSON(data []byte) error {
	p.Value = nil
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case float64:
		n := int64(v)
		p.Value = &n
	case string:
		v = strings.TrimSpace(v)
		if v == "" {
			return nil
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil
		}
		n := int64(f)
		p.Value = &n
	}
	return nil
}
