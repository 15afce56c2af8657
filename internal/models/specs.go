package models

import (
	"encoding/json"
	"strings"
)

// Two spec encodings exist in stored data: current writes store a JSON
// string array, while rows imported from the old site store a plain
// comma-separated string. DecodeSpecs accepts both and always returns a
// non-nil list.
func DecodeSpecs(stored string) []string {
	if strings.TrimSpace(stored) == "" {
		return []string{}
	}
	if json.Valid([]byte(stored)) {
		list, ok := decodeSpecsArray(stored)
		if !ok {
			return []string{}
		}
		return list
	}
	return decodeSpecsCommaList(stored)
}

func decodeSpecsArray(s string) ([]string, bool) {
	var list []string
	if err := json.Unmarshal([]byte(s), &list); err != nil {
		return nil, false
	}
	if list == nil {
		list = []string{}
	}
	return list, true
}

func decodeSpecsCommaList(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// EncodeSpecs produces the stored representation for new writes.
func EncodeSpecs(list []string) string {
	if list == nil {
		list = []string{}
	}
	b, _ := json.Marshal(list)
	return string(b)
}
