package h

import (
	"encoding/json"
)

func ToJson(input interface{}) ([]byte, error) {
	if input == nil {
		return nil, nil
	}
	switch value := input.(type) {
	case string:
		return []byte(value), nil
	case []byte:
		return value, nil
	default:
		return json.Marshal(input)
	}
}

func FromJson(data []byte, dest interface{}) error {
	return json.Unmarshal(data, dest)
}
