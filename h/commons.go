package h

import (
	"strings"
)

// Map is a shortcut for map[string]interface{}
type Map map[string]interface{}

func IsStrEmpty(value string) bool {
	return len(strings.TrimSpace(value)) == 0
}

func AnyStr(candidates ...string) string {
	for _, c := range candidates {
		if !IsStrEmpty(c) {
			return c
		}
	}
	return ""
}
