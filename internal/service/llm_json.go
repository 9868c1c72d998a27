package service

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"
)

var (
	jsonFenceStart = regexp.MustCompile("(?is)^\\s*```(?:json)?\\s*")
	jsonFenceEnd   = regexp.MustCompile("(?is)\\s*```\\s*$")

	errNoJSONObject = errors.New("no json object in llm response")
)

// decodeLLMJSON limpia la respuesta del modelo y decodifica el primer objeto
// JSON que encuentre en out.
func decodeLLMJSON(raw string, out any) error {
	obj := extractFirstJSONObject(cleanLLMJSONResponse(raw))
	if obj == "" {
		return errNoJSONObject
	}
	return json.Unmarshal([]byte(obj), out)
}

// cleanLLMJSONResponse quita BOM y fences ```json ... ```.
func cleanLLMJSONResponse(raw string) string {
	s := strings.TrimPrefix(strings.TrimSpace(raw), "\uFEFF")
	if s == "" {
		return ""
	}
	s = jsonFenceStart.ReplaceAllString(s, "")
	s = jsonFenceEnd.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// extractFirstJSONObject devuelve el primer objeto {...} balanceado, ignorando
// llaves dentro de strings. Devuelve "" si no hay ninguno completo.
func extractFirstJSONObject(input string) string {
	start := strings.IndexByte(input, '{')
	if start == -1 {
		return ""
	}
	depth := 0
	inString, escaped := false, false
	for i := start; i < len(input); i++ {
		ch := input[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}
		switch ch {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return input[start : i+1]
			}
		}
	}
	return ""
}
