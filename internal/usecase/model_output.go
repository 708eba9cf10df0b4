package usecase

import (
	"errors"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/kaptinlin/jsonrepair"
	"github.com/spf13/cast"
)

var errNotAnObject = errors.New("model output is not a JSON object")

const codeFence = "```"

// extractJSON returns the content of the first fenced block, without a
// leading json language tag. Unfenced text is returned trimmed.
func extractJSON(raw string) string {
	text := strings.TrimSpace(raw)
	if !strings.Contains(text, codeFence) {
		return text
	}

	text = strings.Split(text, codeFence)[1]
	if len(text) >= 4 && strings.EqualFold(text[:4], "json") {
		text = text[4:]
	}
	return strings.TrimSpace(text)
}

// decodeObject decodes a JSON object. Truncated objects are repaired only if
// the repaired value still contains one of the expected keys.
func decodeObject(text string, expected ...string) (map[string]any, error) {
	var obj map[string]any
	err := jsoniter.UnmarshalFromString(text, &obj)
	if err == nil {
		if obj == nil {
			return nil, errNotAnObject
		}
		return obj, nil
	}
	originalErr := err

	if !strings.HasPrefix(text, "{") {
		return nil, originalErr
	}

	repaired, err := jsonrepair.JSONRepair(text)
	if err != nil {
		return nil, originalErr
	}

	obj = nil
	if err := jsoniter.UnmarshalFromString(repaired, &obj); err != nil || obj == nil {
		return nil, originalErr
	}

	for _, key := range expected {
		if _, ok := obj[key]; ok {
			return obj, nil
		}
	}
	return nil, originalErr
}

// stringList coerces every element of a JSON array to text. Anything that is
// not an array yields an empty list.
func stringList(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return []string{}
	}

	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, stringValue(item))
	}
	return out
}

// stringValue renders scalars with cast and composite values as compact JSON.
func stringValue(v any) string {
	switch v.(type) {
	case map[string]any, []any:
		s, err := jsoniter.MarshalToString(v)
		if err != nil {
			return ""
		}
		return s
	}
	return cast.ToString(v)
}
