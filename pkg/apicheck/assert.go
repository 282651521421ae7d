package apicheck

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/devicelab-dev/appqa/pkg/core"
)

// assertJSON checks JSONPath expectations against a response body.
// A nil expected value asserts the path exists with a null value.
func assertJSON(body []byte, expects map[string]interface{}) error {
	if !gjson.ValidBytes(body) {
		return core.ErrAssertionFailed.WithMessage("response body is not valid JSON")
	}

	for jsonPath, want := range expects {
		value := gjson.GetBytes(body, convertJSONPath(jsonPath))
		if !value.Exists() {
			return core.ErrAssertionFailed.
				WithMessage(fmt.Sprintf("path %q not found in response", jsonPath))
		}
		if !jsonEqual(value, want) {
			return core.ErrAssertionFailed.
				WithMessage(fmt.Sprintf("path %q = %v, expected %v", jsonPath, value.Value(), want)).
				WithDetails(map[string]interface{}{
					"path":     jsonPath,
					"actual":   value.Value(),
					"expected": want,
				})
		}
	}

	return nil
}

// jsonEqual compares a gjson result to an expected value, tolerating
// the int/float mismatch YAML decoding introduces for numbers.
func jsonEqual(value gjson.Result, want interface{}) bool {
	switch w := want.(type) {
	case nil:
		return value.Type == gjson.Null
	case bool:
		return value.IsBool() && value.Bool() == w
	case int:
		return value.Type == gjson.Number && value.Num == float64(w)
	case int64:
		return value.Type == gjson.Number && value.Num == float64(w)
	case float64:
		return value.Type == gjson.Number && value.Num == w
	case string:
		return value.Type == gjson.String && value.String() == w
	default:
		return fmt.Sprintf("%v", value.Value()) == fmt.Sprintf("%v", want)
	}
}

// convertJSONPath converts JSONPath syntax to gjson path format.
// $.foo.bar -> foo.bar, $.items[0].id -> items.0.id
func convertJSONPath(path string) string {
	if strings.HasPrefix(path, "$.") {
		path = path[2:]
	} else if strings.HasPrefix(path, "$") {
		path = path[1:]
	}

	var result strings.Builder
	i := 0
	for i < len(path) {
		if path[i] == '[' {
			j := i + 1
			for j < len(path) && path[j] != ']' {
				j++
			}
			if j < len(path) {
				content := path[i+1 : j]
				if content == "*" {
					result.WriteString(".#")
				} else {
					result.WriteByte('.')
					result.WriteString(content)
				}
				i = j + 1
				continue
			}
		}
		result.WriteByte(path[i])
		i++
	}

	return result.String()
}
