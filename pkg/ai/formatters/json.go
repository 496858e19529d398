// Package formatters builds the prompts for each AI endpoint and turns the
// model's JSON replies into domain values.
package formatters

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Decode unmarshals a model reply into v. When the reply wraps the object in
// prose or code fences, the outermost {...} is tried instead.
func Decode(content string, v interface{}) error {
	content = strings.TrimSpace(content)
	if content == "" {
		return fmt.Errorf("empty model output")
	}
	err := json.Unmarshal([]byte(content), v)
	if err == nil {
		return nil
	}
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start < 0 || end <= start {
		return fmt.Errorf("model output is not JSON: %w", err)
	}
	if err2 := json.Unmarshal([]byte(content[start:end+1]), v); err2 != nil {
		return fmt.Errorf("model output is not JSON: %w", err2)
	}
	return nil
}

func mustMarshal(v interface{}) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(b)
}
