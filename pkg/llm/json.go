package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/kaptinlin/jsonrepair"
)

// ErrUnparseable reports that an LLM response could not be coerced into
// the expected JSON shape even after extraction and repair. Callers can
// distinguish this outcome from a well-formed but empty result.
var ErrUnparseable = errors.New("llm response unparseable")

// GenerateSchema creates a JSON Schema from the given Go type, suitable
// for describing the expected shape of a structured-output response.
func GenerateSchema(value any) any {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}

	t := reflect.TypeOf(value)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	v := reflect.New(t).Interface()
	return reflector.Reflect(v)
}

// ExtractJSONFromResponse attempts to extract a JSON payload from an LLM
// response that may wrap it in markdown code fences or surrounding prose.
func ExtractJSONFromResponse(response string) string {
	response = strings.TrimSpace(response)

	if strings.Contains(response, "```json") {
		start := strings.Index(response, "```json")
		end := strings.Index(response[start+7:], "```")
		if end != -1 {
			return strings.TrimSpace(response[start+7 : start+7+end])
		}
	}

	if strings.HasPrefix(response, "```") {
		lines := strings.Split(response, "\n")
		if len(lines) > 2 {
			return strings.TrimSpace(strings.Join(lines[1:len(lines)-1], "\n"))
		}
	}

	jsonStart := strings.Index(response, "{")
	jsonEnd := strings.LastIndex(response, "}")
	if jsonStart != -1 && jsonEnd != -1 && jsonEnd > jsonStart {
		return response[jsonStart : jsonEnd+1]
	}

	jsonStart = strings.Index(response, "[")
	jsonEnd = strings.LastIndex(response, "]")
	if jsonStart != -1 && jsonEnd != -1 && jsonEnd > jsonStart {
		return response[jsonStart : jsonEnd+1]
	}

	return response
}

// UnmarshalResponse parses an LLM response into out. It extracts the JSON
// block first, tries a standard unmarshal, then falls back to repairing
// the payload. Failure is reported as ErrUnparseable so callers can
// degrade to an empty result without conflating it with "nothing found".
func UnmarshalResponse(response string, out any) error {
	input := ExtractJSONFromResponse(response)

	if err := json.Unmarshal([]byte(input), out); err == nil {
		return nil
	}

	// Some models double-encode the payload as a JSON string.
	var asString string
	if err := json.Unmarshal([]byte(input), &asString); err == nil {
		if err := json.Unmarshal([]byte(asString), out); err == nil {
			return nil
		}
		input = asString
	}

	repaired, err := jsonrepair.JSONRepair(input)
	if err != nil {
		return fmt.Errorf("%w: repair failed: %v", ErrUnparseable, err)
	}
	if err := json.Unmarshal([]byte(repaired), out); err != nil {
		return fmt.Errorf("%w: %v", ErrUnparseable, err)
	}
	return nil
}
