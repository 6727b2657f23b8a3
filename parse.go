package errclass

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// classifyParse is the registry probe for structured-data parse failures.
// Syntax problems surface as script syntax errors, mismatched data as
// invalid data, and truncated input as an unexpected end of input.
func classifyParse(err error) (Class, bool) {
	var jsonSyntaxErr *json.SyntaxError
	if errors.As(err, &jsonSyntaxErr) {
		// Truncated input is reported as a syntax error with a dedicated
		// message rather than a distinct type.
		if strings.Contains(jsonSyntaxErr.Error(), "unexpected end of JSON input") {
			return ClassUnexpectedEof, true
		}
		return ClassSyntaxError, true
	}
	var jsonTypeErr *json.UnmarshalTypeError
	if errors.As(err, &jsonTypeErr) {
		return ClassInvalidData, true
	}
	var jsonInvalidErr *json.InvalidUnmarshalError
	if errors.As(err, &jsonInvalidErr) {
		return ClassTypeError, true
	}

	var yamlTypeErr *yaml.TypeError
	if errors.As(err, &yamlTypeErr) {
		return ClassInvalidData, true
	}

	var tomlParseErr toml.ParseError
	if errors.As(err, &tomlParseErr) {
		return ClassSyntaxError, true
	}

	return "", false
}
