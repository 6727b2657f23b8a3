package errclass

import (
	"encoding/json"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestClassifyParse_JSON(t *testing.T) {
	t.Run("truncated input", func(t *testing.T) {
		var v map[string]any
		err := json.Unmarshal([]byte(`{"a":`), &v)
		require.Error(t, err)

		class, ok := Classify(err)
		require.True(t, ok)
		require.Equal(t, ClassUnexpectedEof, class)
	})

	t.Run("malformed input", func(t *testing.T) {
		var v map[string]any
		err := json.Unmarshal([]byte(`{"a":}`), &v)
		require.Error(t, err)

		class, ok := Classify(err)
		require.True(t, ok)
		require.Equal(t, ClassSyntaxError, class)
	})

	t.Run("mismatched value type", func(t *testing.T) {
		var v struct {
			A int `json:"a"`
		}
		err := json.Unmarshal([]byte(`{"a":"ten"}`), &v)
		require.Error(t, err)

		class, ok := Classify(err)
		require.True(t, ok)
		require.Equal(t, ClassInvalidData, class)
	})

	t.Run("non-pointer destination", func(t *testing.T) {
		var v map[string]any
		err := json.Unmarshal([]byte(`{}`), v)
		require.Error(t, err)

		class, ok := Classify(err)
		require.True(t, ok)
		require.Equal(t, ClassTypeError, class)
	})
}

func TestClassifyParse_YAML(t *testing.T) {
	var v struct {
		Port int `yaml:"port"`
	}
	err := yaml.Unmarshal([]byte("port: not-a-number"), &v)
	require.Error(t, err)

	class, ok := Classify(err)
	require.True(t, ok)
	require.Equal(t, ClassInvalidData, class)
}

func TestClassifyParse_TOML(t *testing.T) {
	var v map[string]any
	_, err := toml.Decode("key = ", &v)
	require.Error(t, err)

	class, ok := Classify(err)
	require.True(t, ok)
	require.Equal(t, ClassSyntaxError, class)
}
