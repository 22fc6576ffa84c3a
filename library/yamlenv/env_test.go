package yamlenv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type sample struct {
	Port  *Env[int]    `yaml:"port"`
	Title *Env[string] `yaml:"title"`
	Debug *Env[bool]   `yaml:"debug"`
}

func TestEnv_Literal(t *testing.T) {
	var s sample
	err := yaml.Unmarshal([]byte("port: 8080\ntitle: Employee Registration\ndebug: true\n"), &s)
	require.NoError(t, err)

	assert.Equal(t, 8080, s.Port.Value)
	assert.Equal(t, "Employee Registration", s.Title.Value)
	assert.True(t, s.Debug.Value)
}

func TestEnv_FromEnvironment(t *testing.T) {
	t.Setenv("FORM_PORT", "9090")
	t.Setenv("FORM_TITLE", "Staff intake")

	var s sample
	err := yaml.Unmarshal([]byte("port: ${FORM_PORT:8080}\ntitle: \"${FORM_TITLE}\"\n"), &s)
	require.NoError(t, err)

	assert.Equal(t, 9090, s.Port.Value)
	assert.Equal(t, "${FORM_PORT:8080}", s.Port.Raw)
	assert.Equal(t, "Staff intake", s.Title.Value)
}

func TestEnv_Fallback(t *testing.T) {
	t.Setenv("FORM_PORT", "")

	var s sample
	err := yaml.Unmarshal([]byte("port: ${FORM_PORT:8081}\n"), &s)
	require.NoError(t, err)

	assert.Equal(t, 8081, s.Port.Value)
}

func TestEnv_QuotedNumberStaysString(t *testing.T) {
	var s sample
	err := yaml.Unmarshal([]byte("title: \"2024\"\n"), &s)
	require.NoError(t, err)

	assert.Equal(t, "2024", s.Title.Value)
}

func TestEnv_DecodeError(t *testing.T) {
	var s sample
	err := yaml.Unmarshal([]byte("port: eighty\n"), &s)
	assert.Error(t, err)
}

func TestEnv_RejectsMapping(t *testing.T) {
	var s sample
	err := yaml.Unmarshal([]byte("port:\n  value: 1\n"), &s)
	assert.ErrorContains(t, err, "expected scalar")
}

func TestExpand(t *testing.T) {
	t.Setenv("A_SET", "x")

	assert.Equal(t, "x-y", Expand("${A_SET}-${B_UNSET_FOR_TEST:y}"))
	assert.Equal(t, "", Expand("${B_UNSET_FOR_TEST}"))
	assert.Equal(t, "plain", Expand("plain"))
}
