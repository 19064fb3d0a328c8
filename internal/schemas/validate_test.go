package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `{
	"type": "object",
	"additionalProperties": false,
	"properties": {
		"name": {"type": "string"},
		"count": {"type": "integer", "minimum": 0}
	},
	"required": ["name"]
}`

func TestValidateBytes_ValidDocument(t *testing.T) {
	err := ValidateBytes([]byte(testSchema), []byte(`{"name": "ok", "count": 3}`))
	assert.NoError(t, err)
}

func TestValidateBytes_MissingRequiredField(t *testing.T) {
	err := ValidateBytes([]byte(testSchema), []byte(`{"count": 3}`))
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.NotEmpty(t, validationErr.Errors)
}

func TestValidateBytes_UnknownField(t *testing.T) {
	err := ValidateBytes([]byte(testSchema), []byte(`{"name": "ok", "extra": true}`))
	require.Error(t, err)

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestValidateBytes_WrongType(t *testing.T) {
	err := ValidateBytes([]byte(testSchema), []byte(`{"name": "ok", "count": "three"}`))
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "count", validationErr.Errors[0].Field)
}

func TestValidateBytes_MalformedSchema(t *testing.T) {
	err := ValidateBytes([]byte(`{"type": `), []byte(`{}`))
	require.Error(t, err)

	var loadErr *SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestValidateBytes_ErrorMessageListsFields(t *testing.T) {
	err := ValidateBytes([]byte(testSchema), []byte(`{}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
	assert.Contains(t, err.Error(), "name")
}
