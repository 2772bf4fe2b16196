package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsTrigger(t *testing.T) {
	c := Default()

	assert.True(t, c.IsTrigger(TypeManualTrigger))
	assert.True(t, c.IsTrigger(TypeWebhookTrigger))
	assert.True(t, c.IsTrigger(TypeScheduleTrigger))
	assert.True(t, c.IsTrigger(TypeEventTrigger))

	assert.False(t, c.IsTrigger(TypeHTTPRequest))
	assert.False(t, c.IsTrigger(TypeIf))
	assert.False(t, c.IsTrigger("somethingUnknown"))
}

func TestDecodeParameters(t *testing.T) {
	params := map[string]any{
		"condition": "input.ok",
		"extra":     42,
	}

	var got ConditionParameters
	err := DecodeParameters(params, &got)
	require.NoError(t, err)
	assert.Equal(t, "input.ok", got.Condition)
}
