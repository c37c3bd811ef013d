package ai

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weblive_server/internal/types"
)

func TestPlannerRequestBodyPlanMode(t *testing.T) {
	body, err := plannerRequestBody(types.PlanInput{Prompt: "dental clinic", Locale: "ka"}, nil)
	require.NoError(t, err)

	var decoded struct {
		Mode  string          `json:"mode"`
		Input types.PlanInput `json:"input"`
	}
	require.NoError(t, json.Unmarshal(body, &decoded))
	assert.Equal(t, "plan", decoded.Mode)
	assert.Equal(t, "dental clinic", decoded.Input.Prompt)
	assert.Equal(t, "ka", decoded.Input.Locale)
}

func TestPlannerRequestBodyKeepsJSONPayload(t *testing.T) {
	repair := &RepairRequest{
		InvalidPayload: json.RawMessage(`{"site_type":"casino"}`),
		Instruction:    "site_type is not allowed",
	}
	body, err := plannerRequestBody(types.PlanInput{}, repair)
	require.NoError(t, err)

	var decoded repairPayload
	require.NoError(t, json.Unmarshal(body, &decoded))
	assert.Equal(t, "repair", decoded.Mode)
	assert.JSONEq(t, `{"site_type":"casino"}`, string(decoded.InvalidPayload))
	assert.Equal(t, "site_type is not allowed", decoded.Instruction)
}

func TestPlannerRequestBodyQuotesNonJSONPayload(t *testing.T) {
	repair := &RepairRequest{
		InvalidPayload: json.RawMessage(`not even json`),
		Instruction:    "return valid JSON",
	}
	body, err := plannerRequestBody(types.PlanInput{}, repair)
	require.NoError(t, err, "a non-JSON rejected payload must still produce a request body")
	require.True(t, json.Valid(body))

	var decoded repairPayload
	require.NoError(t, json.Unmarshal(body, &decoded))

	var original string
	require.NoError(t, json.Unmarshal(decoded.InvalidPayload, &original))
	assert.Equal(t, "not even json", original)
}
