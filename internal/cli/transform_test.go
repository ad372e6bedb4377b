package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ArkAung/interactive-eigenvector/internal/mat2"
)

func TestTransformCommand_JSON(t *testing.T) {
	out, _, err := execute(t, "transform", "--format", "json", "--matrix", "2,1,1,2", "1,0", "0,1")
	require.NoError(t, err)

	var resp struct {
		Status string          `json:"status"`
		Data   TransformReport `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	require.Len(t, resp.Data.Points, 2)
	assert.Equal(t, mat2.Vec2{X: 2, Y: 1}, resp.Data.Points[0].Out)
	assert.Equal(t, mat2.Vec2{X: 1, Y: 2}, resp.Data.Points[1].Out)
}

func TestTransformCommand_Text(t *testing.T) {
	out, _, err := execute(t, "transform", "--preset", "rotate-90", "1,0")
	require.NoError(t, err)
	assert.Contains(t, out, "(1, 0) -> (0, 1)")
}

func TestTransformCommand_BadPoint(t *testing.T) {
	tests := []string{"1", "1,2,3", "x,y", "Inf,0"}
	for _, p := range tests {
		out, _, err := execute(t, "transform", p)
		require.Error(t, err, "point %q must be rejected", p)
		assert.Equal(t, ExitCommandError, GetExitCode(err))
		assert.Contains(t, out, ErrCodeBadPoint)
	}
}

func TestTransformCommand_RequiresPoint(t *testing.T) {
	_, _, err := execute(t, "transform")
	require.Error(t, err)
}

func TestParsePoint(t *testing.T) {
	v, err := parsePoint(" 1.5 , -2 ")
	require.NoError(t, err)
	assert.Equal(t, mat2.Vec2{X: 1.5, Y: -2}, v)
}
