package cli

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// jsonResponse mirrors the Response envelope with a concrete payload for
// decoding in tests.
type eigenResponse struct {
	Status string      `json:"status"`
	Data   EigenReport `json:"data"`
	Error  *ErrorBody  `json:"error"`
	RunID  string      `json:"run_id"`
}

func TestEigenCommand_JSON(t *testing.T) {
	out, _, err := execute(t, "eigen", "--format", "json", "--matrix", "2,1,1,2")
	require.NoError(t, err)

	var resp eigenResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Nil(t, resp.Error)

	_, err = uuid.Parse(resp.RunID)
	assert.NoError(t, err, "run_id must be a valid uuid")

	assert.Equal(t, 3.0, resp.Data.Det)
	assert.Equal(t, 4.0, resp.Data.Trace)
	require.False(t, resp.Data.Eigenvalues.IsComplex)
	assert.InDelta(t, 3, resp.Data.Eigenvalues.Lambda1.Real, 1e-9)
	assert.InDelta(t, 1, resp.Data.Eigenvalues.Lambda2.Real, 1e-9)
	require.NotNil(t, resp.Data.Eigenvectors)
	assert.InDelta(t, 1, resp.Data.Eigenvectors.V1.Length(), 1e-9)
}

func TestEigenCommand_ComplexEigenvalues(t *testing.T) {
	out, _, err := execute(t, "eigen", "--matrix", "0,-1,1,0")
	require.NoError(t, err)
	assert.Contains(t, out, "complex conjugate pair")
	assert.Contains(t, out, "No real eigenvectors")
}

func TestEigenCommand_DefaultMatrix(t *testing.T) {
	// No --matrix and no --preset falls back to the documented default.
	out, _, err := execute(t, "eigen")
	require.NoError(t, err)
	assert.Contains(t, out, "lambda1 = 3")
	assert.Contains(t, out, "lambda2 = 1")
}

func TestEigenCommand_MalformedMatrixRejected(t *testing.T) {
	out, _, err := execute(t, "eigen", "--matrix", "1,2,3")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, ErrCodeBadMatrix)
}

func TestEigenCommand_MalformedMatrixJSONEnvelope(t *testing.T) {
	out, _, err := execute(t, "eigen", "--format", "json", "--matrix", "a,b,c,d")
	require.Error(t, err)

	var resp eigenResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeBadMatrix, resp.Error.Code)
}

func TestEigenCommand_UnknownPreset(t *testing.T) {
	out, _, err := execute(t, "eigen", "--preset", "nope")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, ErrCodeUnknownPreset)
}

func TestEigenCommand_Preset(t *testing.T) {
	out, _, err := execute(t, "eigen", "--preset", "reflect-x")
	require.NoError(t, err)
	assert.Contains(t, out, "lambda1 = 1")
	assert.Contains(t, out, "lambda2 = -1")
}

func TestEigenCommand_VerboseGoesToStderr(t *testing.T) {
	out, errOut, err := execute(t, "eigen", "--format", "json", "--verbose")
	require.NoError(t, err)
	assert.Contains(t, errOut, "default")

	// stdout must remain pure JSON.
	var resp eigenResponse
	assert.NoError(t, json.Unmarshal([]byte(out), &resp))
}
