package main

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-chat-wizard/internal/types"
)

const sampleTranscript = `Hi there
I'm a software engineer
Bachelor's degree in computer science from Stanford University
I was a developer at Google for three years
Python, SQL and AWS
Led a team that improved our release process
Engineer focused on reliable backend systems.
`

func TestRunAutofill_ReplaysTranscript(t *testing.T) {
	tmpDir := t.TempDir()
	inFile := filepath.Join(tmpDir, "transcript.txt")
	outFile := filepath.Join(tmpDir, "form.json")
	require.NoError(t, os.WriteFile(inFile, []byte(sampleTranscript), 0644))

	prevIn, prevOut, prevEnhance := autofillInputFile, autofillOutputFile, autofillEnhance
	autofillInputFile, autofillOutputFile, autofillEnhance = inFile, outFile, false
	defer func() {
		autofillInputFile, autofillOutputFile, autofillEnhance = prevIn, prevOut, prevEnhance
	}()

	require.NoError(t, runAutofill(autofillCmd, nil))

	data, err := os.ReadFile(outFile)
	require.NoError(t, err)

	var form types.FormData
	require.NoError(t, json.Unmarshal(data, &form))
	assert.Equal(t, types.ProfessionSoftwareEngineer, form.Profession)
	require.Len(t, form.Education, 1)
	assert.Equal(t, "Stanford University", form.Education[0].Institution)
	require.Len(t, form.Experience, 1)
	assert.Equal(t, "Google", form.Experience[0].Company)
	assert.Contains(t, form.Skills, "Python")
	assert.Contains(t, form.Skills, "AWS")
	assert.NotEmpty(t, form.Achievements)
	assert.Equal(t, "Engineer focused on reliable backend systems.", form.Summary)
}

func TestRunAutofill_MissingInput(t *testing.T) {
	prevIn := autofillInputFile
	autofillInputFile = ""
	defer func() { autofillInputFile = prevIn }()

	err := runAutofill(autofillCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--in is required")
}

func TestAutofillCommand_MissingInputFlag(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "autofill")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "--in is required")
}
