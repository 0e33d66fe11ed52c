package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/yungbote/coursekey/internal/idgen"
	"github.com/yungbote/coursekey/internal/services"
)

func run(t *testing.T, cmd *cobra.Command, stdin string, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	require.NoError(t, cmd.RunE(cmd, args))
	return out.String()
}

func TestHashCommand(t *testing.T) {
	out := run(t, hashCmd, "", "test-input")
	require.Equal(t, "55e8751841e6\n", out)
}

func TestCodeCommand(t *testing.T) {
	out := run(t, codeCmd, "", "CHBE241", "2024-09-03T17:30:00.000Z")
	require.Equal(t, "a4baf56df0c8 K6T1OK\n", out)
}

func TestCodeCommandRejectsBadTimestamp(t *testing.T) {
	err := codeCmd.RunE(codeCmd, []string{"CHBE241", "yesterday"})
	require.ErrorIs(t, err, idgen.ErrInvalidInput)
}

const batchYAML = `
- kind: course
  course_name: CHBE241
  timestamp: "2024-09-03T17:30:00.000Z"
- kind: division
  title: Week 1
  course_name: CHBE241
  timestamp: "2024-09-03T17:30:00.000Z"
- kind: user
  puid: "12345678"
  display_name: Ada Lovelace
  affiliation: student
`

func TestParseSpecsAcceptsListAndDocument(t *testing.T) {
	t.Parallel()

	list, err := parseSpecs([]byte(batchYAML))
	require.NoError(t, err)
	require.Len(t, list, 3)
	require.Equal(t, idgen.KindDivision, list[1].Kind)
	require.Equal(t, "Week 1", list[1].Title)

	doc, err := parseSpecs([]byte("specs:\n  - kind: user\n    puid: \"1\"\n    display_name: A\n    affiliation: b\n"))
	require.NoError(t, err)
	require.Len(t, doc, 1)
	require.Equal(t, "1", doc[0].PUID)
}

func TestBatchCommandFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "specs.yaml")
	require.NoError(t, os.WriteFile(path, []byte(batchYAML), 0o644))

	out := run(t, batchCmd, "", path)
	require.Equal(t,
		"0\tcourse\ta4baf56df0c8\tK6T1OK\n"+
			"1\tdivision\t2c9064c2adf6\n"+
			"2\tuser\t0af35db2ec9d\n",
		out)
}

func TestBatchCommandReportsFailures(t *testing.T) {
	var out bytes.Buffer
	batchCmd.SetOut(&out)
	batchCmd.SetIn(strings.NewReader("- kind: item\n  title: Intro\n"))
	err := batchCmd.RunE(batchCmd, []string{"-"})
	require.ErrorIs(t, err, errBatchHadFailures)
	require.Contains(t, out.String(), "error:")
}

func TestWriteResultsJSON(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	err := writeResults(&out, "json", []services.IDResult{{Index: 0, Kind: idgen.KindUser, ID: "0af35db2ec9d"}})
	require.NoError(t, err)
	require.JSONEq(t, `{"index":0,"kind":"user","id":"0af35db2ec9d"}`, out.String())

	require.Error(t, writeResults(&out, "xml", nil))
}
