package walletkit

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

var testBuild = BuildInfo{
	Version:   "v1.2.3",
	GitRev:    "4ebab70",
	GitBranch: "main",
	BuildDate: "2026-01-02",
	GoVersion: "go1.24.2",
	Platform:  "linux/amd64",
}

func TestGetVersion(t *testing.T) {
	info := GetVersion()
	require.Equal(t, Version, info.Version)
	require.NotEmpty(t, info.GoVersion)
	require.Contains(t, info.Platform, "/")
}

func TestWriteTo(t *testing.T) {
	var buf bytes.Buffer
	n, err := testBuild.WriteTo(&buf)
	require.NoError(t, err)
	require.Positive(t, n)
	require.Equal(t, `Version:      v1.2.3
Git revision: 4ebab70
Git branch:   main
Go version:   go1.24.2
Built:        2026-01-02
OS/Arch:      linux/amd64
`, buf.String())
}

func TestBrief(t *testing.T) {
	require.Equal(t, "v1.2.3 (4ebab70@main) built 2026-01-02 for linux/amd64", testBuild.Brief())
}

func TestBuildInfoJSON(t *testing.T) {
	b, err := json.Marshal(testBuild)
	require.NoError(t, err)
	require.JSONEq(t, `{"version":"v1.2.3","gitRevision":"4ebab70","gitBranch":"main",
		"buildDate":"2026-01-02","goVersion":"go1.24.2","platform":"linux/amd64"}`, string(b))
}

func TestUserAgent(t *testing.T) {
	require.Equal(t, "walletkit/"+Version+" ("+GitRev+")", UserAgent())
}
