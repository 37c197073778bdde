package walletkit

import (
	"fmt"
	"io"
	"runtime"
	"text/tabwriter"
)

// Set with -ldflags "-X github.com/zkbridge/walletkit.Version=..." on release builds
var (
	Version   = "v0.1.0"
	GitRev    = "undefined"
	GitBranch = "undefined"
	BuildDate = "undefined"
)

// BuildInfo identifies the running binary
type BuildInfo struct {
	Version   string `json:"version"`
	GitRev    string `json:"gitRevision"`
	GitBranch string `json:"gitBranch"`
	BuildDate string `json:"buildDate"`
	GoVersion string `json:"goVersion"`
	Platform  string `json:"platform"`
}

func GetVersion() BuildInfo {
	return BuildInfo{
		Version:   Version,
		GitRev:    GitRev,
		GitBranch: GitBranch,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// PrintVersion writes the build information as an aligned table
func PrintVersion(w io.Writer) {
	_, _ = GetVersion().WriteTo(w)
}

func (b BuildInfo) WriteTo(w io.Writer) (int64, error) {
	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)
	rows := [][2]string{
		{"Version", b.Version},
		{"Git revision", b.GitRev},
		{"Git branch", b.GitBranch},
		{"Go version", b.GoVersion},
		{"Built", b.BuildDate},
		{"OS/Arch", b.Platform},
	}
	var n int64
	for _, row := range rows {
		written, err := fmt.Fprintf(tw, "%s:\t%s\n", row[0], row[1])
		n += int64(written)
		if err != nil {
			return n, err
		}
	}
	return n, tw.Flush()
}

// Brief is the one line form logged by the services
func (b BuildInfo) Brief() string {
	return fmt.Sprintf("%s (%s@%s) built %s for %s", b.Version, b.GitRev, b.GitBranch, b.BuildDate, b.Platform)
}

// UserAgent is sent on every RPC request made by the wallet
func UserAgent() string {
	return fmt.Sprintf("walletkit/%s (%s)", Version, GitRev)
}
