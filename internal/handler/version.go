package handler

import (
	"net/http"
	"runtime"

	"github.com/osse101/PlotFarm_Go/internal/domain"
)

// VersionInfo describes the running build and the save format it writes
type VersionInfo struct {
	Version         string `json:"version"`
	GoVersion       string `json:"go_version"`
	SnapshotVersion int    `json:"snapshot_version"`
	BuildTime       string `json:"build_time,omitempty"`
	GitCommit       string `json:"git_commit,omitempty"`
}

// Build-time variables (injected via ldflags). cmd/app falls back to the
// VERSION setting when Version is left at "dev".
var (
	Version   = "dev"
	BuildTime = ""
	GitCommit = ""
)

// HandleVersion returns version information about the application
func HandleVersion() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, VersionInfo{
			Version:         Version,
			GoVersion:       runtime.Version(),
			SnapshotVersion: domain.SnapshotVersion,
			BuildTime:       BuildTime,
			GitCommit:       GitCommit,
		})
	}
}
