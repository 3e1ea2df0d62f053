package version

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

// Set with -ldflags "-X github.com/mutablelogic/go-toolschema/pkg/version.GitTag=..."
var (
	GitTag    string
	GitBranch string
)

const (
	// DefaultName is used when the executable name cannot be determined
	DefaultName = "toolschema"

	// Length of a short commit hash
	shortHash = 12
)

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// ExecName returns the base name of the running executable
func ExecName() string {
	if name, err := os.Executable(); err == nil {
		return filepath.Base(name)
	}
	return DefaultName
}

// Version returns the tag, the branch or the short commit hash, in that
// order of preference
func Version() string {
	switch {
	case GitTag != "":
		return GitTag
	case GitBranch != "":
		return GitBranch
	}
	if hash := buildSetting("vcs.revision"); hash != "" {
		if len(hash) > shortHash {
			return hash[:shortHash]
		}
		return hash
	}
	return "dev"
}

// Metadata returns the build metadata for the named executable
func Metadata(execName string) map[string]string {
	metadata := map[string]string{
		"name":     execName,
		"version":  Version(),
		"compiler": runtime.Version(),
	}
	if GitTag != "" {
		metadata["tag"] = GitTag
	}
	if GitBranch != "" {
		metadata["branch"] = GitBranch
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return metadata
	}
	if info.Main.Path != "" {
		metadata["source"] = info.Main.Path
	}
	settings := make(map[string]string, len(info.Settings))
	for _, s := range info.Settings {
		settings[s.Key] = s.Value
	}
	if v := settings["vcs.revision"]; v != "" {
		metadata["hash"] = v
	}
	if v := settings["vcs.time"]; v != "" {
		metadata["build_time"] = v
	}
	if settings["vcs.modified"] == "true" {
		metadata["modified"] = "true"
	}
	if settings["GOOS"] != "" && settings["GOARCH"] != "" {
		metadata["platform"] = settings["GOOS"] + "/" + settings["GOARCH"]
	}
	return metadata
}

// JSON returns the build metadata as indented JSON
func JSON(execName string) ([]byte, error) {
	return json.MarshalIndent(Metadata(execName), "", "  ")
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func buildSetting(key string) string {
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == key {
				return s.Value
			}
		}
	}
	return ""
}
