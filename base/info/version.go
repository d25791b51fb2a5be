package info

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
	"sync"
)

var (
	name    = "taxglobe"
	license = "GPLv3"

	// Set via ldflags.
	version   = "dev build"
	buildTime = "unknown"

	info     *Info
	loadInfo sync.Once
)

func init() {
	buildTime = strings.ReplaceAll(buildTime, "_", " ")
	version = strings.TrimSpace(strings.TrimPrefix(version, "v"))
}

// Info holds the program's build information.
type Info struct {
	Name      string
	Version   string
	License   string
	BuildTime string

	GoVersion  string
	Commit     string
	CommitTime string
	Dirty      bool
}

// Set overrides name and version. Empty values are ignored.
func Set(setName, setVersion string) {
	if setName != "" {
		name = setName
	}
	if setVersion != "" {
		version = setVersion
	}
}

// GetInfo returns the build information of the program.
func GetInfo() *Info {
	loadInfo.Do(func() {
		settings := make(map[string]string)
		if buildInfo, ok := debug.ReadBuildInfo(); ok {
			for _, setting := range buildInfo.Settings {
				settings[setting.Key] = setting.Value
			}
		}

		info = &Info{
			Name:       name,
			Version:    version,
			License:    license,
			BuildTime:  buildTime,
			GoVersion:  runtime.Version(),
			Commit:     settings["vcs.revision"],
			CommitTime: settings["vcs.time"],
			Dirty:      settings["vcs.modified"] == "true",
		}
		if info.Commit == "" {
			info.Commit = "unknown"
		}
		if info.CommitTime == "" {
			info.CommitTime = "unknown"
		}
	})

	return info
}

// Version returns the version.
func Version() string {
	return version
}

// FullVersion returns the detailed version string.
func FullVersion() string {
	info := GetInfo()
	builder := new(strings.Builder)

	builder.WriteString(fmt.Sprintf("%s %s\n", info.Name, info.Version))
	builder.WriteString(fmt.Sprintf("\nbuilt with %s for %s/%s\n", info.GoVersion, runtime.GOOS, runtime.GOARCH))
	builder.WriteString(fmt.Sprintf("  at %s\n", info.BuildTime))

	dirtyInfo := "clean"
	if info.Dirty {
		dirtyInfo = "dirty"
	}
	builder.WriteString(fmt.Sprintf("\ncommit %s (%s)\n", info.Commit, dirtyInfo))
	builder.WriteString(fmt.Sprintf("  at %s\n", info.CommitTime))
	builder.WriteString(fmt.Sprintf("\nLicensed under the %s license.", info.License))

	return builder.String()
}
