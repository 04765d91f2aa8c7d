// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"
)

// set with -ldflags "-X github.com/antgroup/udiff/pkg/version.version=..."
var (
	version     string
	buildCommit string
	buildTime   string
)

func init() {
	if len(version) != 0 {
		return
	}
	version = "dev"
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	if info.Main.Version != "" && info.Main.Version != "(devel)" {
		version = info.Main.Version
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			buildCommit = s.Value
		case "vcs.time":
			buildTime = s.Value
		}
	}
}

// GetVersionString returns a standard version header
func GetVersionString() string {
	return fmt.Sprintf("%s %v (%s), built %v", filepath.Base(os.Args[0]), version, buildCommit, buildTime)
}

// GetVersion returns the semver compatible version number
func GetVersion() string {
	return version
}
