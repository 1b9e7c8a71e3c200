// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// version is overridden at link time with -X main.version=...
var version = ""

// buildInfo describes the running binary
type buildInfo struct {
	Version  string
	Go       string
	Platform string
	Revision string
	Time     string
	Modified bool
}

func readBuildInfo() buildInfo {
	info := buildInfo{
		Version:  "dev",
		Go:       runtime.Version(),
		Platform: runtime.GOOS + "/" + runtime.GOARCH,
	}

	if bi, ok := debug.ReadBuildInfo(); ok {
		if bi.Main.Version != "" && bi.Main.Version != "(devel)" {
			info.Version = bi.Main.Version
		}
		for _, setting := range bi.Settings {
			switch setting.Key {
			case "vcs.revision":
				info.Revision = setting.Value
			case "vcs.time":
				info.Time = setting.Value
			case "vcs.modified":
				info.Modified = setting.Value == "true"
			}
		}
	}

	if version != "" {
		info.Version = version
	}
	return info
}

// FormatVersion returns a formatted string of version information
func FormatVersion() string {
	info := readBuildInfo()
	revision := info.Revision
	if revision == "" {
		revision = "unknown"
	}
	if info.Modified {
		revision += " (modified)"
	}
	return fmt.Sprintf(`🆔 genuuid %s
Revision:  %s
Built:     %s
Go:        %s
Platform:  %s
`, info.Version, revision, info.Time, info.Go, info.Platform)
}
