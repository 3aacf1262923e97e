// Package version 빌드 시점에 주입된 메타데이터와 실행 환경 정보를 제공합니다.
//
// 빌드 예:
//
//	go build -ldflags "-X github.com/darkkaiser/notify-relay/internal/pkg/version.appVersion=v1.0.0"
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
	"sync/atomic"
)

const (
	unknown = "unknown"
	none    = "none"

	appName = "notify-relay"
)

var globalBuildInfo atomic.Value

// readBuildInfo 테스트에서 교체할 수 있도록 변수로 선언합니다.
var readBuildInfo = debug.ReadBuildInfo

// -ldflags로 주입되는 값. 직접 참조하지 말고 Get()을 사용한다.
var (
	appVersion    = ""
	gitCommitHash = ""
	gitTreeState  = ""
	buildDate     = ""
	buildNumber   = ""
)

func init() {
	bi := Info{
		Version:     strings.TrimSpace(appVersion),
		Commit:      strings.TrimSpace(gitCommitHash),
		BuildDate:   strings.TrimSpace(buildDate),
		BuildNumber: strings.TrimSpace(buildNumber),
		DirtyBuild:  strings.EqualFold(strings.TrimSpace(gitTreeState), "dirty"),
	}

	Set(enrichBuildInfo(bi))
}

// Info 빌드 정보입니다. /version 응답과 시작 로그에 사용됩니다.
type Info struct {
	Version     string `json:"version"`
	Commit      string `json:"commit"`
	BuildDate   string `json:"build_date"`
	BuildNumber string `json:"build_number"`
	GoVersion   string `json:"go_version"`
	OS          string `json:"os"`
	Arch        string `json:"arch"`
	DirtyBuild  bool   `json:"dirty_build"`
}

// Get 현재 빌드 정보를 반환합니다.
func Get() Info {
	bi, ok := globalBuildInfo.Load().(Info)
	if !ok {
		return Info{Version: unknown, Commit: unknown, BuildDate: unknown, BuildNumber: "0"}
	}
	return bi
}

// Set 빌드 정보를 교체합니다.
func Set(bi Info) {
	globalBuildInfo.Store(bi)
}

// enrichBuildInfo 비어 있는 필드를 런타임 정보와 모듈 VCS 메타데이터로 채웁니다.
func enrichBuildInfo(bi Info) Info {
	if bi.GoVersion == "" {
		bi.GoVersion = runtime.Version()
	}
	if bi.OS == "" {
		bi.OS = runtime.GOOS
	}
	if bi.Arch == "" {
		bi.Arch = runtime.GOARCH
	}

	if val, ok := readBuildInfo(); ok {
		for _, setting := range val.Settings {
			switch setting.Key {
			case "vcs.revision":
				if bi.Commit == "" || bi.Commit == unknown || bi.Commit == none {
					bi.Commit = setting.Value
				}
			case "vcs.time":
				if bi.BuildDate == "" || bi.BuildDate == unknown {
					bi.BuildDate = setting.Value
				}
			case "vcs.modified":
				if setting.Value == "true" {
					bi.DirtyBuild = true
				}
			}
		}
		if bi.Version == "" && val.Main.Version != "" && val.Main.Version != "(devel)" {
			bi.Version = val.Main.Version
		}
	}

	if bi.Version == "" {
		bi.Version = unknown
	}
	if bi.Commit == "" || bi.Commit == none {
		bi.Commit = unknown
	}

	return bi
}

// Version 애플리케이션 버전 문자열을 반환합니다.
func Version() string {
	return Get().Version
}

// UserAgent 외부 API 호출 시 사용하는 User-Agent 값을 반환합니다.
func UserAgent() string {
	return appName + "/" + Version()
}

// ToMap 구조적 로깅용 맵을 반환합니다.
func (i Info) ToMap() map[string]any {
	return map[string]any{
		"version":      i.Version,
		"commit":       i.Commit,
		"build_date":   i.BuildDate,
		"build_number": i.BuildNumber,
		"go_version":   i.GoVersion,
		"os":           i.OS,
		"arch":         i.Arch,
		"dirty_build":  i.DirtyBuild,
	}
}

// String 빌드 정보를 한 줄로 요약합니다.
//
//	v1.0.0+dirty (commit: f25b8bf, build: 12, go_version: go1.24.0, os: linux, arch: amd64)
func (i Info) String() string {
	if i.Version == "" {
		return unknown
	}

	v := i.Version
	if i.DirtyBuild {
		v += "+dirty"
	}

	var details []string
	if i.Commit != "" && i.Commit != unknown {
		commit := i.Commit
		if len(commit) > 7 {
			commit = commit[:7]
		}
		details = append(details, "commit: "+commit)
	}
	if i.BuildNumber != "" {
		details = append(details, "build: "+i.BuildNumber)
	}
	if i.BuildDate != "" && i.BuildDate != unknown {
		details = append(details, "date: "+i.BuildDate)
	}
	if i.GoVersion != "" {
		details = append(details, "go_version: "+i.GoVersion)
	}
	if i.OS != "" {
		details = append(details, "os: "+i.OS)
	}
	if i.Arch != "" {
		details = append(details, "arch: "+i.Arch)
	}

	if len(details) == 0 {
		return v
	}
	return fmt.Sprintf("%s (%s)", v, strings.Join(details, ", "))
}
