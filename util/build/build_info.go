package build

import (
	"fmt"
	"runtime"
)

// The following fields are populated at buildtime with -ldflags -X.
var (
	AppVersion  = "unknown"
	GitRevision = "unknown"
	BuiltTime   = "unknown"
)

// Info build info
type Info struct {
	AppVersion  string
	GitRevision string
	BuiltTime   string
	GoVersion   string
	Platform    string
}

func (b Info) String() string {
	return fmt.Sprintf(`Version: %v
GitRevision: %v
GoVersion: %v
Platform: %v
BuiltTime: %v
`,
		b.AppVersion,
		b.GitRevision,
		b.GoVersion,
		b.Platform,
		b.BuiltTime)
}

var info Info

func init() {
	info.AppVersion = AppVersion
	info.GitRevision = GitRevision
	info.BuiltTime = BuiltTime
	info.GoVersion = runtime.Version()
	info.Platform = fmt.Sprintf("%s %s", runtime.GOOS, runtime.GOARCH)
}

// Version returns a multi-line version information
func Version() string {
	return info.String()
}

// GetInfo return build info
func GetInfo() Info {
	return info
}
