package buildinfo

import (
	"github.com/earthboundkid/versioninfo/v2"
)

// set with -ldflags "-X github.com/donkeywon/randrange/buildinfo.Version=..." at release time,
// otherwise filled from the module and vcs info embedded by the go tool.
var (
	Version    = ""
	Revision   = ""
	CommitTime = ""
)

func init() {
	if Version == "" {
		Version = versioninfo.Version
	}
	if Revision == "" {
		Revision = versioninfo.Revision
	}
	if CommitTime == "" {
		CommitTime = versioninfo.LastCommit.Local().Format("2006-01-02 15:04:05")
	}
}
