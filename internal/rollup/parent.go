package rollup

import (
	"github.com/dongminkim/kk/internal/snapshot"
	"github.com/dongminkim/kk/internal/vcs"
)

// AggregateDir computes the status of dir from an existing snapshot without
// querying the repository again. Nested paths are remapped as in Build, the
// highest ranked status wins and is converted to its directory equivalent.
// A directory with no reported paths is Clean.
func AggregateDir(snap *snapshot.Snapshot, dir string) vcs.Status {
	best := vcs.Clean
	found := false
	for _, rel := range snap.Under(dir) {
		status := vcs.Classify(rel.Flags)
		if len(rel.Components) > 1 {
			status = vcs.DeepRemap(status)
		}
		if !found || status.Outranks(best) {
			best = status
			found = true
		}
	}
	if !found {
		return vcs.Clean
	}
	return vcs.DirEquivalent(best)
}
