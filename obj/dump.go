package obj

import (
	"github.com/davecgh/go-spew/spew"
)

var spewConfig *spew.ConfigState

func init() {
	spewConfig = spew.NewDefaultConfig()
	spewConfig.DisableCapacities = true
	spewConfig.DisablePointerAddresses = true
}

// SDump renders v (usually a *Mesh or *Raw) for debugging.
func SDump(a ...interface{}) string {
	return spewConfig.Sdump(a...)
}
