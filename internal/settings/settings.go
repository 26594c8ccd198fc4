package settings

// CmdName is the project name; the companion CLI binary is named
// CmdName+"ctl". The prefix of the GOTRACY_* environment variables
// documented in SPEC_FULL.md §6 is EnvPrefix, not derived from CmdName.
const CmdName = "gotracy"

// EnvPrefix can be overridden at build time with:
//
//	go build -ldflags "-X github.com/go-tracy/tracy/internal/settings.EnvPrefix=MYTRACER"
//
// so a vendored build of the engine doesn't collide with another
// preloaded library's environment variables.
var EnvPrefix = "GOTRACY"
