package engine

import (
	"fmt"

	"github.com/go-tracy/tracy/pkg/resolver"
)

// formatBacklogLine renders one SYMTAB entry: "0xADDR = dso:func()"
// when a name was found, "0xADDR = dso:[0xADDR]" when only the DSO
// was, per §4.10.
func formatBacklogLine(addr uint64, res resolver.Resolution) string {
	if res.HaveFunc {
		return fmt.Sprintf("0x%x = %s:%s()", addr, res.DSOBase, res.FuncName)
	}
	return fmt.Sprintf("0x%x = %s:[0x%x]", addr, res.DSOBase, addr)
}
