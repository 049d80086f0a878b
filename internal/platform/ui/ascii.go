// internal/platform/ui/ascii.go
package ui

import "strings"

const banner = `
 _   _ _   _ ___ ____  _                 _
| | | | | | |_ _|  _ \| |__  _   _ _ __ | |_
| | | | | | || || | | | '_ \| | | | '_ \| __|
| |_| | |_| || || |_| | | | | |_| | | | | |_
 \___/ \___/|___|____/|_| |_|\__,_|_| |_|\__|`

// Banner retorna el banner con la versión debajo.
func Banner(version string) string {
	if version == "" {
		return banner
	}
	n := 38 - len(version)
	if n < 0 {
		n = 0
	}
	return banner + "\n" + strings.Repeat(" ", n) + version
}
