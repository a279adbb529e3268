package cli

import (
	"fmt"
	"io"
)

// Logf writes a diagnostic line to dst when verbose is set.
func Logf(dst io.Writer, verbose bool, format string, a ...any) {
	if !verbose {
		return
	}
	_, _ = fmt.Fprintf(dst, "strcount: "+format+"\n", a...)
}
