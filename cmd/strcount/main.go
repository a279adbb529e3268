// Command strcount counts the occurrences of a file's name, without its
// extension, in the file's content.
//
//	strcount [-strategy auto|bitparallel|blockscan] [-block-size N]
//	         [-finder auto|stdlib|memmem|memchr|ahocorasick]
//	         [-layout carry|double] [-v] <file>
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/coregx/strcount/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	code := cli.RunContext(ctx, os.Args[1:], os.Stdout, os.Stderr)
	if ctx.Err() != nil && code == cli.ExitOK {
		code = 130
	}

	stop()
	os.Exit(code)
}
