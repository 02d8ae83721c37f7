// Command divedeco queries the US Navy air decompression tables.
//
//	divedeco ndl 35
//	divedeco group 35 42
//	divedeco rnt 35 42 60 40
//	divedeco deco 40 170 --json
//	divedeco tables --prefix usn-air
//	divedeco batch --workers 4 < plans.txt
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
