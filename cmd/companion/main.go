// Command companion plans garden beds from companion-plant relationships.
//
//	companion plan Tomato Basil Carrot
//	companion plan --data plants.xlsx --prefer Corn,Bean,Squash -o json
//	companion companions --prefer Tomato,Pepper
//	companion helpers Tomato
//	companion plants
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
