// Command bestfirst runs best-first searches over text mazes and YAML graphs.
//
//	bestfirst grid  --input maze.txt [--algo astar|dijkstra] [--conn 4|8]
//	bestfirst graph --input graph.yaml --from A --to L [--algo dijkstra|astar]
//	bestfirst batch --input graph.yaml [--workers N]
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
