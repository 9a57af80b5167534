package mcp

import (
	"context"
	"os"
	"time"

	"compass/internal/logging"
)

// WatchParent monitors for parent process death in a background goroutine.
// When the parent PID changes (the MCP client disconnected or restarted),
// it calls cancelFn to trigger graceful shutdown, preventing zombie server
// processes from accumulating.
//
// This must NOT read from stdin. The SDK's StdioTransport owns stdin
// exclusively; reading here would steal bytes and corrupt the JSON-RPC
// stream.
func WatchParent(ctx context.Context, cancelFn context.CancelFunc) {
	ppid := os.Getppid()
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case <-time.After(2 * time.Second):
				if os.Getppid() != ppid {
					logging.New("mcp").Warn("parent process died, shutting down", "was_pid", ppid)
					cancelFn()
					return
				}
			}
		}
	}()
}
