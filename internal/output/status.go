package output

import (
	"context"
	"fmt"
	"time"
)

func StatusBar(ctx context.Context, refreshRate time.Duration, printF func()) {
	ticker := time.NewTicker(refreshRate)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			printF()
		case <-ctx.Done():
			return
		}
	}
}

// PrettyWatchStatus renders the one-line status gotracyctl watch refreshes
// on each tick: whether the target PID is still alive, how long it has
// been watched, and how many times the trigger signal has been sent.
func PrettyWatchStatus(alive bool, elapsed time.Duration, signalsSent int) string {
	state := "running"
	if !alive {
		state = "exited"
	}

	return fmt.Sprintf("\r%-20s %-24s %-20s",
		fmt.Sprintf("PID state: %s", state),
		fmt.Sprintf("Watched for: %s", elapsed.Truncate(time.Second)),
		fmt.Sprintf("Toggles sent: %d", signalsSent),
	)
}
