package flash

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/dosanma1/flint-cli/internal/diag"
)

const (
	probeTimeout = 500 * time.Millisecond
	retryBackoff = 100 * time.Millisecond
)

// waitPort polls host:port until it accepts a TCP connection or the overall
// timeout elapses. Debug servers need an unspecified bounded amount of time
// to open their listening socket after the process starts.
func waitPort(host string, port int, overall time.Duration) error {
	addr := net.JoinHostPort(host, fmt.Sprintf("%d", port))
	deadline := time.Now().Add(overall)

	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetDescription(fmt.Sprintf("Waiting for %s", addr)),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetWidth(10),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(os.Stderr, "\n")
		}),
	)
	defer bar.Finish()

	var lastErr error
	for time.Now().Before(deadline) {
		conn, err := net.DialTimeout("tcp", addr, probeTimeout)
		if err == nil {
			conn.Close()
			return nil
		}
		lastErr = err
		_ = bar.Add(1)
		time.Sleep(retryBackoff)
	}

	return diag.New(diag.Timeout, "Timed out waiting for %s to open (%.1fs). Last error: %v",
		addr, overall.Seconds(), lastErr)
}
