package main

import (
	"bufio"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/wlcolm/colmwm/internal/view"
)

// fetchSnapshot dials the daemon's control socket, sends the reserved
// "snapshot" request colmwmd's ipc.go special-cases, and reads lines
// until the "END" sentinel. The seat field is ignored by that request
// but the wire format still requires one, so "-" is sent.
func fetchSnapshot(socket string, timeout time.Duration) (*view.Snapshot, error) {
	conn, err := net.DialTimeout("unix", socket, timeout)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", socket, err)
	}
	defer conn.Close()
	conn.SetDeadline(time.Now().Add(timeout))

	if _, err := fmt.Fprint(conn, "-\tsnapshot\n"); err != nil {
		return nil, fmt.Errorf("write request: %w", err)
	}

	var body strings.Builder
	r := bufio.NewReader(conn)
	for {
		line, err := r.ReadString('\n')
		if strings.TrimRight(line, "\n") == "END" {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read reply: %w", err)
		}
		body.WriteString(line)
	}

	return view.DecodeText(body.String()), nil
}
