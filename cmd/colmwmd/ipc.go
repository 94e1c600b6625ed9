package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"net"
	"os"
	"path/filepath"
	"strings"

	"github.com/wlcolm/colmwm/internal/command"
	"github.com/wlcolm/colmwm/internal/engine"
	"github.com/wlcolm/colmwm/internal/view"
)

// socketPath returns the control socket's default location, mirroring
// the teacher's createTmpfile using XDG_RUNTIME_DIR for its shm pool.
func socketPath() string {
	if s := os.Getenv("COLMWM_SOCK"); s != "" {
		return s
	}
	dir := os.Getenv("XDG_RUNTIME_DIR")
	if dir == "" {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "colmwm.sock")
}

// serveIPC accepts colmwmctl connections and runs each request line
// through eng.RunCommand, line-oriented the way waybar-niri-windows'
// listen() reads one JSON line per request/event — colmwmctl's wire
// format is plain tab-separated fields instead of JSON, since the
// command dispatcher (internal/command) already works in tokenized
// strings and nothing here needs a richer payload.
func serveIPC(path string, eng *engine.Engine) {
	os.Remove(path)
	ln, err := net.Listen("unix", path)
	if err != nil {
		log.Fatalf("colmwmd: listen %s: %v", path, err)
	}
	defer ln.Close()
	log.Printf("colmwmd: listening on %s", path)

	for {
		conn, err := ln.Accept()
		if err != nil {
			log.Printf("colmwmd: accept: %v", err)
			return
		}
		go handleConn(conn, eng)
	}
}

func handleConn(conn net.Conn, eng *engine.Engine) {
	defer conn.Close()
	r := bufio.NewReader(conn)
	for {
		line, err := r.ReadString('\n')
		if err != nil {
			if err != io.EOF {
				log.Printf("colmwmd: read: %v", err)
			}
			return
		}
		line = strings.TrimRight(line, "\n")
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) < 2 {
			fmt.Fprintf(conn, "ERR\tmalformed request\n")
			continue
		}
		seat, name, args := fields[0], fields[1], fields[2:]

		// "snapshot" bypasses the command dispatcher: cmd/colmwm-inspect
		// wants the current view.Snapshot, not a command result, and
		// colmwm-inspect's encoded Snapshot is a multi-line text block
		// that can't fit one "OK\t...\n" reply line. Terminated with a
		// lone "END" line the same way SMTP's DATA block ends with a
		// lone ".", so the client knows when to stop reading.
		if name == "snapshot" {
			fmt.Fprint(conn, view.EncodeText(eng.View.Current()))
			fmt.Fprintln(conn, "END")
			continue
		}

		res := eng.RunCommand(seat, name, args)
		status := "OK"
		if res.Status != command.StatusSuccess {
			status = "ERR"
		}
		fmt.Fprintf(conn, "%s\t%s\n", status, res.Message)
	}
}
