// Command colmwmctl is the debug command-line client: it sends one
// tokenized command to a running colmwmd over its control socket and
// prints the reply. Grounded on calico32-waybar-niri-windows/main.go's
// net.Dial("unix", socket) plus its flags.go's rsc.io/getopt wiring,
// adapted from an event-stream subscriber to a one-shot request/reply
// client.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"net"
	"os"
	"strings"

	"rsc.io/getopt"
)

var (
	socketFlag = flag.String("socket", "", "control socket path; defaults to $COLMWM_SOCK or $XDG_RUNTIME_DIR/colmwm.sock")
	seatFlag   = flag.String("seat", "seat0", "seat the command runs against")
)

func init() {
	getopt.CommandLine.Init("colmwmctl", flag.ContinueOnError)
	getopt.Alias("s", "socket")
	getopt.Alias("t", "seat")
}

func main() {
	if err := parseFlags(&getopt.CommandLine, os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			fmt.Fprintln(os.Stderr, "usage: colmwmctl [-s socket] [-t seat] <command> [args...]")
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	args := getopt.CommandLine.FlagSet.Args()
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "usage: colmwmctl [-s socket] [-t seat] <command> [args...]")
		os.Exit(2)
	}

	path := *socketFlag
	if path == "" {
		path = defaultSocketPath()
	}

	conn, err := net.Dial("unix", path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "colmwmctl: %v\n", err)
		os.Exit(1)
	}
	defer conn.Close()

	request := *seatFlag + "\t" + strings.Join(args, "\t") + "\n"
	if _, err := conn.Write([]byte(request)); err != nil {
		fmt.Fprintf(os.Stderr, "colmwmctl: write: %v\n", err)
		os.Exit(1)
	}

	reply, err := bufio.NewReader(conn).ReadString('\n')
	if err != nil && err != io.EOF {
		fmt.Fprintf(os.Stderr, "colmwmctl: read: %v\n", err)
		os.Exit(1)
	}
	status, message, _ := strings.Cut(strings.TrimRight(reply, "\n"), "\t")
	fmt.Println(message)
	if status != "OK" {
		os.Exit(1)
	}
}

func defaultSocketPath() string {
	if s := os.Getenv("COLMWM_SOCK"); s != "" {
		return s
	}
	dir := os.Getenv("XDG_RUNTIME_DIR")
	if dir == "" {
		dir = os.TempDir()
	}
	return dir + "/colmwm.sock"
}
