// Command colmwmd is the daemon entrypoint: loads the config sink,
// builds the tree and commit engine, and runs the commit loop. Grounded
// on the teacher's cmd/ctxmenu/main.go and wayland.go's InitWayland,
// generalized from "one compositor instance, one output, one seat" to
// colmwm's N-output, N-seat internal/engine.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/wlcolm/colmwm/internal/arrange"
	"github.com/wlcolm/colmwm/internal/config"
	"github.com/wlcolm/colmwm/internal/engine"
	"github.com/wlcolm/colmwm/internal/events"
	"github.com/wlcolm/colmwm/internal/tree"
)

func main() {
	configPath := flag.String("config", "", "path to a colmwm config file; defaults built in if omitted")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("colmwmd: %v", err)
		}
		cfg = loaded
	}

	t := tree.New()
	arranger := arrange.New(cfg.ArrangeOptions())
	eng := engine.New(t, cfg, events.Discard{}, arranger)

	go serveIPC(socketPath(), eng)

	log.Println("colmwmd: started")
	runCommitLoop(eng)
}

// runCommitLoop drains the dirty set on every tick until interrupted.
// A real backend instead calls eng.Commit directly after each batch of
// wire events it handles (pointer motion, configure acks, new surfaces);
// the ticker here stands in for that backend's event loop, mirroring
// wayland.go's sync()-then-dispatch shape without depending on the
// unavailable generated proto bindings.
func runCommitLoop(eng *engine.Engine) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-sigCh:
			log.Println("colmwmd: shutting down")
			return
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			if _, err := eng.Commit(ctx); err != nil {
				log.Printf("colmwmd: commit failed: %v", err)
			}
			cancel()
		}
	}
}
