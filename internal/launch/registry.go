// Package launch implements spec §6.4's persisted state: a process-
// lifetime, 60-second pid-keyed table recording which workspace a
// command was issued from, so a freshly-launched client's first window
// lands on its launching terminal's workspace rather than whatever
// workspace happens to be focused when it finally maps. Grounded on
// hayward's tree/root.c pid_workspace table (root_record_workspace_pid/
// root_workspace_for_pid), with get_parent_pid's /proc/<pid>/stat walk
// reimplemented against Go's os/strings rather than C's strtok.
package launch

import (
	"os"
	"strconv"
	"strings"
	"time"
)

const entryTTL = 60 * time.Second

type entry struct {
	pid       int
	workspace string
	outputID  string // empty if the output had none or was later destroyed
	addedAt   time.Time
}

// Registry is the pid->workspace table. The zero value is ready to use.
// Not safe for concurrent use; internal/engine owns it on the event-loop
// thread alongside the tree, same as every other piece of interactive-op
// state (spec §5 "Shared resources").
type Registry struct {
	entries []entry
	now     func() time.Time // overridable for tests; defaults to time.Now
}

func (r *Registry) clock() time.Time {
	if r.now != nil {
		return r.now()
	}
	return time.Now()
}

// Record associates pid with workspace (and, if non-empty, the output it
// was on) at the current time, expiring any entries older than 60s first.
// Called when a command that may spawn a process runs (spec §6.4).
func (r *Registry) Record(pid int, workspace, outputID string) {
	r.expire()
	r.entries = append(r.entries, entry{pid: pid, workspace: workspace, outputID: outputID, addedAt: r.clock()})
}

func (r *Registry) expire() {
	now := r.clock()
	kept := r.entries[:0]
	for _, e := range r.entries {
		if now.Sub(e.addedAt) < entryTTL {
			kept = append(kept, e)
		}
	}
	r.entries = kept
}

// WorkspaceFor looks up the workspace recorded for pid, walking up its
// parent chain via /proc when pid itself has no entry (hayward's
// get_parent_pid loop: "pid = get_parent_pid(pid)" until an ancestor
// matches or the chain reaches pid 1). The matched entry is consumed
// (removed) on a hit, mirroring pid_workspace_destroy(pw) after lookup:
// a pid_workspace record is meant to catch exactly one spawned window.
func (r *Registry) WorkspaceFor(pid int) (workspace, outputID string, ok bool) {
	r.expire()
	for pid > 1 {
		for i, e := range r.entries {
			if e.pid == pid {
				r.entries = append(r.entries[:i], r.entries[i+1:]...)
				return e.workspace, e.outputID, true
			}
		}
		parent, ok := parentPID(pid)
		if !ok {
			break
		}
		pid = parent
	}
	return "", "", false
}

// parentPID reads /proc/<pid>/stat and returns field 4 (ppid), the way
// hayward's get_parent_pid does, but splitting on the comm field's
// closing parenthesis rather than naive whitespace tokens — a process
// name containing spaces or parens would otherwise misalign strtok's
// fixed-position fields.
func parentPID(pid int) (int, bool) {
	data, err := os.ReadFile("/proc/" + strconv.Itoa(pid) + "/stat")
	if err != nil {
		return 0, false
	}
	line := string(data)
	close := strings.LastIndexByte(line, ')')
	if close < 0 || close+2 >= len(line) {
		return 0, false
	}
	fields := strings.Fields(line[close+2:])
	// fields[0]=state, fields[1]=ppid
	if len(fields) < 2 {
		return 0, false
	}
	ppid, err := strconv.Atoi(fields[1])
	if err != nil || ppid == pid {
		return 0, false
	}
	return ppid, true
}
