package logging

import (
	"strings"
	"sync"
)

// RecentCapacity is how many encoded lines a Logger keeps in memory.
const RecentCapacity = 256

// ring keeps the last encoded lines written this session. It is the second
// sink of the tee core so the TUI never has to re-read the log file.
type ring struct {
	mu    sync.Mutex
	lines []string
	next  int
	total int
}

func newRing(capacity int) *ring {
	return &ring{lines: make([]string, 0, capacity)}
}

// Write stores each newline-terminated line in p.
func (r *ring) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, line := range strings.Split(strings.TrimRight(string(p), "\n"), "\n") {
		if len(r.lines) < cap(r.lines) {
			r.lines = append(r.lines, line)
		} else {
			r.lines[r.next] = line
		}
		r.next = (r.next + 1) % cap(r.lines)
		r.total++
	}
	return len(p), nil
}

func (r *ring) Sync() error { return nil }

// last returns up to n lines, oldest first, plus the session total.
func (r *ring) last(n int) ([]string, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if n <= 0 || len(r.lines) == 0 {
		return nil, r.total
	}
	n = min(n, len(r.lines))
	out := make([]string, 0, n)
	start := r.next - n
	if len(r.lines) < cap(r.lines) {
		start = len(r.lines) - n
	}
	for i := 0; i < n; i++ {
		out = append(out, r.lines[((start+i)%len(r.lines)+len(r.lines))%len(r.lines)])
	}
	return out, r.total
}
