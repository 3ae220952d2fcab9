// Package vcoracle speaks the external vertex-cover oracle's
// subprocess protocol: a DIMACS-ish "p td V E" body of undirected
// edges on stdin, and a cover (a size header followed by one
// 1-indexed vertex per line) on stdout. The oracle's own algorithm is
// out of scope here — only the wire protocol and the timeout/process
// lifecycle around it are this package's concern.
package vcoracle

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// ErrUnavailable means the oracle could not be run to completion
// (missing binary, timeout, non-zero exit, or malformed output).
// Callers fall back to the ILP path on this error, never treat it as
// fatal.
var ErrUnavailable = fmt.Errorf("vcoracle: oracle unavailable")

// Edge is a 0-indexed undirected edge (u, v), u != v.
type Edge struct {
	U, V int
}

// Solve spawns name with args, writes the "p td V E" body for edges
// over the dense vertex space [0,numVertices), and parses back a
// vertex cover. The child is always waited on (no zombie leak) even
// when ctx's deadline fires first; a timeout or any protocol failure
// reports ok=false, err wrapping ErrUnavailable rather than a fatal
// error.
func Solve(ctx context.Context, name string, args []string, numVertices int, edges []Edge, timeout time.Duration) (cover []int, ok bool, err error) {
	runCtx := ctx
	if timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(runCtx, name, args...)
	cmd.Stdin = bytes.NewReader(encodeRequest(numVertices, edges))

	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	runErr := cmd.Run()
	// cmd.Run both starts and waits; the child is reaped in all cases,
	// including the context-deadline kill path, by the time Run returns.
	if runCtx.Err() != nil {
		return nil, false, fmt.Errorf("%w: %v", ErrUnavailable, runCtx.Err())
	}
	if runErr != nil {
		return nil, false, fmt.Errorf("%w: %v", ErrUnavailable, runErr)
	}

	cover, err = decodeCover(stdout.Bytes())
	if err != nil {
		return nil, false, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return cover, true, nil
}

// encodeRequest builds the "p td V E" body: a header naming the
// vertex and edge counts, then one 1-indexed endpoint pair per edge.
func encodeRequest(numVertices int, edges []Edge) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "p td %d %d\n", numVertices, len(edges))
	for _, e := range edges {
		fmt.Fprintf(&buf, "%d %d\n", e.U+1, e.V+1)
	}
	return buf.Bytes()
}

// decodeCover parses the oracle's reply: a first line giving the
// cover's size (ignored beyond validation), then that many lines each
// holding one 1-indexed vertex, converted back to 0-indexed.
func decodeCover(data []byte) ([]int, error) {
	sc := bufio.NewScanner(bytes.NewReader(data))
	if !sc.Scan() {
		return nil, fmt.Errorf("vcoracle: empty reply")
	}
	size, err := strconv.Atoi(strings.TrimSpace(sc.Text()))
	if err != nil || size < 0 {
		return nil, fmt.Errorf("vcoracle: malformed size header %q", sc.Text())
	}

	cover := make([]int, 0, size)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		id, err := strconv.Atoi(line)
		if err != nil || id < 1 {
			return nil, fmt.Errorf("vcoracle: malformed vertex line %q", line)
		}
		cover = append(cover, id-1)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("vcoracle: reading reply: %w", err)
	}
	if len(cover) != size {
		return nil, fmt.Errorf("vcoracle: size header said %d, got %d vertices", size, len(cover))
	}
	return cover, nil
}
