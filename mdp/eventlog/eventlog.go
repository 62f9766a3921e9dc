// Package eventlog reads the flat-file event format shared by training
// logs and order streams: one "<task> <item>" pair per line,
// whitespace-separated. Blank lines and lines starting with '#' are
// skipped. Line order is preserved; whether it matters is the caller's
// business (it does for order streams, not for training logs).
package eventlog

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/warehouse-sim/warehouse-sim/mdp"
)

// ReadFile reads every event in the file at path, resolving task and item
// names against the domain. Malformed lines and unknown names are data
// errors, reported with their line number.
func ReadFile(path string, d mdp.Domain) ([]mdp.Event, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening event log: %w", err)
	}
	defer f.Close()

	var events []mdp.Event
	scanner := bufio.NewScanner(f)
	for lineNum := 1; scanner.Scan(); lineNum++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("%w: %s:%d: want \"<task> <item>\", got %q", mdp.ErrData, path, lineNum, line)
		}
		task, ok := d.TaskIndex(fields[0])
		if !ok {
			return nil, fmt.Errorf("%w: %s:%d: unknown task %q", mdp.ErrData, path, lineNum, fields[0])
		}
		item, ok := d.ItemIndex(fields[1])
		if !ok {
			return nil, fmt.Errorf("%w: %s:%d: unknown item %q", mdp.ErrData, path, lineNum, fields[1])
		}
		events = append(events, mdp.Event{Task: task, Item: item})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading event log: %w", err)
	}
	return events, nil
}
