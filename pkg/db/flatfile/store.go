// Package flatfile implements durable table storage over header-first,
// comma-delimited files, one file per table. Inserts append; updates and
// deletes rewrite the whole table. Each table operation is internally
// complete (rewrites go through a temp file and rename) but there is no
// cross-table atomicity: a crash between two table writes leaves them
// inconsistent, and callers own that trade-off.
package flatfile

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"skyledger/pkg/logger"
)

type Store struct {
	dir string
	log *logger.Logger
}

func New(dir string, log *logger.Logger) *Store {
	return &Store{dir: dir, log: log}
}

func (s *Store) path(table string) string {
	return filepath.Join(s.dir, table+".csv")
}

// EnsureTable creates the table file with its header line if absent.
// Idempotent; an existing file is left untouched.
func (s *Store) EnsureTable(table string, header []string) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create data dir: %w", err)
	}

	path := s.path(table)
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to stat table %s: %w", table, err)
	}

	if err := os.WriteFile(path, []byte(strings.Join(header, ",")+"\n"), 0o644); err != nil {
		return fmt.Errorf("failed to create table %s: %w", table, err)
	}
	s.log.Info("Table created", "table", table, "path", path)
	return nil
}

// LoadAll reads every row after the header. Blank lines are skipped.
// Field-level validation belongs to the caller; LoadAll only splits.
func (s *Store) LoadAll(table string) ([][]string, error) {
	f, err := os.Open(s.path(table))
	if err != nil {
		return nil, fmt.Errorf("failed to open table %s: %w", table, err)
	}
	defer f.Close()

	var rows [][]string
	scanner := bufio.NewScanner(f)
	first := true
	for scanner.Scan() {
		line := scanner.Text()
		if first {
			first = false
			continue
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		rows = append(rows, strings.Split(line, ","))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read table %s: %w", table, err)
	}
	return rows, nil
}

// Append adds one row at end-of-file.
func (s *Store) Append(table string, row []string) error {
	f, err := os.OpenFile(s.path(table), os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open table %s for append: %w", table, err)
	}
	defer f.Close()

	if _, err := f.WriteString(strings.Join(row, ",") + "\n"); err != nil {
		return fmt.Errorf("failed to append to table %s: %w", table, err)
	}
	return nil
}

// RewriteMatching reads the whole table, replaces rows whose key (first
// field) matches, and writes the table back. A nil replacement removes
// matching rows. The rewrite lands via rename so a crash mid-write never
// leaves a truncated table behind.
func (s *Store) RewriteMatching(table string, match func(key string) bool, replacement []string) error {
	path := s.path(table)
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read table %s: %w", table, err)
	}

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	out := make([]string, 0, len(lines))
	for i, line := range lines {
		if i == 0 || strings.TrimSpace(line) == "" {
			if i == 0 {
				out = append(out, line)
			}
			continue
		}
		key := line
		if idx := strings.IndexByte(line, ','); idx >= 0 {
			key = line[:idx]
		}
		if match(key) {
			if replacement == nil {
				continue
			}
			out = append(out, strings.Join(replacement, ","))
			continue
		}
		out = append(out, line)
	}

	tmp, err := os.CreateTemp(s.dir, table+"-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file for table %s: %w", table, err)
	}
	tmpPath := tmp.Name()
	if _, err := tmp.WriteString(strings.Join(out, "\n") + "\n"); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write temp file for table %s: %w", table, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close temp file for table %s: %w", table, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace table %s: %w", table, err)
	}
	return nil
}
