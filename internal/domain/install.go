package domain

import (
	"fmt"
	"strings"
	"time"
)

type InstallOutcome string

const (
	InstallSucceeded InstallOutcome = "success"
	InstallFailed    InstallOutcome = "failure"
)

// InstallRecord is one logged install attempt. Records are append-only: the
// journal never mutates or deletes them.
type InstallRecord struct {
	Library   string
	Timestamp time.Time
	Outcome   InstallOutcome
	Reason    string
}

// LogLine serializes a record to its journal form:
// "<RFC3339 ts> <library> success" or "<RFC3339 ts> <library> failure: <reason>".
func (r InstallRecord) LogLine() string {
	if r.Outcome == InstallFailed {
		return fmt.Sprintf("%s %s failure: %s", r.Timestamp.UTC().Format(time.RFC3339), r.Library, r.Reason)
	}

	return fmt.Sprintf("%s %s success", r.Timestamp.UTC().Format(time.RFC3339), r.Library)
}

// ParseInstallRecord decodes one journal line. The failure reason is the
// remainder of the line, so reasons may contain spaces.
func ParseInstallRecord(line string) (InstallRecord, error) {
	fields := strings.SplitN(strings.TrimSpace(line), " ", 3)
	if len(fields) < 3 {
		return InstallRecord{}, fmt.Errorf("malformed journal line %q", line)
	}

	timestamp, err := time.Parse(time.RFC3339, fields[0])
	if err != nil {
		return InstallRecord{}, fmt.Errorf("parse journal timestamp %q: %w", fields[0], err)
	}

	record := InstallRecord{
		Library:   fields[1],
		Timestamp: timestamp,
	}

	outcome := fields[2]
	switch {
	case outcome == string(InstallSucceeded):
		record.Outcome = InstallSucceeded
	case strings.HasPrefix(outcome, string(InstallFailed)+":"):
		record.Outcome = InstallFailed
		record.Reason = strings.TrimSpace(strings.TrimPrefix(outcome, string(InstallFailed)+":"))
	default:
		return InstallRecord{}, fmt.Errorf("unknown journal outcome %q", outcome)
	}

	return record, nil
}

// InstallFailure reports a package manager run that completed with a non-zero
// exit code. Other errors from the installer adapter mean the invocation
// itself could not run.
type InstallFailure struct {
	ExitCode int
	Stderr   string
}

func (e *InstallFailure) Error() string {
	if e.Stderr == "" {
		return fmt.Sprintf("installer exited with code %d", e.ExitCode)
	}

	return fmt.Sprintf("installer exited with code %d: %s", e.ExitCode, e.Stderr)
}
