// Package response provides helpers for writing consistent console messages.
//
// Every outcome the menu reports goes through here, so users always see the
// same markers:
//
//	[+] success
//	[X] record rejected
//	[!] ERROR: input could not be read at all
//	   [!] Error: a single field problem (indented under the action)
package response

import (
	"fmt"
	"io"

	"github.com/aanand-mishra/student-records/internal/student"
)

// Response is one message to show on the console.
type Response struct {
	Status  string
	Message string
}

// Status string constants. Use these instead of raw literals so a typo is
// caught by the compiler.
const (
	StatusOK       = "ok"
	StatusRejected = "rejected"
	StatusError    = "error"
	StatusIssue    = "issue"
	StatusInfo     = "info"
)

// Write prints r on its own line with the marker for its status.
// Top-level outcomes are preceded by a blank line; field issues are not,
// so they stay grouped under the prompt that caused them.
func Write(w io.Writer, r Response) error {
	var err error
	switch r.Status {
	case StatusOK:
		_, err = fmt.Fprintf(w, "\n[+] %s\n", r.Message)
	case StatusRejected:
		_, err = fmt.Fprintf(w, "\n[X] %s\n", r.Message)
	case StatusError:
		_, err = fmt.Fprintf(w, "\n[!] ERROR: %s\n", r.Message)
	case StatusIssue:
		_, err = fmt.Fprintf(w, "   [!] Error: %s\n", r.Message)
	default:
		_, err = fmt.Fprintf(w, "\n%s\n", r.Message)
	}
	return err
}

// Success reports a completed action, e.g. a record being added.
func Success(msg string) Response {
	return Response{Status: StatusOK, Message: msg}
}

// Rejected reports input that was read but not accepted, e.g. a record
// with an invalid email.
func Rejected(msg string) Response {
	return Response{Status: StatusRejected, Message: msg}
}

// Error reports input that could not be used at all.
func Error(msg string) Response {
	return Response{Status: StatusError, Message: msg}
}

// Info is a plain message without a marker.
func Info(msg string) Response {
	return Response{Status: StatusInfo, Message: msg}
}

// GeneralError wraps any Go error into the error shape.
func GeneralError(err error) Response {
	return Response{
		Status:  StatusError,
		Message: err.Error(),
	}
}

// ValidationError converts the Issues collected while building a record into
// one Response per issue, in the order they were found.
func ValidationError(issues []student.Issue) []Response {
	out := make([]Response, 0, len(issues))
	for _, issue := range issues {
		out = append(out, Response{Status: StatusIssue, Message: issue.Error()})
	}
	return out
}
