// Package memory holds the in-session conversation log.
//
// The log is append-only: messages are immutable once appended, there is no
// removal operation, and the system message is appended exactly once, first,
// at session construction. The full log is the source of truth sent to the
// completion provider each round.
package memory
