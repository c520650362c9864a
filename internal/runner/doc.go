// Package runner drives the conversation turn state machine: ask the model,
// parse and execute tool directives, resubmit with results, return the final
// answer.
//
// Invariants:
//   - at most two completion requests per user turn; the follow-up reply is
//     appended verbatim and never re-parsed for directives.
//   - a turn's history mutations are staged and committed only when the turn
//     completes; a failed or cancelled turn leaves the log untouched.
//   - a session is strictly sequential; callers needing concurrency must
//     serialize whole turns externally.
//
// Flow:
//
//	user(text) -> assistant(directives) -> tool(results)* -> assistant(text)
package runner
