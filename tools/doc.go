// Package tools defines tool contracts, argument coercion and dispatch.
//
// Includes:
//   - ToolDefinition: name, description, typed parameter signature, example, handler.
//   - Registry: insertion-ordered name -> definition table, built once at startup.
//   - Bind / Execute: coercion of parsed directive tokens and call dispatch.
//   - Built-in tools: calculator, current_time.
//   - Invariant: tool failures are returned as "Error: ..." result content;
//     a tool never surfaces a fault to the orchestrator.
package tools
