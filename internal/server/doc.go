// Package server wires the phalcon tool catalog into an MCP server.
//
// One MCP tool is registered per catalog entry; the input schema shown to
// clients is generated from the same parameter table the validator checks
// against. Handlers follow a single flow: validate, build the argv vector,
// execute (or detach, for the dev server), classify.
//
// Error classification mirrors the two-level failure model of the protocol:
//
//   - Validation failures, launch failures (phalcon not installed,
//     permission denied), and timeouts become protocol-level errors — there
//     is no CLI output worth showing for these.
//   - A nonzero exit from the phalcon CLI becomes a tool result with
//     IsError set and the CLI's own stdout/stderr attached, so the caller
//     can read phalcon's diagnostics and decide what to do next. It is not
//     escalated to a protocol fault.
//
// The server is stateless between calls; the only shared state is the
// immutable registry, so concurrent tool calls are safe.
package server
