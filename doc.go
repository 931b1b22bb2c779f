// Package gatelog is a lightweight, level-gated logging façade for
// services whose log lines are collected from standard output.
//
// Callers invoke level-specific entry points with a printf-style
// template; the façade filters by a severity threshold fixed at process
// start, prefixes each accepted line with a syslog-style priority digit
// and the call site's file:line, and writes it to stdout, flushing
// immediately. Logging is best-effort end to end: a broken template
// degrades to a placeholder message and write errors are ignored, so a
// log call can never fail the operation that made it.
//
// Key Components:
//
//   - pkg/logging: the Severity enumeration, the threshold gate, the
//     Logger with per-level entry points, and the stdout Output.
//
//   - pkg/formatters: adapter values (Code, View, URL, Ptr) that let
//     foreign value categories be interpolated into templates without
//     hand-written conversions.
//
//   - pkg/config: YAML + environment startup configuration, consumed
//     once to build the logger the process installs.
//
//   - pkg/errors: structured errors with codes, used by the config
//     layer and renderable through formatters.Code.
package gatelog
