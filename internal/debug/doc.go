// Package debug is the file logger used for tracing focus decisions.
//
// Nothing is written until Init opens a log file or the DPAD_DEBUG
// environment variable names one; until then Log returns immediately.
// Lines are timestamped and writes are serialized.
package debug
