// Package logger records what a shell session did as newline delimited JSON
// events and aggregates those events into reports.
package logger
