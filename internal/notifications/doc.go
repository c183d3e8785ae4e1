// Package notifications delivers run outcomes via pluggable notifiers.
//
// The default implementation publishes to ntfy using the topic configured in
// config.toml and gracefully degrades to a no-op when notifications are
// disabled. Per-event toggles let operators silence routine success messages
// while keeping failure alerts.
//
// Extend this package if you need alternative transports; callers depend only
// on the small Service interface.
package notifications
