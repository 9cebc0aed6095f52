// Package monitoring provides the structured logger used for lazy sort session lifecycle
// events. Entries are written as JSON lines carrying a timestamp, level, component, event
// type, message and optional details.
//
// Sessions only log when they are opened and closed. Nothing is logged while elements are
// being pulled.
package monitoring
