// Package metrics summarizes jump recordings with per-frame observers.
package metrics
