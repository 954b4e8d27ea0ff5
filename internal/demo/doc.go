// Package demo is the interactive host for the signal bar: a Bubble Tea
// program that feeds increasing progress values to a ui.SignalBar on a
// timer, the way a media player would report playback position.
//
// Each tick advances one step and calls SetProgress(step/steps). Once the
// step passes steps the value is out of range and would be ignored by the
// renderer, so the loop either wraps back to zero or stops.
package demo
