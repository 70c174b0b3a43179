// Package ui implements the AlgoTrack terminal interface on bubbletea.
//
// The Model owns three views: the catalog browser (live filtering over
// catalog snapshots), the profile view (progress records plus the
// statistics panel), and a modal form layer for sign-in, catalog
// submission, and progress tracking. Every second the model pulls
// fresh snapshots from the stores and recomputes the filtered view and
// statistics; both are pure functions, so recomputation on every tick
// is safe and keeps the UI stateless with respect to the data layer.
//
// All writes go through the mutation coordinator as tea.Cmds with a
// bounded context; results come back as messages and surface in the
// footer, including the data-may-be-stale warning when a write
// succeeded but its reconciling refresh did not.
package ui
