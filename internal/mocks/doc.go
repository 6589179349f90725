// Package mocks provides hand-written test doubles for the service and store
// interfaces. Each mock exposes function fields to override behavior per test
// and sensible in-memory defaults otherwise.
package mocks
