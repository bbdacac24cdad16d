// Package fixture provides an accessibility host backed by a recorded
// snapshot of a desktop. It serves both as the backend for offline inspection
// and as the object graph for tests.
package fixture
