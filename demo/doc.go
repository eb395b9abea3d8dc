// Package demo runs the scenarios described by a config.Config against the
// containers, sorts and graph algorithms of this module and collects the
// outcome in a Report.
//
// Scenarios run in a fixed order (sorting, heap, queue, stack, union-find,
// graph traversal, weighted network) and each is timed under its own
// section name by the supplied timing.Timer.
package demo
