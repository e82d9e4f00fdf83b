// Package pipeline runs the three stages in order: load and normalise all
// reports, merge hits into windows, then stream the assembly through the
// extractor into a writer.
//
// The window map is complete before the assembly is opened, so a bad report
// aborts the run before any output is produced.
package pipeline
