// Package pipeline runs the build, validate and serialize steps for render
// plans and aborts on fatal validation findings.
//
// A Pipeline is safe for concurrent use. Batch builds independent jobs in
// parallel with a bounded worker count; one failing job never cancels the
// others. Plan files written by the CLI go through WritePlan and ReadPlan,
// and batch runs hold an exclusive lock on the output directory.
package pipeline
