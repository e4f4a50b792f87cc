// Package main hosts the editorbot CLI entrypoint and command graph.
//
// The Cobra command tree turns script, template and strategy files into
// render plans, re-validates stored plans, prints plan summaries and runs
// batches of builds against the configured output directory. Configuration
// and logging are resolved once per invocation in commandContext.
package main
