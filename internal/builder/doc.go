// Package builder turns a narration script, a template descriptor and a
// visual strategy into a render plan.
//
// Building is deterministic apart from the plan identifier and the timestamp in
// the output filename; both come from injectable sources (WithIDGenerator,
// WithClock). Scenes and subtitle segments are laid out with one running time
// cursor, so a plan built from a script with positive total duration is gapless
// and covers exactly the summed beat durations. The only build failure is a
// non-positive total duration; every other structural problem is left for the
// validator to report.
package builder
