// Package serialize converts render plans to and from their wire form.
//
// The wire form is a JSON-compatible record with stable snake_case keys:
//
//	render_plan_id, format, total_duration_seconds, fps, resolution,
//	audio_tracks, scenes, subtitles, output
//
// Every field is written; unset optional fields appear as explicit nulls and
// empty lists as []. Reading is lenient on numbers (numeric strings and
// json.Number are coerced) and strict on keys: a missing required key fails
// with an error wrapping ErrMissingKey.
package serialize
