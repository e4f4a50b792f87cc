// Package plan defines the render plan: the complete, second-by-second
// instruction set handed to the video rendering engine.
//
// Every type in this package is an immutable value. Fields are unexported and
// only reachable through accessors; accessors that expose slices return
// copies, so a Plan obtained from the builder or the deserializer cannot be
// changed after construction. Producing a different plan means constructing a
// new value.
//
// # Key Types
//
// Plan: root value with ID, Format, TotalDuration, FPS, Resolution,
// AudioTracks, Scenes, Subtitles and Output.
//
// Scene: absolute time window on the timeline carrying one Visual, zero or
// more Overlays (timed relative to the scene) and entry/exit Transitions.
//
// AudioTrack, SubtitleSegment, Subtitles, Output: the remaining layers.
//
// # Invariants
//
// Constructors accept any numeric values. Structural and numeric invariants
// (contiguous scenes, positive dimensions, non-negative volume, ...) are
// checked by the validate package, not here. The variant tags (AudioKind,
// VisualKind, OverlayKind, TransitionKind) are closed enums: unknown tags are
// rejected when parsed.
package plan
