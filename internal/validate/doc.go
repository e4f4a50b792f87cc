// Package validate inspects render plans for structural and numeric problems.
//
// Validate never mutates the plan and never fails: every finding is returned as
// an Error tagged Fatal or Warning. A plan passes when it has no fatal findings.
// Rule groups run independently; only an empty scene list stops the scene
// checks early, since nothing else about the timeline can be judged.
package validate
