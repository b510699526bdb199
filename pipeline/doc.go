// Package pipeline sequences plugins over a single ContentItem. Stages
// run strictly in declared order; the chain stops at the first failure,
// which is surfaced with the failing plugin's identity after exactly one
// error-kind OutputEvent has been emitted. A shared sink is threaded
// through every stage so plugins can report progress mid-run.
//
// Pipelines are assembled either from explicit plugin instances or from
// declarative configuration resolved against a plugin.Registry. A
// Pipeline instance supports one run at a time; plugin instances are
// not reentrant, so concurrent requests each get their own Pipeline.
package pipeline
