// Package orchestrator wires the validate → format → encode pipeline behind a
// single entry point and builds decorated category forms for front-ends.
// Pipelines are stateless; callers that keep history own it.
package orchestrator
