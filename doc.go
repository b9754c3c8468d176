// Package seqcore implements the core of a spacecraft trajectory
// optimization engine: a dependency-driven event sequencer coupled with a
// typed get/set calculation framework that turns a declared mission plan
// into a nonlinear programming residual suitable for an outer optimizer.
//
// The package is organized around three layers. The calc framework
// (tags.go, calc.go, representation.go, conversion.go) exposes a uniform
// get/set interface over orbital, maneuver, and body quantities, doing
// whatever representation conversion is required on the way in and out.
// The event sequence graph (event.go, sequence.go, toposort.go) linearizes
// a DAG of named effects into an executable order. The sequence manager
// and solver bridge (manager.go, solver.go) turn that linearized graph,
// plus the decision variables and constraints attached to each event,
// into a single residual function an external NLP solver can drive.
package seqcore
