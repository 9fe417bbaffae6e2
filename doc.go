// Package boolnet simulates discrete Boolean dynamics on signed regulatory
// networks and turns the resulting activity into windowed expression data.
//
// What is inside?
//
//	core/       — thread-safe directed (multi)graph with signed edges
//	incidence/  — graph → compressed Ptr/Adj/Func arrays
//	dynamics/   — sync/async runs with tie policies, stitched runs
//	              and attractor search
//	expression/ — windowed, normalized activity
//	matrix/     — row-major Dense matrix used for the expression handoff
//	config/     — YAML networks, jobs and batches
//	pipeline/   — end-to-end job runner and bounded batch runner
//	cmd/boolsim — command-line front end
//
// Data flow:
//
//	core.Graph → incidence.Encode → dynamics.Stitch → expression.ToExpression → matrix.Dense
//
// The core packages (incidence, dynamics, expression) hold no state between
// calls and never log. Randomness comes from a per-call seeded source, so equal
// inputs and seeds reproduce bit-for-bit regardless of scheduling.
//
// Quick start:
//
//	g := core.NewGraph(core.WithLoops())
//	g.AddEdge("A", "B", core.WithAttr("function", 1))
//	g.AddEdge("B", "A", core.WithAttr("function", -1))
//	inc, _ := incidence.Encode(g)
//	eng, _ := dynamics.FromIncidence(inc)
//	series, _ := dynamics.Stitch(eng, 3, 50, dynamics.WithSeed(1))
//	expr, _ := expression.ToExpression(series, 10, 0, expression.NormWindow)
package boolnet
