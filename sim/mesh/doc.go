// Package mesh wires sim's data model and arbitration policies into a
// running 2D mesh: per-router pipelines, the grid that connects them, PE
// injection/ejection, and the global tick loop.
package mesh
