// Package repo defines generic CRUD capability contracts over domain
// entities and aggregate roots. Every operation answers with a pending
// fn.Result, so implementations are free to resolve asynchronously; deletes
// succeed with fn.Unit. MemoryRepository is a map-backed implementation for
// tests and examples.
package repo
