// Package registry decides whether a widget's configuration still has to be
// emitted. Each container selector maps to the hash variable of the first
// configuration registered for it; later registrations for the same
// container resolve to that stored name even when their own payload differs.
//
// The Store behind a Registry sets the lifetime of that mapping:
// MemoryStore is scoped to one page render, SharedStore lives as long as the
// process, and redisstore spans processes that cooperate on one page.
package registry
