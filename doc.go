// Package dynamicform renders repeatable "add/remove" form groups on the
// server and emits the configuration consumed by the yiiDynamicForm browser
// runtime.
//
// The root package re-exports the common types and offers one-call helpers.
// The building blocks live under pkg/: model (configuration and naming), dom
// (template extraction), options (JSON payload), registry (hash variables and
// first-writer-wins deduplication), emitter (script statements), page
// (per-request state) and widget (orchestration).
package dynamicform
