// Package core contains plumbing shared by the helpers: context-carried
// options (the diagnostic sink used by streaming helpers) and ctx-aware
// channel producers and collectors. It holds no unwrap logic itself.
package core
