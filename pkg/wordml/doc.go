// Package wordml models the WordprocessingML dialect used by word
// processing documents: a typed tree of paragraphs, runs, tables, styles,
// numbering definitions, sections, headers, footers, tracked changes,
// comments and structured tags, together with a tolerant reader and a
// canonical writer.
//
// Reading is forgiving: element and attribute names match on their local
// part, malformed values fall back to documented defaults, and unknown
// children are dropped (visible at debug log level). Writing is strict:
// every element emits its children in one fixed order with one fixed
// attribute spelling, so equal trees always serialize to equal bytes.
//
// All model types are values with fluent With*/Add* builders that return
// modified copies; nothing is mutated in place and none of the types are
// goroutine-unsafe to share read-only.
package wordml
