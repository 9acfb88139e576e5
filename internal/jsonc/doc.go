// Package jsonc parses JSON and JSONC (JSON with // and /* */ comments
// plus trailing commas) into an order-preserving value tree.
//
// Unlike regex-based comment stripping, the parser is a real tokenizer:
// string-literal boundaries and escape sequences are tracked, so comment
// markers and commas inside strings are never mangled. Object member
// order is preserved through parse and encode, which keeps reports in the
// same key order as the source document.
package jsonc
