// Package escape produces regex-safe, slash-escaped text for embedding
// literal strings into regex patterns and sed-style substitutions.
package escape
