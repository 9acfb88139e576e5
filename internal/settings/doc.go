// Package settings compares a merged settings.json against its base and
// local JSONC sources and reports orphaned content: keys, values, and
// array elements the merged document carries that neither source
// explains.
package settings
