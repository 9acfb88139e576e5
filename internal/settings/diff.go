package settings

import (
	"dotkit/internal/jsonc"
)

// Orphans returns the subset of settings that neither base nor local
// explains, with the same nested shape and key order as settings.
//
// A key is explained when either source carries it. Explained objects
// recurse with the corresponding sub-objects (anything that is not an
// object counts as empty). For explained arrays the expected elements
// are local's value when local carries the key, else base's; settings
// elements not deep-equal to any expected element are orphaned. The
// comparison is membership only: element order and duplicate counts are
// not considered. Container keys whose recursive result is empty are
// omitted, so an empty report means every setting is accounted for.
func Orphans(settings, base, local *jsonc.Value) *jsonc.Value {
	orphaned := jsonc.NewObject()
	if !settings.IsObject() {
		return orphaned
	}

	for _, m := range settings.Members() {
		baseVal, inBase := base.Get(m.Key)
		localVal, inLocal := local.Get(m.Key)

		switch {
		case !inBase && !inLocal:
			orphaned.Set(m.Key, m.Value)
		case m.Value.IsObject():
			nested := Orphans(m.Value, objectOrEmpty(baseVal), objectOrEmpty(localVal))
			if nested.Len() > 0 {
				orphaned.Set(m.Key, nested)
			}
		case m.Value.IsArray():
			// The external merge replaces arrays wholesale, so local's
			// array governs whenever local carries the key.
			expected := baseVal
			if inLocal {
				expected = localVal
			}
			extra := orphanedElements(m.Value, expected)
			if extra.Len() > 0 {
				orphaned.Set(m.Key, extra)
			}
		}
	}
	return orphaned
}

func objectOrEmpty(v *jsonc.Value) *jsonc.Value {
	if v.IsObject() {
		return v
	}
	return jsonc.NewObject()
}

func orphanedElements(actual, expected *jsonc.Value) *jsonc.Value {
	extra := jsonc.NewArray()
	for _, elem := range actual.Elems() {
		if !containsEqual(expected, elem) {
			extra.Append(elem)
		}
	}
	return extra
}

func containsEqual(arr *jsonc.Value, elem *jsonc.Value) bool {
	for _, candidate := range arr.Elems() {
		if jsonc.Equal(candidate, elem) {
			return true
		}
	}
	return false
}

// Prune returns settings with every orphaned key and array element
// removed, preserving order of what remains. Feeding the result and the
// original document to a line diff shows exactly which lines no source
// explains.
func Prune(settings, orphans *jsonc.Value) *jsonc.Value {
	if !settings.IsObject() || !orphans.IsObject() {
		return settings
	}
	pruned := jsonc.NewObject()
	for _, m := range settings.Members() {
		orphanVal, ok := orphans.Get(m.Key)
		if !ok {
			pruned.Set(m.Key, m.Value)
			continue
		}
		switch {
		case m.Value.IsObject() && orphanVal.IsObject():
			nested := Prune(m.Value, orphanVal)
			if nested.Len() > 0 {
				pruned.Set(m.Key, nested)
			}
		case m.Value.IsArray() && orphanVal.IsArray():
			kept := jsonc.NewArray()
			for _, elem := range m.Value.Elems() {
				if !containsEqual(orphanVal, elem) {
					kept.Append(elem)
				}
			}
			if kept.Len() > 0 {
				pruned.Set(m.Key, kept)
			}
		}
		// Fully orphaned keys are dropped.
	}
	return pruned
}
