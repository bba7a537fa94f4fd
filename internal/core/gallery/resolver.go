// Copyright (c) 2026 Mumu Design Studio. All rights reserved.
// Author: dev@mumudesign.kr

package gallery

// # Merge Resolver

/*
Effective computes the gallery as visitors see it by layering the stored
overrides and tombstones on top of the seed catalogue.

Description: The merge is deterministic and purely functional. Seed projects
keep their authored order. A seed project whose id is tombstoned disappears;
one whose id matches an override is replaced in place by the override. Any
override that does not correspond to a seed id is appended after the seed
block in insertion order. Tombstoned ids never appear in the result, whatever
layer they came from.

Parameters:
  - seed: []Project (The built-in catalogue, in authored order)
  - overrides: []Project (Stored edits and additions, in insertion order)
  - tombstones: []string (Ids the studio deleted)

Returns:
  - []Project: The merged catalogue, never nil
*/
func Effective(seed, overrides []Project, tombstones []string) []Project {
	deleted := make(map[string]struct{}, len(tombstones))
	for _, id := range tombstones {
		deleted[id] = struct{}{}
	}

	replacements := make(map[string]Project, len(overrides))
	seedIDs := make(map[string]struct{}, len(seed))
	for _, p := range seed {
		seedIDs[p.ID] = struct{}{}
	}
	for _, o := range overrides {
		if _, ok := seedIDs[o.ID]; ok {
			replacements[o.ID] = o
		}
	}

	merged := make([]Project, 0, len(seed)+len(overrides))

	// Seed block: tombstones hide, overrides replace in place.
	for _, p := range seed {
		if _, gone := deleted[p.ID]; gone {
			continue
		}
		if replacement, ok := replacements[p.ID]; ok {
			merged = append(merged, replacement)
			continue
		}
		merged = append(merged, p)
	}

	// Additions: overrides with no seed counterpart, insertion order.
	for _, o := range overrides {
		if o.ID == "" {
			continue
		}
		if _, ok := seedIDs[o.ID]; ok {
			continue
		}
		if _, gone := deleted[o.ID]; gone {
			continue
		}
		merged = append(merged, o)
	}

	return merged
}
