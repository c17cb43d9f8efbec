// SPDX-License-Identifier: MIT

package pointgroups

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/pointgroup/group"
)

// ErrUnknownGroup indicates a group name with no built-in table.
var ErrUnknownGroup = errors.New("pointgroups: unknown group")

type entry struct {
	name    string
	aliases []string
	build   func() *group.Representation
}

var registry = []entry{
	{name: "D3", aliases: []string{"D_3", "Dihedral 3"}, build: D3},
	{name: "D4", aliases: []string{"D_4", "Dihedral 4"}, build: D4},
	{name: "O", aliases: []string{"Octahedral", "432"}, build: O},
}

// normalizeName folds case and drops separators so "Dihedral 4", "dihedral-4"
// and "DIHEDRAL_4" resolve alike.
func normalizeName(s string) string {
	return strings.NewReplacer(" ", "", "_", "", "-", "").Replace(strings.ToLower(s))
}

// Lookup builds the table registered under name or one of its aliases.
// Each call returns a fresh Representation.
func Lookup(name string) (*group.Representation, error) {
	key := normalizeName(name)
	for _, e := range registry {
		if normalizeName(e.name) == key {
			return e.build(), nil
		}
		for _, a := range e.aliases {
			if normalizeName(a) == key {
				return e.build(), nil
			}
		}
	}

	return nil, fmt.Errorf("Lookup(%q): %w", name, ErrUnknownGroup)
}

// Names returns the canonical names of the built-in groups, sorted.
func Names() []string {
	out := make([]string, 0, len(registry))
	for _, e := range registry {
		out = append(out, e.name)
	}
	sort.Strings(out)

	return out
}
