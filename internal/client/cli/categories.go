package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/storefront/internal/catalog"
)

// Categories lists all category groups, or the subcategories of the group
// named by the first argument.
func (a *App) Categories(_ context.Context, args []string) error {
	if len(args) == 0 {
		for _, key := range catalog.Keys() {
			g, _ := catalog.Lookup(key)
			fmt.Fprintf(a.out, "%-12s %s (%d)\n", key, g.Title, len(g.Categories))
		}
		return nil
	}

	g, ok := catalog.Lookup(args[0])
	if !ok {
		fmt.Fprintf(a.out, "Unknown category group: %s\n", args[0])
		return fmt.Errorf("unknown category group %q", args[0])
	}

	fmt.Fprintf(a.out, "%s (up to %d items per page)\n", g.Title, g.Limit)
	for _, c := range g.Categories {
		fmt.Fprintf(a.out, "  - %s\n", c)
	}
	return nil
}
