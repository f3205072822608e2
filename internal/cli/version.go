package cli

import (
	"context"
	"fmt"

	"github.com/diligentgraphics/dnbuild/internal"
)

// Represents the 'dnbuild version' command.
type VersionCmd struct{}

// Executes the version command.
func (c *VersionCmd) Run(ctx context.Context) error {
	fmt.Println(internal.Info())
	return nil
}
