package factory

import (
	"context"
	"fmt"
)

func (a *App) importWordLists(files map[string]string) error {
	ctx := context.Background()
	for name, path := range files {
		if _, err := a.WordListService.ImportFile(ctx, name, path); err != nil {
			return fmt.Errorf("import word list %s: %w", name, err)
		}
	}
	return nil
}
