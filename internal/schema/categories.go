package schema

import (
	"context"
	"fmt"

	"github.com/gradevo/gradevo-api/internal/logger"
	"github.com/gradevo/gradevo-api/internal/models"
	"github.com/jmoiron/sqlx"
)

// CategoryMapping renames one legacy portfolio category.
type CategoryMapping struct {
	From string
	To   string
}

// CategoryMigrationResult reports how many portfolio rows a mapping rewrote.
type CategoryMigrationResult struct {
	CategoryMapping
	Updated int64
}

// LegacyCategoryMappings folds the old free-text categories into the canonical ones,
// applied in this order.
var LegacyCategoryMappings = []CategoryMapping{
	{From: "Brand", To: models.CategoryBrandSolutions},
	{From: "Graphic Design", To: models.CategoryBrandSolutions},
	{From: "Web Development", To: models.CategoryTechSolutions},
	{From: "Mobile App", To: models.CategoryTechSolutions},
	{From: "E-Commerce", To: models.CategoryTechSolutions},
}

// MigrateCategories rewrites legacy portfolio categories in place. Running it again
// updates nothing.
func MigrateCategories(ctx context.Context, db sqlx.ExecerContext) ([]CategoryMigrationResult, error) {
	const query = `UPDATE portfolio SET category = $1 WHERE category = $2`

	results := make([]CategoryMigrationResult, 0, len(LegacyCategoryMappings))
	for _, m := range LegacyCategoryMappings {
		res, err := db.ExecContext(ctx, query, m.To, m.From)
		if err != nil {
			return results, fmt.Errorf("migrate category %q: %w", m.From, err)
		}
		n, _ := res.RowsAffected()
		logger.Log.Infow("category migrated", "from", m.From, "to", m.To, "updated", n)
		results = append(results, CategoryMigrationResult{CategoryMapping: m, Updated: n})
	}
	return results, nil
}

// ListCategories returns the distinct portfolio categories currently in use.
func ListCategories(ctx context.Context, db sqlx.QueryerContext) ([]string, error) {
	categories := []string{}
	err := sqlx.SelectContext(ctx, db, &categories, `SELECT DISTINCT category FROM portfolio ORDER BY category`)
	return categories, err
}
