package repo

import (
	"context"
	"fmt"

	"github.com/light-bringer/storefront-catalog/internal/app/catalog/contracts"
	"github.com/light-bringer/storefront-catalog/internal/pkg/committer"
)

// ImportPlan builds the mutations that copy source into the Spanner tables.
// Positions follow the source order, so catalog order survives the copy.
func (c *SpannerCatalog) ImportPlan(ctx context.Context, source contracts.CatalogStore) (*committer.CommitPlan, error) {
	products, err := source.AllProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read source products: %w", err)
	}
	defs, err := source.CategoryDefinitions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read source categories: %w", err)
	}

	plan := committer.NewPlan()
	for i, def := range defs {
		plan.Add(c.CategoryInsertMut(def, i))
	}
	for i, p := range products {
		mut, err := c.ProductInsertMut(p, i)
		if err != nil {
			return nil, err
		}
		plan.Add(mut)
	}
	return plan, nil
}

// Import copies source into Spanner in batches and returns the number of rows written.
func (c *SpannerCatalog) Import(ctx context.Context, source contracts.CatalogStore) (int, error) {
	plan, err := c.ImportPlan(ctx, source)
	if err != nil {
		return 0, err
	}
	if err := committer.NewCommitter(c.client).ApplyInBatches(ctx, plan, committer.DefaultBatchSize); err != nil {
		return 0, fmt.Errorf("failed to import catalog: %w", err)
	}
	return plan.Count(), nil
}
