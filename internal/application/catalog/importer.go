package catalog

import (
	"context"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"modcms/internal/application/catalog/dto"
	"modcms/internal/shared/errors"
)

// ParseCatalog decodes a YAML catalog document. Unknown keys are rejected.
func ParseCatalog(r io.Reader) (*dto.CatalogDocument, error) {
	var doc dto.CatalogDocument
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && err != io.EOF {
		return nil, errors.NewValidationError("invalid catalog document", err.Error())
	}
	return &doc, nil
}

// ImportCatalog applies doc through the regular registry operations inside
// one transaction. Entries whose code or name already exists are skipped.
func (s *Service) ImportCatalog(ctx context.Context, doc *dto.CatalogDocument) (*dto.ImportReport, error) {
	report := &dto.ImportReport{}

	err := s.inTx(ctx, func(ctx context.Context) error {
		for _, entry := range doc.Categories {
			if err := s.importCategory(ctx, entry, report); err != nil {
				return fmt.Errorf("category %q: %w", entry.Code, err)
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Errorw("catalog import failed", "error", err)
		return nil, err
	}

	s.logger.Infow("catalog imported",
		"categories", report.CategoriesCreated,
		"columns", report.ColumnsCreated,
		"modules", report.ModulesCreated,
		"skipped", len(report.Skipped),
	)
	return report, nil
}

func (s *Service) importCategory(ctx context.Context, entry dto.CatalogCategory, report *dto.ImportReport) error {
	category, err := s.categories.GetByCode(ctx, entry.Code)
	if err != nil {
		return err
	}

	var categoryID uint
	if category != nil {
		categoryID = category.ID()
		report.Skipped = append(report.Skipped, "category:"+entry.Code)
	} else {
		created, err := s.CreateCategory(ctx, dto.CreateCategoryRequest{Name: entry.Name, Code: entry.Code})
		if err != nil {
			return err
		}
		categoryID = created.ID
		report.CategoriesCreated++
	}

	for _, col := range entry.Columns {
		exists, err := s.columns.ExistsByName(ctx, categoryID, col.Name)
		if err != nil {
			return err
		}
		if exists {
			report.Skipped = append(report.Skipped, "column:"+entry.Code+"."+col.Name)
			continue
		}
		if _, err := s.AddColumnDefinition(ctx, categoryID, col); err != nil {
			return err
		}
		report.ColumnsCreated++
	}

	for _, mod := range entry.Modules {
		exists, err := s.modules.ExistsByCode(ctx, mod.Code)
		if err != nil {
			return err
		}
		if exists {
			report.Skipped = append(report.Skipped, "module:"+mod.Code)
			continue
		}
		mod.CategoryID = categoryID
		if _, err := s.CreateModule(ctx, mod); err != nil {
			return err
		}
		report.ModulesCreated++
	}
	return nil
}
