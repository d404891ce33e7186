package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"modcms/internal/domain/content"
	"modcms/internal/infrastructure/persistence/models"
	"modcms/internal/shared/mapper"
)

// CustomColumnMapper converts between column definitions and models
type CustomColumnMapper interface {
	ToDomain(model *models.CustomColumnModel) (*content.ColumnDefinition, error)
	ToModel(column *content.ColumnDefinition) (*models.CustomColumnModel, error)
	ToDomainList(modelList []*models.CustomColumnModel) ([]*content.ColumnDefinition, error)
}

type CustomColumnMapperImpl struct{}

func NewCustomColumnMapper() CustomColumnMapper {
	return &CustomColumnMapperImpl{}
}

// ToDomain rebuilds the tagged column type. A stored row that no longer forms
// a valid type is reported rather than silently repaired.
func (m *CustomColumnMapperImpl) ToDomain(model *models.CustomColumnModel) (*content.ColumnDefinition, error) {
	if model == nil {
		return nil, nil
	}

	options := map[string]any{}
	if len(model.Options) > 0 {
		if err := json.Unmarshal(model.Options, &options); err != nil {
			return nil, fmt.Errorf("decode options of column %d: %w", model.ID, err)
		}
	}

	colType, err := content.ParseColumnType(model.Type, deref(model.ForeignTable), deref(model.ForeignColumn), stringValues(options[content.OptionValues]))
	if err != nil {
		return nil, fmt.Errorf("column %d: %w", model.ID, err)
	}

	return content.ReconstructColumnDefinition(
		model.ID,
		model.CategoryID,
		model.Name,
		colType,
		model.IsRequired,
		model.IsUnique,
		options,
		model.Position,
		model.CreatedAt,
	), nil
}

func (m *CustomColumnMapperImpl) ToModel(column *content.ColumnDefinition) (*models.CustomColumnModel, error) {
	if column == nil {
		return nil, nil
	}

	raw, err := json.Marshal(column.Options())
	if err != nil {
		return nil, fmt.Errorf("encode options of column %s: %w", column.Name(), err)
	}

	model := &models.CustomColumnModel{
		ID:         column.ID(),
		CategoryID: column.CategoryID(),
		Name:       column.Name(),
		Type:       string(column.Type().Kind()),
		IsRequired: column.IsRequired(),
		IsUnique:   column.IsUnique(),
		Options:    datatypes.JSON(raw),
		Position:   column.Position(),
		CreatedAt:  column.CreatedAt(),
	}
	if ref, ok := column.Type().Foreign(); ok {
		model.ForeignTable = &ref.Table
		model.ForeignColumn = &ref.Column
	}
	return model, nil
}

func (m *CustomColumnMapperImpl) ToDomainList(modelList []*models.CustomColumnModel) ([]*content.ColumnDefinition, error) {
	return mapper.MapSliceWithError(modelList, m.ToDomain)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func stringValues(raw any) []string {
	items, ok := raw.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
