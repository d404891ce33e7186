package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"modcms/internal/domain/localization"
	"modcms/internal/infrastructure/persistence/models"
	"modcms/internal/shared/constants"
	"modcms/internal/shared/db"
	apperrors "modcms/internal/shared/errors"
	"modcms/internal/shared/logger"
)

// LanguageRepository implements localization.Repository. It never writes.
type LanguageRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewLanguageRepository(db *gorm.DB, logger logger.Interface) localization.Repository {
	return &LanguageRepository{db: db, logger: logger}
}

// FindTranslation returns the text stored for (languageID, code)
func (r *LanguageRepository) FindTranslation(ctx context.Context, languageID uint, code string) (string, bool, error) {
	var texts []string
	err := db.Conn(ctx, r.db).
		Table(constants.TableTranslations+" AS t").
		Joins("JOIN "+constants.TableLanguageCodes+" AS lc ON lc.id = t.language_code_id").
		Where("t.language_id = ? AND lc.code = ?", languageID, code).
		Limit(1).
		Pluck("t.text", &texts).Error
	if err != nil {
		r.logger.Errorw("failed to find translation", "language_id", languageID, "code", code, "error", err)
		return "", false, apperrors.NewStorageError("find translation", err)
	}
	if len(texts) == 0 {
		return "", false, nil
	}
	return texts[0], true, nil
}

// GetDefaultLanguage returns the language flagged as default
func (r *LanguageRepository) GetDefaultLanguage(ctx context.Context) (*localization.Language, error) {
	return r.first(ctx, "get default language", "is_default = ?", true)
}

func (r *LanguageRepository) GetLanguageByID(ctx context.Context, id uint) (*localization.Language, error) {
	return r.first(ctx, "get language", "id = ?", id)
}

func (r *LanguageRepository) GetLanguageByCode(ctx context.Context, code string) (*localization.Language, error) {
	return r.first(ctx, "get language", "code = ?", code)
}

// ListLanguages returns all languages, default first
func (r *LanguageRepository) ListLanguages(ctx context.Context) ([]*localization.Language, error) {
	var modelList []*models.LanguageModel
	if err := db.Conn(ctx, r.db).Order("is_default DESC, id ASC").Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to list languages", "error", err)
		return nil, apperrors.NewStorageError("list languages", err)
	}

	out := make([]*localization.Language, 0, len(modelList))
	for _, m := range modelList {
		out = append(out, toLanguage(m))
	}
	return out, nil
}

func (r *LanguageRepository) first(ctx context.Context, op string, where string, args ...any) (*localization.Language, error) {
	var model models.LanguageModel
	err := db.Conn(ctx, r.db).Where(where, args...).Order("id ASC").First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to query language", "operation", op, "error", err)
		return nil, apperrors.NewStorageError(op, err)
	}
	return toLanguage(&model), nil
}

func toLanguage(m *models.LanguageModel) *localization.Language {
	return localization.NewLanguage(m.ID, m.Code, m.Name, m.IsDefault)
}
