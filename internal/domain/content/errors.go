package content

import "modcms/internal/shared/errors"

// Sentinels for errors.Is checks; the returned errors carry messages and details.
var (
	ErrDuplicateCode       = errors.Sentinel(errors.KindDuplicateCode)
	ErrDuplicateColumnName = errors.Sentinel(errors.KindDuplicateColumnName)
	ErrInvalidColumnSpec   = errors.Sentinel(errors.KindInvalidColumnSpec)
	ErrUnknownCategory     = errors.Sentinel(errors.KindUnknownCategory)
	ErrCategoryInUse       = errors.Sentinel(errors.KindCategoryInUse)
	ErrUnknownModule       = errors.Sentinel(errors.KindUnknownModule)
)

func invalidColumnSpec(message string, details ...string) error {
	return errors.New(errors.KindInvalidColumnSpec, message, details...)
}
