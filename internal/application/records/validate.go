package records

import (
	"context"
	"fmt"
	"strings"

	"modcms/internal/domain/content"
	"modcms/internal/shared/errors"
)

// validate checks values against the target's definitions and replaces each
// defined value with its coerced form. row is the full record the write will
// produce and is only consulted for required columns. The first failure wins.
func (s *Store) validate(ctx context.Context, t *target, values, row map[string]any, excludeID any) error {
	for _, def := range t.defs {
		name := def.Name()

		if def.IsRequired() && isBlank(row[name]) {
			return errors.New(errors.KindRequiredFieldMissing, "field is required", name).WithField(name)
		}

		raw, present := values[name]
		if !present || raw == nil {
			continue
		}

		value, err := coerce(def, raw, s.formatter)
		if err != nil {
			return err
		}
		if value == nil {
			if def.IsRequired() {
				return errors.New(errors.KindRequiredFieldMissing, "field is required", name).WithField(name)
			}
			values[name] = nil
			continue
		}

		if def.Type().Kind() == content.TypeOptionSet && !def.Type().Allows(value.(string)) {
			return errors.New(errors.KindInvalidOption, "value is not one of the allowed options", name).WithField(name)
		}

		if ref, ok := def.Type().Foreign(); ok {
			exists, err := s.records.ValueExists(ctx, ref.Table, ref.Column, value, nil)
			if err != nil {
				return err
			}
			if !exists {
				return errors.New(errors.KindDanglingForeignKey, "referenced row does not exist",
					fmt.Sprintf("%s.%s=%v", ref.Table, ref.Column, value)).WithField(name)
			}
		}

		if def.IsUnique() {
			taken, err := s.records.ValueExists(ctx, t.table(), name, value, excludeID)
			if err != nil {
				return err
			}
			if taken {
				return errors.New(errors.KindUniqueViolation, "value already in use", name).WithField(name)
			}
		}

		values[name] = value
	}
	return nil
}

func isBlank(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(val) == ""
	case []byte:
		return strings.TrimSpace(string(val)) == ""
	default:
		return false
	}
}
