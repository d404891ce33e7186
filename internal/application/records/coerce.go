package records

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"modcms/internal/domain/content"
	"modcms/internal/shared/errors"
	"modcms/internal/shared/services/richtext"
)

// coerce converts v to the storage form of def's type. Blank strings on
// non-text columns become nil. formatter may be nil when sanitizing is not
// needed, as for filter values.
func coerce(def *content.ColumnDefinition, v any, formatter richtext.Formatter) (any, error) {
	name := def.Name()
	mismatch := func(want string) error {
		return errors.New(errors.KindTypeMismatch, fmt.Sprintf("expected %s", want), name).WithField(name)
	}

	switch def.Type().Kind() {
	case content.TypeNumber:
		n, ok := toNumber(v)
		if !ok {
			return nil, mismatch("a number")
		}
		return n, nil

	case content.TypeBoolean:
		b, ok, blank := toBool(v)
		if blank {
			return nil, nil
		}
		if !ok {
			return nil, mismatch("a boolean")
		}
		return b, nil

	case content.TypeForeignKey:
		if s, ok := v.(string); ok && strings.TrimSpace(s) == "" {
			return nil, nil
		}
		if n, ok := toNumber(v); ok && n != nil {
			return n, nil
		}
		s, ok := toText(v)
		if !ok {
			return nil, mismatch("a reference value")
		}
		return s, nil

	case content.TypeOptionSet:
		s, ok := toText(v)
		if !ok {
			return nil, mismatch("an option value")
		}
		if strings.TrimSpace(s) == "" {
			return nil, nil
		}
		return s, nil

	default:
		s, ok := toText(v)
		if !ok {
			return nil, mismatch("text")
		}
		if formatter != nil && def.Format() == content.FormatHTML {
			s = formatter.SanitizeHTML(s)
		}
		return s, nil
	}
}

// toNumber returns an int64 for integral values and a float64 otherwise.
// A blank string yields (nil, true).
func toNumber(v any) (any, bool) {
	var d decimal.Decimal
	switch val := v.(type) {
	case int:
		return int64(val), true
	case int8:
		return int64(val), true
	case int16:
		return int64(val), true
	case int32:
		return int64(val), true
	case int64:
		return val, true
	case uint:
		d = decimal.NewFromUint64(uint64(val))
	case uint8:
		return int64(val), true
	case uint16:
		return int64(val), true
	case uint32:
		return int64(val), true
	case uint64:
		d = decimal.NewFromUint64(val)
	case float32:
		d = decimal.NewFromFloat32(val)
	case float64:
		d = decimal.NewFromFloat(val)
	case decimal.Decimal:
		d = val
	case json.Number:
		parsed, err := decimal.NewFromString(val.String())
		if err != nil {
			return nil, false
		}
		d = parsed
	case string:
		trimmed := strings.TrimSpace(val)
		if trimmed == "" {
			return nil, true
		}
		parsed, err := decimal.NewFromString(trimmed)
		if err != nil {
			return nil, false
		}
		d = parsed
	default:
		return nil, false
	}

	if d.IsInteger() && d.Abs().Cmp(decimal.NewFromInt(1<<62)) < 0 {
		return d.IntPart(), true
	}
	return d.InexactFloat64(), true
}

// toBool reports the boolean value, whether v was understood and whether v
// was a blank string.
func toBool(v any) (bool, bool, bool) {
	switch val := v.(type) {
	case bool:
		return val, true, false
	case string:
		switch strings.ToLower(strings.TrimSpace(val)) {
		case "":
			return false, false, true
		case "1", "true", "yes", "on":
			return true, true, false
		case "0", "false", "no", "off":
			return false, true, false
		}
		return false, false, false
	default:
		n, ok := toNumber(v)
		if !ok {
			return false, false, false
		}
		switch n {
		case int64(0):
			return false, true, false
		case int64(1):
			return true, true, false
		}
		return false, false, false
	}
}

func toText(v any) (string, bool) {
	switch val := v.(type) {
	case string:
		return val, true
	case []byte:
		return string(val), true
	case json.Number:
		return val.String(), true
	case bool, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return fmt.Sprint(val), true
	case decimal.Decimal:
		return val.String(), true
	default:
		return "", false
	}
}
