// Package mapper holds slice helpers shared by the persistence mappers and
// the application DTO conversions.
package mapper

// MapSlice applies mapFunc to each element. The result is never nil, so an
// empty input serializes as [] rather than null.
func MapSlice[T any, R any](items []T, mapFunc func(T) R) []R {
	out := make([]R, 0, len(items))
	for _, item := range items {
		out = append(out, mapFunc(item))
	}
	return out
}

// MapSlicePtrSkipNil maps a pointer slice, skipping nil inputs and nil outputs.
func MapSlicePtrSkipNil[T any, R any](items []*T, mapFunc func(*T) *R) []*R {
	out := make([]*R, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		if mapped := mapFunc(item); mapped != nil {
			out = append(out, mapped)
		}
	}
	return out
}

// MapSliceWithError maps each element and stops at the first failure.
func MapSliceWithError[T any, R any](items []T, mapFunc func(T) (R, error)) ([]R, error) {
	out := make([]R, 0, len(items))
	for _, item := range items {
		mapped, err := mapFunc(item)
		if err != nil {
			return nil, err
		}
		out = append(out, mapped)
	}
	return out, nil
}
