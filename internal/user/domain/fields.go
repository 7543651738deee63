package domain

import (
	"fmt"

	apperrors "github.com/allisson/users/internal/errors"
)

// AllowedFields is the process-wide set of user attributes that may appear in
// a projection, in canonical rendering order. It is defined once at startup
// and never mutated, so unsynchronized concurrent reads are safe.
// The password attribute is deliberately absent and can never be projected.
var AllowedFields = Fields{
	"id",
	"email",
	"username",
	"phone",
	"cell",
	"dob",
	"pps",
	"gender",
	"name",
	"picture",
	"location",
	"created_at",
	"updated_at",
}

var allowedFieldSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(AllowedFields))
	for _, field := range AllowedFields {
		set[field] = struct{}{}
	}
	return set
}()

// IsAllowedField reports whether name is a member of AllowedFields.
func IsAllowedField(name string) bool {
	_, ok := allowedFieldSet[name]
	return ok
}

// Fields is an ordered, duplicate-free projection of user attributes.
type Fields []string

// ResolveFields resolves a client-requested field set against AllowedFields.
// An empty request resolves to all allowed fields in canonical order; a
// non-empty request keeps the caller-specified order with duplicates removed.
// Any unknown name is rejected with an ErrInvalidInput naming the field.
func ResolveFields(requested []string) (Fields, error) {
	if len(requested) == 0 {
		fields := make(Fields, len(AllowedFields))
		copy(fields, AllowedFields)
		return fields, nil
	}

	seen := make(map[string]struct{}, len(requested))
	fields := make(Fields, 0, len(requested))
	for _, name := range requested {
		if !IsAllowedField(name) {
			return nil, apperrors.Wrap(
				apperrors.ErrInvalidInput,
				fmt.Sprintf("unknown field %q", name),
			)
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		fields = append(fields, name)
	}

	return fields, nil
}

// Contains reports whether the projection includes the given field.
func (f Fields) Contains(name string) bool {
	for _, field := range f {
		if field == name {
			return true
		}
	}
	return false
}
