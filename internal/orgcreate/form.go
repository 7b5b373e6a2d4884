// Package orgcreate drives the create-organization flow independently of any
// particular front end: form state, validation, submission and the
// post-create hand-off to shared state and navigation.
package orgcreate

import "orgsetup/internal/domain"

// Form owns the field values and per-field error messages of the create form.
type Form struct {
	values domain.FormValues
	errors map[domain.Field]string
}

// NewForm returns an empty form whose cover starts at defaultCover.
func NewForm(defaultCover string) *Form {
	return &Form{
		values: domain.NewFormValues(defaultCover),
		errors: make(map[domain.Field]string),
	}
}

// Values returns a copy of the current field values.
func (f *Form) Values() domain.FormValues {
	return f.values
}

// Value returns one field's current value.
func (f *Form) Value(field domain.Field) string {
	return f.values.Get(field)
}

// Change updates a single field. It does not validate.
func (f *Form) Change(field domain.Field, value string) {
	f.values = f.values.With(field, value)
}

// SetCover sets the cover image URL chosen in the emoji picker.
func (f *Form) SetCover(url string) {
	f.values.Cover = url
}

// Error returns the message attached to field, or "".
func (f *Form) Error(field domain.Field) string {
	return f.errors[field]
}

// SetError attaches msg to field. An empty msg clears it.
func (f *Form) SetError(field domain.Field, msg string) {
	if msg == "" {
		delete(f.errors, field)
		return
	}
	f.errors[field] = msg
}

// ClearErrors drops every field error.
func (f *Form) ClearErrors() {
	clear(f.errors)
}

// HasErrors reports whether any field currently carries an error.
func (f *Form) HasErrors() bool {
	return len(f.errors) > 0
}
