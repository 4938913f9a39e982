package types

import "fmt"

// Record field keys, as used in the persisted map form.
const (
	FieldName    = "name"
	FieldPhone   = "phone"
	FieldEmail   = "email"
	FieldAddress = "address"
)

// recordFields lists the keys every persisted record must carry.
var recordFields = []string{FieldName, FieldPhone, FieldEmail, FieldAddress}

// Record is a single contact. Records are values: an update replaces the
// whole Record, fields are never changed in place inside a store.
type Record struct {
	Name    string `json:"name"`    // Primary key, unique case-insensitively.
	Phone   string `json:"phone"`   // Required.
	Email   string `json:"email"`   // Optional.
	Address string `json:"address"` // Optional free text.
}

// ToMap returns the serializable map form of the record.
func (r Record) ToMap() map[string]string {
	return map[string]string{
		FieldName:    r.Name,
		FieldPhone:   r.Phone,
		FieldEmail:   r.Email,
		FieldAddress: r.Address,
	}
}

// RecordFromMap builds a Record from its map form. Every key in recordFields
// must be present and string-valued; otherwise ErrMalformedRecord is returned.
// Extra keys are ignored.
func RecordFromMap(m map[string]any) (Record, error) {
	vals := make(map[string]string, len(recordFields))
	for _, key := range recordFields {
		raw, ok := m[key]
		if !ok {
			return Record{}, fmt.Errorf("%w: missing %q", ErrMalformedRecord, key)
		}
		s, ok := raw.(string)
		if !ok {
			return Record{}, fmt.Errorf("%w: %q is %T, not a string", ErrMalformedRecord, key, raw)
		}
		vals[key] = s
	}
	return Record{
		Name:    vals[FieldName],
		Phone:   vals[FieldPhone],
		Email:   vals[FieldEmail],
		Address: vals[FieldAddress],
	}, nil
}
