package models

// CanonicalField names a claim attribute the loader binds source columns to.
type CanonicalField string

// Canonical claim fields
const (
	FieldCPTCode       CanonicalField = "cpt_code"
	FieldDenialReason  CanonicalField = "denial_reason"
	FieldPayer         CanonicalField = "payer"
	FieldProvider      CanonicalField = "provider"
	FieldBilledAmount  CanonicalField = "billed_amount"
	FieldPaymentAmount CanonicalField = "payment_amount"
	FieldDenialDate    CanonicalField = "denial_date"
)

// CanonicalFields returns the fields in binding priority order. CPT and the
// denial reason bind first so a generic header like "code" cannot be stolen
// by a lower-priority field.
func CanonicalFields() []CanonicalField {
	return []CanonicalField{
		FieldCPTCode,
		FieldDenialReason,
		FieldPayer,
		FieldProvider,
		FieldBilledAmount,
		FieldPaymentAmount,
		FieldDenialDate,
	}
}

// ColumnBinding records how one source column resolved to a canonical field.
// Similarity is 1.0 for an exact alias hit.
type ColumnBinding struct {
	SourceHeader  string  `json:"source_header"`
	CleanedHeader string  `json:"cleaned_header"`
	Index         int     `json:"-"`
	MatchedAlias  string  `json:"matched_alias"`
	Similarity    float64 `json:"similarity"`
}

// ColumnMapping is the result of resolving a file's header row against the
// canonical schema.
type ColumnMapping struct {
	Bindings  map[CanonicalField]ColumnBinding `json:"bindings"`
	Unmapped  []string                         `json:"unmapped,omitempty"`
	HeaderRow int                              `json:"header_row"`
}

// HasField reports whether a source column was bound to the given field.
func (m *ColumnMapping) HasField(field CanonicalField) bool {
	_, ok := m.Bindings[field]
	return ok
}

// Index returns the source column index bound to the field, or -1 when the
// field is unbound.
func (m *ColumnMapping) Index(field CanonicalField) int {
	binding, ok := m.Bindings[field]
	if !ok {
		return -1
	}
	return binding.Index
}

// SourceHeader returns the original header text bound to the field.
func (m *ColumnMapping) SourceHeader(field CanonicalField) string {
	binding, ok := m.Bindings[field]
	if !ok {
		return ""
	}
	return binding.SourceHeader
}
