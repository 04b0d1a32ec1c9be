package types

type ElementKind string

const (
	ElementKindField              ElementKind = "field"
	ElementKindEnumConstant       ElementKind = "enum_constant"
	ElementKindLocalVariable      ElementKind = "local_variable"
	ElementKindParameter          ElementKind = "parameter"
	ElementKindResourceVariable   ElementKind = "resource_variable"
	ElementKindExceptionParameter ElementKind = "exception_parameter"
	ElementKindMethod             ElementKind = "method"
	ElementKindConstructor        ElementKind = "constructor"
	ElementKindClass              ElementKind = "class"
	ElementKindInterface          ElementKind = "interface"
	ElementKindEnum               ElementKind = "enum"
	ElementKindPackage            ElementKind = "package"
)

// IsVariable reports whether the element can carry a constant value.
// An unset kind is treated as a field.
func (k ElementKind) IsVariable() bool {
	switch k {
	case "", ElementKindField, ElementKindEnumConstant, ElementKindLocalVariable,
		ElementKindParameter, ElementKindResourceVariable, ElementKindExceptionParameter:
		return true
	default:
		return false
	}
}

const (
	LevelEmergency = "EMERGENCY"
	LevelAlert     = "ALERT"
	LevelSevere    = "SEVERE"
	LevelInfo      = "INFO"
)

type Severity string

const (
	SeverityDebug   Severity = "debug"
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

type DiagnosticKind string

const (
	DiagnosticKindNone          DiagnosticKind = ""
	DiagnosticKindConfiguration DiagnosticKind = "configuration"
	DiagnosticKindValidation    DiagnosticKind = "validation"
	DiagnosticKindDuplicateID   DiagnosticKind = "duplicate-id"
	DiagnosticKindIO            DiagnosticKind = "io"
	DiagnosticKindOverwrite     DiagnosticKind = "overwrite"
)
