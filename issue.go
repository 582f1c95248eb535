package gltfvalidator

import "strconv"

// IssueSeverity represents the severity of a validation issue.
type IssueSeverity string

const (
	// SeverityFatal indicates the document cannot be processed at all.
	SeverityFatal IssueSeverity = "fatal"
	// SeverityError indicates a violation that makes the document invalid.
	SeverityError IssueSeverity = "error"
	// SeverityWarning indicates a potential problem that should be reviewed.
	SeverityWarning IssueSeverity = "warning"
	// SeverityInformation indicates informational feedback.
	SeverityInformation IssueSeverity = "information"
)

// IssueType identifies the kind of validation issue.
type IssueType string

const (
	// IssueTypeIndexOutOfBounds indicates a stored index equals or exceeds
	// the length of the collection it addresses.
	IssueTypeIndexOutOfBounds IssueType = "index-out-of-bounds"
	// IssueTypeInvalidEnum indicates a string field holds a value outside
	// its allowed set.
	IssueTypeInvalidEnum IssueType = "invalid-enum"
	// IssueTypeDuplicateTarget indicates two channels of one animation
	// address the same (node, property) pair.
	IssueTypeDuplicateTarget IssueType = "duplicate-target"
	// IssueTypeRequired indicates a required element is missing.
	IssueTypeRequired IssueType = "required"
	// IssueTypeStructure indicates a structural issue.
	IssueTypeStructure IssueType = "structure"
	// IssueTypeInvalid indicates content that is invalid against the
	// specification in some other way.
	IssueTypeInvalid IssueType = "invalid"
)

// Issue represents a single validation finding.
type Issue struct {
	// Severity of the issue (error, warning, information)
	Severity IssueSeverity `json:"severity"`

	// Code identifying the type of issue
	Code IssueType `json:"code"`

	// Diagnostics contains human-readable details about the issue
	Diagnostics string `json:"diagnostics,omitempty"`

	// Path is the dotted/bracketed locator of the offending field,
	// e.g. "animations[2].channels[0].sampler"
	Path string `json:"path,omitempty"`
}

// IsError returns true if this is an error or fatal issue.
func (i Issue) IsError() bool {
	return i.Severity == SeverityError || i.Severity == SeverityFatal
}

// IsWarning returns true if this is a warning.
func (i Issue) IsWarning() bool {
	return i.Severity == SeverityWarning
}

// String returns a human-readable representation of the issue.
func (i Issue) String() string {
	s := string(i.Severity) + ": " + i.Diagnostics
	if i.Path != "" {
		s += " at " + i.Path
	}
	return s
}

// IndexOutOfBounds builds the error issue for an index that equals or
// exceeds the length of the collection it addresses.
func IndexOutOfBounds(path string) Issue {
	return Issue{
		Severity:    SeverityError,
		Code:        IssueTypeIndexOutOfBounds,
		Diagnostics: "index out of bounds",
		Path:        path,
	}
}

// InvalidEnum builds the error issue for a string field holding a value
// outside its allowed set.
func InvalidEnum(path, value string) Issue {
	return Issue{
		Severity:    SeverityError,
		Code:        IssueTypeInvalidEnum,
		Diagnostics: "invalid enum value " + strconv.Quote(value),
		Path:        path,
	}
}

// DuplicateTarget builds the warning issue for two channels of one
// animation addressing the same (node, property) pair.
func DuplicateTarget(path string) Issue {
	return Issue{
		Severity:    SeverityWarning,
		Code:        IssueTypeDuplicateTarget,
		Diagnostics: "duplicate animation target",
		Path:        path,
	}
}

// IssueBuilder provides a fluent API for building issues.
type IssueBuilder struct {
	issue Issue
}

// NewIssue creates a new IssueBuilder.
func NewIssue(severity IssueSeverity, code IssueType) *IssueBuilder {
	return &IssueBuilder{
		issue: Issue{
			Severity: severity,
			Code:     code,
		},
	}
}

// Error creates an error issue.
func Error(code IssueType) *IssueBuilder {
	return NewIssue(SeverityError, code)
}

// Warning creates a warning issue.
func Warning(code IssueType) *IssueBuilder {
	return NewIssue(SeverityWarning, code)
}

// Info creates an informational issue.
func Info(code IssueType) *IssueBuilder {
	return NewIssue(SeverityInformation, code)
}

// Diagnostics sets the diagnostic message.
func (b *IssueBuilder) Diagnostics(msg string) *IssueBuilder {
	b.issue.Diagnostics = msg
	return b
}

// At sets the path expression.
func (b *IssueBuilder) At(path string) *IssueBuilder {
	b.issue.Path = path
	return b
}

// Build returns the constructed issue.
func (b *IssueBuilder) Build() Issue {
	return b.issue
}
