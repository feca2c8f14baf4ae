// Package sqlerr classifies PostgreSQL errors and turns them into API errors.
package sqlerr

import "fmt"

// Code is a driver-independent classification of a database error.
type Code string

const (
	Other               Code = "other"
	NotNullViolation    Code = "not_null_violation"
	ForeignKeyViolation Code = "foreign_key_violation"
	UniqueViolation     Code = "unique_violation"
	CheckViolation      Code = "check_violation"
	ExclusionViolation  Code = "exclusion_violation"
	UndefinedTable      Code = "undefined_table"
	UndefinedColumn     Code = "undefined_column"
	ConnectionFailure   Code = "connection_failure"
)

// Severity mirrors the postgres error severity levels.
type Severity string

const (
	SeverityError   Severity = "ERROR"
	SeverityFatal   Severity = "FATAL"
	SeverityPanic   Severity = "PANIC"
	SeverityWarning Severity = "WARNING"
	SeverityNotice  Severity = "NOTICE"
	SeverityDebug   Severity = "DEBUG"
	SeverityInfo    Severity = "INFO"
	SeverityLog     Severity = "LOG"
)

// Error is a normalized database error.
//
// It keeps the original driver error for Unwrap so errors.As can still
// reach the *pgconn.PgError.
type Error struct {
	Code           Code
	Severity       Severity
	DatabaseCode   string
	Message        string
	SchemaName     string
	TableName      string
	ColumnName     string
	DataTypeName   string
	ConstraintName string
	driverErr      error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Severity, e.DatabaseCode, e.Message)
}

func (e *Error) Unwrap() error {
	return e.driverErr
}

// MapCode maps a SQLSTATE to a Code.
//
// See https://www.postgresql.org/docs/current/errcodes-appendix.html
func MapCode(sqlstate string) Code {
	switch sqlstate {
	case "23502":
		return NotNullViolation
	case "23503":
		return ForeignKeyViolation
	case "23505":
		return UniqueViolation
	case "23514":
		return CheckViolation
	case "23P01":
		return ExclusionViolation
	case "42P01":
		return UndefinedTable
	case "42703":
		return UndefinedColumn
	}

	// Class 08 is "Connection Exception".
	if len(sqlstate) == 5 && sqlstate[:2] == "08" {
		return ConnectionFailure
	}

	return Other
}

// MapSeverity maps the postgres severity string to a Severity.
// Unknown values are treated as errors.
func MapSeverity(severity string) Severity {
	switch Severity(severity) {
	case SeverityError, SeverityFatal, SeverityPanic, SeverityWarning,
		SeverityNotice, SeverityDebug, SeverityInfo, SeverityLog:
		return Severity(severity)
	default:
		return SeverityError
	}
}
