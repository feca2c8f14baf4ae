package sqlerr

import (
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/deppfellow/sixfigure-api/internal/errs"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrCode classifies err. It accepts a converted *Error or a raw
// *pgconn.PgError anywhere in the chain; everything else is Other.
func ErrCode(err error) Code {
	var sqlErr *Error
	if errors.As(err, &sqlErr) {
		return sqlErr.Code
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return MapCode(pgErr.Code)
	}

	return Other
}

// IsUniqueViolation reports whether err was caused by a unique constraint.
func IsUniqueViolation(err error) bool {
	return ErrCode(err) == UniqueViolation
}

func ConvertPgError(src *pgconn.PgError) *Error {
	return &Error{
		Code:           MapCode(src.Code),
		Severity:       MapSeverity(src.Severity),
		DatabaseCode:   src.Code,
		Message:        src.Message,
		SchemaName:     src.SchemaName,
		TableName:      src.TableName,
		ColumnName:     src.ColumnName,
		DataTypeName:   src.DataTypeName,
		ConstraintName: src.ConstraintName,
		driverErr:      src,
	}
}

// HandleError turns a database error into the HTTPError sent to clients.
//
// Constraint violations become 400s with a <ENTITY>_<ACTION> code such as
// POST_ALREADY_EXISTS; missing rows become 404s. Anything else is a
// generic 500 so driver details never leak.
func HandleError(err error) error {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return fromPgError(ConvertPgError(pgErr))
	}

	if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
		return errs.NewNotFoundError("Resource not found", false, nil)
	}

	return errs.NewInternalServerError()
}

func fromPgError(sqlErr *Error) error {
	code := errorCode(sqlErr.TableName, sqlErr.Code)
	message := userMessage(sqlErr)

	switch sqlErr.Code {
	case ForeignKeyViolation:
		return errs.NewBadRequestError(message, false, &code, nil, nil)
	case UniqueViolation, CheckViolation:
		return errs.NewBadRequestError(message, true, &code, nil, nil)
	case NotNullViolation:
		fieldErrors := []errs.FieldError{{
			Field: strings.ToLower(sqlErr.ColumnName),
			Error: "is required",
		}}
		return errs.NewBadRequestError(message, true, &code, fieldErrors, nil)
	default:
		return errs.NewInternalServerError()
	}
}

func errorCode(tableName string, code Code) string {
	domain := strings.ToUpper(singular(tableName))
	if domain == "" {
		domain = "RECORD"
	}

	action := "ERROR"
	switch code {
	case ForeignKeyViolation:
		action = "NOT_FOUND"
	case UniqueViolation:
		action = "ALREADY_EXISTS"
	case NotNullViolation:
		action = "REQUIRED"
	case CheckViolation:
		action = "INVALID"
	}

	return domain + "_" + action
}

func userMessage(sqlErr *Error) string {
	entity := entityName(sqlErr.TableName, sqlErr.ColumnName)
	column := humanize(sqlErr.ColumnName)

	switch sqlErr.Code {
	case ForeignKeyViolation:
		return fmt.Sprintf("The referenced %s does not exist", entity)
	case UniqueViolation:
		field := humanize(uniqueColumn(sqlErr.ConstraintName))
		if field == "" {
			field = "identifier"
		}
		return fmt.Sprintf("A %s with this %s already exists", entity, field)
	case NotNullViolation:
		if column == "" {
			column = "field"
		}
		return fmt.Sprintf("The %s is required", column)
	case CheckViolation:
		if column != "" {
			return fmt.Sprintf("The %s value does not meet required conditions", column)
		}
		return "One or more values do not meet required conditions"
	default:
		return "An error occurred while processing your request"
	}
}

// entityName prefers a foreign-key column ("author_id" -> "Author") over
// the singular table name.
func entityName(tableName, columnName string) string {
	if lower := strings.ToLower(columnName); strings.HasSuffix(lower, "_id") {
		return humanize(strings.TrimSuffix(lower, "_id"))
	}
	if tableName != "" {
		return humanize(singular(tableName))
	}
	return "record"
}

// singular only strips a trailing "s".
func singular(name string) string {
	if len(name) > 1 && strings.HasSuffix(strings.ToLower(name), "s") {
		return name[:len(name)-1]
	}
	return name
}

func humanize(text string) string {
	if text == "" {
		return ""
	}
	return cases.Title(language.English).String(strings.ReplaceAll(text, "_", " "))
}

var constraintKeyPattern = regexp.MustCompile(`_([^_]+)_(?:key|ukey)$`)

// uniqueColumn reads the column out of "unique_<table>_<column>" or
// "<table>_<column>_key" constraint names.
func uniqueColumn(constraintName string) string {
	if strings.HasPrefix(constraintName, "unique_") {
		if parts := strings.Split(constraintName, "_"); len(parts) >= 3 {
			return parts[len(parts)-1]
		}
	}

	if matches := constraintKeyPattern.FindStringSubmatch(constraintName); len(matches) > 1 {
		return matches[1]
	}

	return ""
}
