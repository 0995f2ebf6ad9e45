package repository

import (
	"errors"  // Error inspection
	"fmt"     // Error wrapping
	"strconv" // Numeric codes
	"strings" // Message inspection

	"organizo/internal/domain" // Error taxonomy

	"github.com/go-sql-driver/mysql" // MySQL error numbers
	"github.com/jackc/pgx/v5/pgconn" // Postgres SQLSTATE codes
	"github.com/mattn/go-sqlite3"    // SQLite result codes
	"gorm.io/gorm"                   // GORM sentinel errors
)

// Postgres SQLSTATE codes
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgNotNullViolation    = "23502"
	pgCheckViolation      = "23514"
	pgInvalidText         = "22P02"
	pgUndefinedTable      = "42P01"
)

// MySQL server error numbers
const (
	myDuplicateEntry     = 1062
	myNoSuchTable        = 1146
	myIncorrectValue     = 1366
	myTruncatedValue     = 1292
	myDataTooLong        = 1406
	myBadNull            = 1048
	myNoReferencedRow    = 1452
	myCheckConstraintHit = 3819
)

// classify turns a driver error into the domain taxonomy; op names the failed operation
func classify(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return &domain.StorageError{Kind: pgKind(pgErr.Code), Code: pgErr.Code, Message: pgErr.Message, Details: pgErr.Detail, Err: err}
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return &domain.StorageError{Kind: mysqlKind(myErr.Number), Code: strconv.Itoa(int(myErr.Number)), Message: myErr.Message, Err: err}
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		return &domain.StorageError{Kind: sqliteKind(liteErr), Code: strconv.Itoa(int(liteErr.ExtendedCode)), Message: liteErr.Error(), Err: err}
	}

	// Sentinels produced when gorm.Config.TranslateError is enabled
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return &domain.StorageError{Kind: domain.StorageConflict, Message: err.Error(), Err: err}
	case errors.Is(err, gorm.ErrForeignKeyViolated), errors.Is(err, gorm.ErrCheckConstraintViolated):
		return &domain.StorageError{Kind: domain.StorageConstraint, Message: err.Error(), Err: err}
	}
	return fmt.Errorf("%s: %w", op, err)
}

func pgKind(code string) domain.StorageKind {
	switch code {
	case pgUniqueViolation:
		return domain.StorageConflict
	case pgInvalidText:
		return domain.StorageMalformed
	case pgUndefinedTable:
		return domain.StorageMissingTable
	case pgForeignKeyViolation, pgNotNullViolation, pgCheckViolation:
		return domain.StorageConstraint
	}
	if strings.HasPrefix(code, "22") {
		return domain.StorageMalformed // Class 22: data exception
	}
	return domain.StorageOther
}

func mysqlKind(number uint16) domain.StorageKind {
	switch number {
	case myDuplicateEntry:
		return domain.StorageConflict
	case myIncorrectValue, myTruncatedValue, myDataTooLong:
		return domain.StorageMalformed
	case myNoSuchTable:
		return domain.StorageMissingTable
	case myBadNull, myNoReferencedRow, myCheckConstraintHit:
		return domain.StorageConstraint
	}
	return domain.StorageOther
}

func sqliteKind(e sqlite3.Error) domain.StorageKind {
	switch e.ExtendedCode {
	case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
		return domain.StorageConflict
	case sqlite3.ErrConstraintForeignKey, sqlite3.ErrConstraintNotNull, sqlite3.ErrConstraintCheck:
		return domain.StorageConstraint
	}
	if e.Code == sqlite3.ErrMismatch {
		return domain.StorageMalformed
	}
	if strings.Contains(e.Error(), "no such table") {
		return domain.StorageMissingTable
	}
	return domain.StorageOther
}
