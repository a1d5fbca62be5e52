package helper

import (
	"database/sql"

	"github.com/shopspring/decimal"
)

// =======================
// STRING
// =======================

// RawStringToNull stores "" as NULL.
func RawStringToNull(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// NullStringValue reads NULL back as "".
func NullStringValue(ns sql.NullString) string {
	if !ns.Valid {
		return ""
	}
	return ns.String
}

// =======================
// DECIMAL
// =======================

// NullDecimalValue reads NULL back as zero.
func NullDecimalValue(nd decimal.NullDecimal) decimal.Decimal {
	if !nd.Valid {
		return decimal.Zero
	}
	return nd.Decimal
}
