package service

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"iego3d/internal/apierror"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// lookupErr maps a failed single-row lookup to NotFound or Persistence.
func lookupErr(err error, notFoundMsg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apierror.NotFound(notFoundMsg)
	}
	return apierror.Persistence("Error de base de datos", err)
}

// typedOr returns err unchanged when it already is an *apierror.Error and
// wraps it as a Persistence error otherwise.
func typedOr(err error, msg string) error {
	if apierror.KindOf(err) != apierror.KindUnknown {
		return err
	}
	return apierror.Persistence(msg, err)
}

// Clock is injected so month boundaries and default dates are testable.
type Clock func() time.Time

func hoy(now Clock) string { return now().Format(time.DateOnly) }

// parseMonto reads a form amount; blank means zero.
func parseMonto(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}

// parseEntero reads a form integer; blank means def.
func parseEntero(s string, def int) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return def, nil
	}
	return strconv.Atoi(s)
}

func optString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
