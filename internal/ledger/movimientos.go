// Package ledger holds the pure arithmetic behind reseller balances and the
// monthly accounts: no database access, only rows in and figures out.
package ledger

import (
	"cmp"
	"fmt"
	"slices"

	"iego3d/internal/model"

	"github.com/shopspring/decimal"
)

// Movimiento is one row of a reseller statement.
//
// Total carries the display sign: deliveries are shown negative and payments
// positive, the opposite of their effect on SaldoPosterior.
type Movimiento struct {
	EntregaID      *int64          `json:"entrega_id"`
	Fecha          string          `json:"fecha"`
	Descripcion    string          `json:"descripcion"`
	Total          decimal.Decimal `json:"total"`
	SaldoPosterior decimal.Decimal `json:"saldo_posterior"`
}

type evento struct {
	id          int64
	esPago      bool
	fecha       string
	descripcion string
	monto       decimal.Decimal // effect on the balance
}

// Movimientos merges a reseller's deliveries and payments into a statement
// with a running balance that starts at saldoInicial. Events are ordered by
// date, deliveries before payments on the same date, then by id.
func Movimientos(saldoInicial decimal.Decimal, entregas []model.Entrega, pagos []model.Pago) []Movimiento {
	eventos := make([]evento, 0, len(entregas)+len(pagos))
	for _, e := range entregas {
		eventos = append(eventos, evento{
			id:          e.ID,
			fecha:       e.Fecha,
			descripcion: fmt.Sprintf("Entrega #%d · %d piezas", e.ID, e.CantidadTotal),
			monto:       e.Total,
		})
	}
	for _, p := range pagos {
		desc := p.Descripcion
		if desc == "" {
			desc = fmt.Sprintf("Pago recibido #%d", p.ID)
		}
		eventos = append(eventos, evento{
			id:          p.ID,
			esPago:      true,
			fecha:       p.Fecha,
			descripcion: desc,
			monto:       p.Monto.Abs().Neg(),
		})
	}

	slices.SortStableFunc(eventos, func(a, b evento) int {
		if c := cmp.Compare(a.fecha, b.fecha); c != 0 {
			return c
		}
		if a.esPago != b.esPago {
			if a.esPago {
				return 1
			}
			return -1
		}
		return cmp.Compare(a.id, b.id)
	})

	saldo := saldoInicial
	movs := make([]Movimiento, 0, len(eventos))
	for _, ev := range eventos {
		saldo = saldo.Add(ev.monto)
		m := Movimiento{
			Fecha:          ev.fecha,
			Descripcion:    ev.descripcion,
			Total:          ev.monto.Neg(),
			SaldoPosterior: saldo,
		}
		if !ev.esPago {
			id := ev.id
			m.EntregaID = &id
		}
		movs = append(movs, m)
	}
	return movs
}

// SaldoActual is the reseller balance: positive means the reseller owes.
func SaldoActual(saldoInicial, sumaEntregas, sumaPagos decimal.Decimal) decimal.Decimal {
	return saldoInicial.Add(sumaEntregas).Sub(sumaPagos)
}
