// Package inventory contiene los servicios de dominio puros del motor de
// stock: replay del ledger, histograma mensual y reglas de clasificación.
package inventory

import (
	"fmt"
	"sort"
	"time"

	"github.com/jhoicas/labstock-api/internal/domain/entity"
)

// MonthlyBucket es un bucket del histograma mensual de movimientos.
type MonthlyBucket struct {
	Month    string // clave de mes calendario "YYYY-MM"
	Quantity int64
}

const maxHistogramBuckets = 12

// MonthlyHistogram agrupa las entradas por mes calendario (clave YYYY-MM de
// OccurredAt) sumando cantidades. Los buckets se devuelven ordenados
// ascendentemente por mes y truncados a los 12 más recientes. Los meses sin
// movimientos no producen bucket (histograma disperso, sin rellenar con ceros).
func MonthlyHistogram(entries []*entity.LedgerEntry) []MonthlyBucket {
	byMonth := make(map[string]int64)
	for _, e := range entries {
		key := e.OccurredAt.Format("2006-01")
		byMonth[key] += e.Quantity
	}

	buckets := make([]MonthlyBucket, 0, len(byMonth))
	for month, qty := range byMonth {
		buckets = append(buckets, MonthlyBucket{Month: month, Quantity: qty})
	}
	sort.Slice(buckets, func(i, j int) bool { return buckets[i].Month < buckets[j].Month })

	if len(buckets) > maxHistogramBuckets {
		buckets = buckets[len(buckets)-maxHistogramBuckets:]
	}
	return buckets
}

// ReplayBalance reconstruye la cantidad actual a partir de la cantidad inicial
// y las entradas del ledger en orden de OccurredAt. Devuelve error si algún
// prefijo de la secuencia deja el balance negativo (ledger corrupto) o si
// aparece una dirección desconocida.
func ReplayBalance(initial int64, entries []*entity.LedgerEntry) (int64, error) {
	ordered := make([]*entity.LedgerEntry, len(entries))
	copy(ordered, entries)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].OccurredAt.Before(ordered[j].OccurredAt)
	})

	balance := initial
	for _, e := range ordered {
		switch e.Direction {
		case entity.DirectionInward:
			balance += e.Quantity
		case entity.DirectionOutward:
			balance -= e.Quantity
		default:
			return 0, fmt.Errorf("replay: dirección desconocida %q en entrada %s", e.Direction, e.ID)
		}
		if balance < 0 {
			return 0, fmt.Errorf("replay: balance negativo (%d) tras la entrada %s", balance, e.ID)
		}
	}
	return balance, nil
}

// IsLowStock clasifica un componente como stock bajo (estrictamente por debajo
// del umbral; la igualdad no clasifica).
func IsLowStock(c *entity.Component) bool {
	return c.CurrentQuantity < c.LowStockThreshold
}

// StaleCutoff devuelve la fecha de corte de la ventana de obsolescencia:
// `months` meses calendario hacia atrás desde el momento de evaluación.
func StaleCutoff(now time.Time, months int) time.Time {
	return now.AddDate(0, -months, 0)
}

// IsStale clasifica un componente como stock estancado: nunca ha tenido una
// salida (lastOutward nil) o su última salida es anterior al corte.
func IsStale(lastOutward *time.Time, cutoff time.Time) bool {
	if lastOutward == nil {
		return true
	}
	return lastOutward.Before(cutoff)
}
