package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/labstock-api/internal/application/analytics"
	"github.com/jhoicas/labstock-api/internal/domain"
	"github.com/jhoicas/labstock-api/internal/domain/entity"
	"github.com/jhoicas/labstock-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake del repositorio de analytics
// ──────────────────────────────────────────────────────────────────────────────

type fakeAnalyticsRepo struct {
	components []*entity.Component
	inward     []*entity.LedgerEntry
	outward    []*entity.LedgerEntry

	componentsErr error
	movementsErr  error
}

func (r *fakeAnalyticsRepo) ListComponents(_ context.Context) ([]*entity.Component, error) {
	if r.componentsErr != nil {
		return nil, r.componentsErr
	}
	return r.components, nil
}

func (r *fakeAnalyticsRepo) ListMovements(_ context.Context, direction string, _ time.Time) ([]*entity.LedgerEntry, error) {
	if r.movementsErr != nil {
		return nil, r.movementsErr
	}
	if direction == entity.DirectionInward {
		return r.inward, nil
	}
	return r.outward, nil
}

func quietLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

func newUseCase(repo *fakeAnalyticsRepo) *analytics.DashboardUseCase {
	return analytics.NewDashboardUseCase(repo, quietLogger(), analytics.DefaultConfig())
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests totales y clasificación
// ──────────────────────────────────────────────────────────────────────────────

func TestGetSummary_TotalesDeUnidadesYValor(t *testing.T) {
	repo := &fakeAnalyticsRepo{
		components: []*entity.Component{
			{ID: "a", Name: "Resistor", CurrentQuantity: 100, UnitPrice: decimal.NewFromFloat(0.05), LowStockThreshold: 10},
			{ID: "b", Name: "MCU", CurrentQuantity: 4, UnitPrice: decimal.NewFromFloat(12.50), LowStockThreshold: 2},
		},
	}

	summary := newUseCase(repo).GetSummary(context.Background())

	assert.Equal(t, int64(104), summary.TotalUnits)
	assert.True(t, decimal.NewFromFloat(55).Equal(summary.TotalValue),
		"100×0.05 + 4×12.50 = 55")
}

// El umbral de stock bajo es estricto: cantidad == umbral no entra en la lista.
func TestGetSummary_StockBajoEstrictamenteBajoElUmbral(t *testing.T) {
	repo := &fakeAnalyticsRepo{
		components: []*entity.Component{
			{ID: "bajo", Name: "A", CurrentQuantity: 4, LowStockThreshold: 5},
			{ID: "igual", Name: "B", CurrentQuantity: 5, LowStockThreshold: 5},
			{ID: "sobre", Name: "C", CurrentQuantity: 6, LowStockThreshold: 5},
		},
	}

	summary := newUseCase(repo).GetSummary(context.Background())

	require.Len(t, summary.LowStock, 1)
	assert.Equal(t, "bajo", summary.LowStock[0].ID)
}

func TestGetSummary_StockEstancado(t *testing.T) {
	now := time.Now()
	recent := now.AddDate(0, -1, 0)
	old := now.AddDate(0, -4, 0)
	repo := &fakeAnalyticsRepo{
		components: []*entity.Component{
			{ID: "nunca", Name: "A"}, // sin salidas: siempre estancado
			{ID: "viejo", Name: "B", LastOutwardDate: &old},
			{ID: "activo", Name: "C", LastOutwardDate: &recent},
		},
	}

	summary := newUseCase(repo).GetSummary(context.Background())

	require.Len(t, summary.StaleStock, 2)
	ids := []string{summary.StaleStock[0].ID, summary.StaleStock[1].ID}
	assert.Contains(t, ids, "nunca")
	assert.Contains(t, ids, "viejo")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests histogramas
// ──────────────────────────────────────────────────────────────────────────────

func TestGetSummary_HistogramasPorDireccion(t *testing.T) {
	june := time.Date(2026, time.June, 10, 0, 0, 0, 0, time.UTC)
	august := time.Date(2026, time.August, 5, 0, 0, 0, 0, time.UTC)
	repo := &fakeAnalyticsRepo{
		inward: []*entity.LedgerEntry{
			{Direction: entity.DirectionInward, Quantity: 5, OccurredAt: june},
			{Direction: entity.DirectionInward, Quantity: 3, OccurredAt: june},
		},
		outward: []*entity.LedgerEntry{
			{Direction: entity.DirectionOutward, Quantity: 2, OccurredAt: august},
		},
	}

	summary := newUseCase(repo).GetSummary(context.Background())

	require.Len(t, summary.MonthlyInward, 1)
	assert.Equal(t, "2026-06", summary.MonthlyInward[0].Month)
	assert.Equal(t, int64(8), summary.MonthlyInward[0].Quantity)

	require.Len(t, summary.MonthlyOutward, 1)
	assert.Equal(t, "2026-08", summary.MonthlyOutward[0].Month)
	assert.Equal(t, int64(2), summary.MonthlyOutward[0].Quantity)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests tolerancia a fallos del almacenamiento
// ──────────────────────────────────────────────────────────────────────────────

// Si el snapshot del catálogo falla, el dashboard devuelve secciones vacías en
// vez de propagar el error: el resto de proyecciones sigue calculándose.
func TestGetSummary_FalloDelCatalogoDevuelveSeccionesVacias(t *testing.T) {
	july := time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC)
	repo := &fakeAnalyticsRepo{
		componentsErr: domain.ErrStoreUnavailable,
		inward: []*entity.LedgerEntry{
			{Direction: entity.DirectionInward, Quantity: 5, OccurredAt: july},
		},
	}

	summary := newUseCase(repo).GetSummary(context.Background())

	require.NotNil(t, summary)
	assert.Equal(t, int64(0), summary.TotalUnits)
	assert.True(t, summary.TotalValue.IsZero())
	assert.Empty(t, summary.LowStock)
	assert.Empty(t, summary.StaleStock)
	assert.Len(t, summary.MonthlyInward, 1,
		"los histogramas no dependen del snapshot del catálogo")
}

func TestGetSummary_FalloDeMovimientosDevuelveHistogramasVacios(t *testing.T) {
	repo := &fakeAnalyticsRepo{
		components: []*entity.Component{
			{ID: "a", Name: "A", CurrentQuantity: 7, UnitPrice: decimal.NewFromInt(2)},
		},
		movementsErr: domain.ErrStoreUnavailable,
	}

	summary := newUseCase(repo).GetSummary(context.Background())

	require.NotNil(t, summary)
	assert.Empty(t, summary.MonthlyInward)
	assert.Empty(t, summary.MonthlyOutward)
	assert.Equal(t, int64(7), summary.TotalUnits,
		"los totales no dependen de las consultas de movimientos")
}

// Las secciones vacías se serializan como listas vacías, nunca como null.
func TestGetSummary_SeccionesVaciasNoSonNil(t *testing.T) {
	summary := newUseCase(&fakeAnalyticsRepo{}).GetSummary(context.Background())

	assert.NotNil(t, summary.LowStock)
	assert.NotNil(t, summary.StaleStock)
	assert.NotNil(t, summary.MonthlyInward)
	assert.NotNil(t, summary.MonthlyOutward)
}
