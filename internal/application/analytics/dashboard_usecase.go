// Package analytics contiene el motor de proyecciones de solo lectura del
// dashboard: stock bajo, stock estancado, histogramas mensuales y totales.
package analytics

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/labstock-api/internal/application/dto"
	"github.com/jhoicas/labstock-api/internal/domain/entity"
	domaininv "github.com/jhoicas/labstock-api/internal/domain/inventory"
	"github.com/jhoicas/labstock-api/internal/domain/repository"
	"github.com/jhoicas/labstock-api/pkg/logger"
)

// Config ventanas de las proyecciones del dashboard.
type Config struct {
	StaleMonths   int // meses calendario sin salidas para considerar stock estancado
	HistogramDays int // ventana hacia atrás de los histogramas mensuales
}

// DefaultConfig ventanas del sistema de referencia: 3 meses y 365 días.
func DefaultConfig() Config {
	return Config{StaleMonths: 3, HistogramDays: 365}
}

// DashboardUseCase recalcula las proyecciones bajo demanda a partir del
// snapshot del catálogo y del ledger. Las lecturas no son transaccionales
// con movimientos en vuelo: consistencia de snapshot es suficiente.
//
// Si una consulta al almacenamiento falla, la sección correspondiente se
// devuelve vacía y el fallo se registra en el log; el dashboard muestra
// "sin datos" en vez de propagar el error (comportamiento del sistema de
// referencia, mantenido a propósito).
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	log           *logger.Logger
	cfg           Config
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository, log *logger.Logger, cfg Config) *DashboardUseCase {
	if cfg.StaleMonths <= 0 {
		cfg.StaleMonths = DefaultConfig().StaleMonths
	}
	if cfg.HistogramDays <= 0 {
		cfg.HistogramDays = DefaultConfig().HistogramDays
	}
	return &DashboardUseCase{analyticsRepo: analyticsRepo, log: log, cfg: cfg}
}

// GetSummary construye el DashboardSummaryDTO.
//
// Tres llamadas en paralelo:
//  1. ListComponents              → stock bajo, stock estancado, totales
//  2. ListMovements(inward, 365d) → histograma mensual de entradas
//  3. ListMovements(outward, 365d)→ histograma mensual de salidas
func (uc *DashboardUseCase) GetSummary(ctx context.Context) *dto.DashboardSummaryDTO {
	now := time.Now()
	windowStart := now.AddDate(0, 0, -uc.cfg.HistogramDays)

	type componentsResult struct {
		components []*entity.Component
		err        error
	}
	type movementsResult struct {
		entries []*entity.LedgerEntry
		err     error
	}

	compCh := make(chan componentsResult, 1)
	inCh := make(chan movementsResult, 1)
	outCh := make(chan movementsResult, 1)

	go func() {
		components, err := uc.analyticsRepo.ListComponents(ctx)
		compCh <- componentsResult{components, err}
	}()
	go func() {
		entries, err := uc.analyticsRepo.ListMovements(ctx, entity.DirectionInward, windowStart)
		inCh <- movementsResult{entries, err}
	}()
	go func() {
		entries, err := uc.analyticsRepo.ListMovements(ctx, entity.DirectionOutward, windowStart)
		outCh <- movementsResult{entries, err}
	}()

	comp := <-compCh
	inward := <-inCh
	outward := <-outCh

	if comp.err != nil {
		uc.log.Warn().Err(comp.err).Msg("dashboard: snapshot del catálogo no disponible")
		comp.components = nil
	}
	if inward.err != nil {
		uc.log.Warn().Err(inward.err).Msg("dashboard: movimientos de entrada no disponibles")
		inward.entries = nil
	}
	if outward.err != nil {
		uc.log.Warn().Err(outward.err).Msg("dashboard: movimientos de salida no disponibles")
		outward.entries = nil
	}

	summary := &dto.DashboardSummaryDTO{
		TotalValue:     decimal.Zero,
		LowStock:       []dto.ComponentAlertDTO{},
		StaleStock:     []dto.StaleComponentDTO{},
		MonthlyInward:  toBucketDTOs(domaininv.MonthlyHistogram(inward.entries)),
		MonthlyOutward: toBucketDTOs(domaininv.MonthlyHistogram(outward.entries)),
	}

	cutoff := domaininv.StaleCutoff(now, uc.cfg.StaleMonths)
	for _, c := range comp.components {
		summary.TotalUnits += c.CurrentQuantity
		summary.TotalValue = summary.TotalValue.Add(c.UnitPrice.Mul(decimal.NewFromInt(c.CurrentQuantity)))

		if domaininv.IsLowStock(c) {
			summary.LowStock = append(summary.LowStock, dto.ComponentAlertDTO{
				ID:                c.ID,
				Name:              c.Name,
				CurrentQuantity:   c.CurrentQuantity,
				LowStockThreshold: c.LowStockThreshold,
			})
		}
		if domaininv.IsStale(c.LastOutwardDate, cutoff) {
			summary.StaleStock = append(summary.StaleStock, dto.StaleComponentDTO{
				ID:              c.ID,
				Name:            c.Name,
				CurrentQuantity: c.CurrentQuantity,
				LastOutwardDate: c.LastOutwardDate,
			})
		}
	}
	return summary
}

func toBucketDTOs(buckets []domaininv.MonthlyBucket) []dto.MonthlyBucketDTO {
	out := make([]dto.MonthlyBucketDTO, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, dto.MonthlyBucketDTO{Month: b.Month, Quantity: b.Quantity})
	}
	return out
}
