package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"solar-agent/domain"
	"solar-agent/repository"
)

const reportCacheKeyPrefix = "solar:report:"

type SavingsService struct {
	constants domain.EconomicConstants
	cache     repository.CacheRepository
	workers   int
	logger    *zap.Logger
}

// NewSavingsService creates a SavingsService. workers bounds the number of
// configurations evaluated in parallel; values <= 0 leave it unbounded.
func NewSavingsService(
	constants domain.EconomicConstants,
	cache repository.CacheRepository,
	workers int,
	logger *zap.Logger,
) *SavingsService {
	return &SavingsService{
		constants: constants,
		cache:     cache,
		workers:   workers,
		logger:    logger,
	}
}

// EvaluateAll evaluates every configuration of the catalog. Results are
// indexed like the catalog regardless of completion order.
func (s *SavingsService) EvaluateAll(
	ctx context.Context,
	catalog []domain.PanelConfiguration,
	site domain.SiteParameters,
	household domain.HouseholdInputs,
) ([]domain.ConfigEvaluation, error) {
	if err := validateCatalog(catalog); err != nil {
		return nil, err
	}
	if err := validateSiteLimits(site); err != nil {
		return nil, err
	}

	results := make([]domain.ConfigEvaluation, len(catalog))

	g, gCtx := errgroup.WithContext(ctx)
	if s.workers > 0 {
		g.SetLimit(s.workers)
	}

	for i, config := range catalog {
		i, config := i, config
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			result, err := Evaluate(config, site, household, s.constants)
			if err != nil {
				return fmt.Errorf("config %d: %w", i, err)
			}
			results[i] = domain.ConfigEvaluation{
				Index:  i,
				Config: config,
				Result: result,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// SelectConfig picks the configuration that best matches the household's
// estimated yearly demand.
func (s *SavingsService) SelectConfig(
	household domain.HouseholdInputs,
	catalog []domain.PanelConfiguration,
) (domain.Selection, error) {
	if err := validateHousehold(household); err != nil {
		return domain.Selection{}, err
	}
	if err := validateCatalog(catalog); err != nil {
		return domain.Selection{}, err
	}

	demand, err := EstimatedYearlyEnergyDemand(household)
	if err != nil {
		return domain.Selection{}, err
	}

	index, err := SelectMostSuitableConfig(demand, catalog)
	if err != nil {
		return domain.Selection{}, err
	}

	return domain.Selection{
		SelectedIndex:               index,
		EstimatedYearlyEnergyDemand: demand,
	}, nil
}

// Analyze evaluates the whole catalog of a site and selects the configuration
// that best matches the household's demand.
func (s *SavingsService) Analyze(
	ctx context.Context,
	input domain.SavingsInput,
) (domain.SavingsReport, error) {

	// Validar entrada
	if err := validateHousehold(input.Household); err != nil {
		return domain.SavingsReport{}, err
	}
	if err := validateSiteLimits(input.Site.Site); err != nil {
		return domain.SavingsReport{}, err
	}
	if err := validateCatalog(input.Site.Catalog); err != nil {
		return domain.SavingsReport{}, err
	}

	key, keyErr := s.cacheKey(input)
	if keyErr != nil {
		s.logger.Warn("Failed to derive report cache key", zap.Error(keyErr))
	}
	if report, ok := s.cachedReport(ctx, key); ok {
		return report, nil
	}

	evaluations, err := s.EvaluateAll(ctx, input.Site.Catalog, input.Site.Site, input.Household)
	if err != nil {
		return domain.SavingsReport{}, err
	}

	selection, err := s.SelectConfig(input.Household, input.Site.Catalog)
	if err != nil {
		return domain.SavingsReport{}, err
	}

	report := domain.SavingsReport{
		ReportID:                    uuid.NewString(),
		ImageryDate:                 input.Site.ImageryDate.Format(),
		EstimatedYearlyEnergyDemand: selection.EstimatedYearlyEnergyDemand,
		SelectedIndex:               selection.SelectedIndex,
		Selected:                    evaluations[selection.SelectedIndex],
		Evaluations:                 evaluations,
	}

	// Guardar el resultado (no crítico si falla)
	s.storeReport(ctx, key, report)

	return report, nil
}

// cacheKey hashes the full input together with the model constants so a
// report is never served for differing inputs.
func (s *SavingsService) cacheKey(input domain.SavingsInput) (string, error) {
	payload, err := json.Marshal(struct {
		Input     domain.SavingsInput      `json:"input"`
		Constants domain.EconomicConstants `json:"constants"`
	}{input, s.constants})
	if err != nil {
		return "", err
	}
	return reportCacheKeyPrefix + strconv.FormatUint(xxhash.Sum64(payload), 16), nil
}

func (s *SavingsService) cachedReport(ctx context.Context, key string) (domain.SavingsReport, bool) {
	if s.cache == nil || key == "" {
		return domain.SavingsReport{}, false
	}
	raw, ok := s.cache.Get(ctx, key)
	if !ok {
		return domain.SavingsReport{}, false
	}
	var report domain.SavingsReport
	if err := json.Unmarshal([]byte(raw), &report); err != nil {
		s.logger.Warn("Discarding unreadable cached report", zap.String("key", key), zap.Error(err))
		return domain.SavingsReport{}, false
	}
	s.logger.Debug("Serving cached report", zap.String("key", key), zap.String("report_id", report.ReportID))
	return report, true
}

func (s *SavingsService) storeReport(ctx context.Context, key string, report domain.SavingsReport) {
	if s.cache == nil || key == "" {
		return
	}
	raw, err := json.Marshal(report)
	if err != nil {
		s.logger.Warn("Failed to encode report for cache", zap.Error(err))
		return
	}
	if err := s.cache.Set(ctx, key, string(raw)); err != nil {
		s.logger.Warn("Failed to cache savings report", zap.String("key", key), zap.Error(err))
	}
}
