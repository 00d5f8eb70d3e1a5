package http

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"solar-agent/domain"
	"solar-agent/service"
)

type SavingsHandler struct {
	service *service.SavingsService
	logger  *zap.Logger
}

func NewSavingsHandler(service *service.SavingsService, logger *zap.Logger) *SavingsHandler {
	return &SavingsHandler{service: service, logger: logger}
}

type savingsRequest struct {
	MonthlyBill      float64         `json:"monthlyBill"`
	CostPerKwh       float64         `json:"costPerKwh"`
	BuildingInsights json.RawMessage `json:"buildingInsights"`
}

type selectConfigRequest struct {
	MonthlyBill       float64                     `json:"monthlyBill"`
	CostPerKwh        float64                     `json:"costPerKwh"`
	SolarPanelConfigs []domain.PanelConfiguration `json:"solarPanelConfigs"`
}

type evaluationResponse struct {
	Index                        int     `json:"index"`
	PanelsCount                  int     `json:"panelsCount"`
	YearlyEnergyDcKwh            float64 `json:"yearlyEnergyDcKwh"`
	InstallationCost             float64 `json:"installationCost"`
	RemainingLifetimeUtilityBill float64 `json:"remainingLifetimeUtilityBill"`
	TotalCostWithSolar           float64 `json:"totalCostWithSolar"`
	LifetimeBillWithoutSolar     float64 `json:"lifetimeBillWithoutSolar"`
	Savings                      float64 `json:"savings"`
}

type savingsResponse struct {
	ReportID                    string               `json:"reportId"`
	ImageryDate                 string               `json:"imageryDate,omitempty"`
	EstimatedYearlyEnergyDemand float64              `json:"estimatedYearlyEnergyDemand"`
	SelectedIndex               int                  `json:"selectedIndex"`
	Configurations              []evaluationResponse `json:"configurations"`
}

func newEvaluationResponse(e domain.ConfigEvaluation) evaluationResponse {
	return evaluationResponse{
		Index:                        e.Index,
		PanelsCount:                  e.Config.PanelsCount,
		YearlyEnergyDcKwh:            e.Config.YearlyEnergyDcKwh,
		InstallationCost:             roundMoney(e.Result.InstallationCost),
		RemainingLifetimeUtilityBill: roundMoney(e.Result.RemainingLifetimeUtilityBill),
		TotalCostWithSolar:           roundMoney(e.Result.TotalCostWithSolar),
		LifetimeBillWithoutSolar:     roundMoney(e.Result.LifetimeBillWithoutSolar),
		Savings:                      roundMoney(e.Result.Savings),
	}
}

// CalculateSavings evaluates every panel configuration of a building
// insights payload for the household in the request.
func (h *SavingsHandler) CalculateSavings(w http.ResponseWriter, r *http.Request) {
	var req savingsRequest
	if !decodeJSONRequest(w, r, h.logger, &req) {
		return
	}

	site, err := service.ParseBuildingInsights(req.BuildingInsights)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	report, err := h.service.Analyze(r.Context(), domain.SavingsInput{
		Household: domain.HouseholdInputs{
			MonthlyBillAmount: req.MonthlyBill,
			CostPerKwh:        req.CostPerKwh,
		},
		Site: site,
	})
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	resp := savingsResponse{
		ReportID:                    report.ReportID,
		ImageryDate:                 report.ImageryDate,
		EstimatedYearlyEnergyDemand: report.EstimatedYearlyEnergyDemand,
		SelectedIndex:               report.SelectedIndex,
		Configurations:              make([]evaluationResponse, 0, len(report.Evaluations)),
	}
	for _, e := range report.Evaluations {
		resp.Configurations = append(resp.Configurations, newEvaluationResponse(e))
	}

	h.logger.Info("Savings report computed",
		zap.String("report_id", report.ReportID),
		zap.Int("configurations", len(report.Evaluations)),
		zap.Int("selected_index", report.SelectedIndex),
	)
	writeJSON(w, h.logger, http.StatusOK, resp)
}

// SelectConfig returns the index of the configuration closest to the
// household's estimated yearly demand.
func (h *SavingsHandler) SelectConfig(w http.ResponseWriter, r *http.Request) {
	var req selectConfigRequest
	if !decodeJSONRequest(w, r, h.logger, &req) {
		return
	}

	selection, err := h.service.SelectConfig(domain.HouseholdInputs{
		MonthlyBillAmount: req.MonthlyBill,
		CostPerKwh:        req.CostPerKwh,
	}, req.SolarPanelConfigs)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, selection)
}
