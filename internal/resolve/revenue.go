package resolve

import (
	"context"

	"missioncontrol/internal/models"
)

// localRevenue accepts both key spellings seen in state/revenue.json over
// its history.
type localRevenue struct {
	CurrentMonth *float64                `json:"current_month"`
	CurrentMRR   *float64                `json:"currentMRR"`
	MonthlyBurn  *float64                `json:"monthly_burn"`
	MonthlyBurn2 *float64                `json:"monthlyBurn"`
	Net          *float64                `json:"net"`
	Currency     string                  `json:"currency"`
	Note         string                  `json:"note"`
	Sources      []models.RevenueSource  `json:"sources"`
	History      []models.RevenueHistory `json:"history"`
}

// Revenue returns the revenue snapshot. The zero shape has all numbers at 0
// and empty (never null) sources and history.
func (r *Resolver) Revenue(ctx context.Context) models.RevenueData {
	var raw localRevenue
	if r.ws.ReadJSON("state/revenue.json", &raw) {
		return models.RevenueData{
			CurrentMRR:  pickFloat(raw.CurrentMonth, raw.CurrentMRR),
			MonthlyBurn: pickFloat(raw.MonthlyBurn, raw.MonthlyBurn2),
			Net:         pickFloat(raw.Net),
			Currency:    raw.Currency,
			Note:        raw.Note,
			Sources:     orEmptySources(raw.Sources),
			History:     orEmptyHistory(raw.History),
		}
	}

	if r.remote != nil {
		if rev, err := r.remote.GetRevenue(ctx); err == nil && rev != nil {
			return models.RevenueData{
				CurrentMRR:  rev.CurrentMRR,
				MonthlyBurn: rev.MonthlyBurn,
				Net:         rev.Net,
				Currency:    rev.Currency,
				Note:        rev.Note,
				Sources:     orEmptySources(rev.Sources),
				History:     []models.RevenueHistory{},
			}
		}
	}

	return models.RevenueData{
		Sources: []models.RevenueSource{},
		History: []models.RevenueHistory{},
	}
}

func pickFloat(vals ...*float64) float64 {
	for _, v := range vals {
		if v != nil {
			return *v
		}
	}
	return 0
}

func orEmptySources(s []models.RevenueSource) []models.RevenueSource {
	if s == nil {
		return []models.RevenueSource{}
	}
	return s
}

func orEmptyHistory(h []models.RevenueHistory) []models.RevenueHistory {
	if h == nil {
		return []models.RevenueHistory{}
	}
	return h
}
