package httpadapter

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"sem-planner/internal/core/domain"
)

// listSep joins list values inside one CSV cell.
const listSep = "; "

type exporter struct {
	filePrefix string
	header     []string
	rows       func(p *domain.Plan) [][]string
}

var exporters = map[string]exporter{
	"keywords": {
		filePrefix: "keywords",
		header:     []string{"keyword", "searchVolume", "topOfPageBidLow", "topOfPageBidHigh", "competition", "intent"},
		rows: func(p *domain.Plan) [][]string {
			out := make([][]string, 0, len(p.Keywords))
			for _, kw := range p.Keywords {
				out = append(out, []string{
					kw.Text, strconv.Itoa(kw.SearchVolume), num(kw.BidLow), num(kw.BidHigh),
					string(kw.Competition), string(kw.Intent),
				})
			}
			return out
		},
	},
	"ad-groups": {
		filePrefix: "ad-groups",
		header:     []string{"adGroupName", "keyword", "searchVolume", "suggestedCPC", "matchTypes", "competition", "intent"},
		rows: func(p *domain.Plan) [][]string {
			var out [][]string
			for _, g := range p.AdGroups {
				for _, kw := range g.Keywords {
					out = append(out, []string{
						g.Name, kw.Text, strconv.Itoa(kw.SearchVolume), num(g.SuggestedCPC),
						strings.Join(g.MatchTypes, listSep), string(kw.Competition), string(kw.Intent),
					})
				}
			}
			return out
		},
	},
	"search-themes": {
		filePrefix: "search-themes",
		header:     []string{"name", "description", "keywords", "suggestedBid"},
		rows: func(p *domain.Plan) [][]string {
			out := make([][]string, 0, len(p.SearchThemes))
			for _, t := range p.SearchThemes {
				out = append(out, []string{t.Name, t.Description, strings.Join(t.Keywords, listSep), num(t.SuggestedBid)})
			}
			return out
		},
	},
	"shopping-bids": {
		filePrefix: "shopping-bids",
		header:     []string{"productCategory", "suggestedCPC", "priority", "expectedConversions"},
		rows: func(p *domain.Plan) [][]string {
			out := make([][]string, 0, len(p.ShoppingBids))
			for _, b := range p.ShoppingBids {
				out = append(out, []string{b.ProductCategory, num(b.SuggestedCPC), string(b.Priority), num(b.ExpectedConversions)})
			}
			return out
		},
	},
	"report": {
		filePrefix: "sem-plan-report",
		header: []string{
			"planId", "brandWebsite", "competitorWebsite", "serviceLocations", "shoppingBudget", "searchBudget",
			"pmaxBudget", "totalBudget", "expectedConversions", "totalKeywords", "adGroups", "searchThemes", "createdAt",
		},
		rows: func(p *domain.Plan) [][]string {
			in := p.Inputs
			return [][]string{{
				p.ID, in.BrandWebsite, in.CompetitorWebsite, strings.Join(in.ServiceLocations, listSep),
				num(in.Budgets.Shopping), num(in.Budgets.Search), num(in.Budgets.PMax),
				num(p.TotalEstimatedCost), num(p.ExpectedConversions),
				strconv.Itoa(len(p.Keywords)), strconv.Itoa(len(p.AdGroups)), strconv.Itoa(len(p.SearchThemes)),
				p.CreatedAt.UTC().Format(time.RFC3339),
			}}
		},
	},
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// handleExportPlan streams one dataset of a plan as CSV.
func (h *Handler) handleExportPlan(w http.ResponseWriter, r *http.Request) {
	dataset := chi.URLParam(r, "dataset")
	exp, ok := exporters[dataset]
	if !ok {
		h.writeError(w, http.StatusNotFound, codeNotFound, fmt.Sprintf("unknown export dataset %q", dataset))
		return
	}

	plan, err := h.svc.GetPlan(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, "export plan", err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s-%s.csv"`, exp.filePrefix, plan.ID))
	cw := csv.NewWriter(w)
	if err = cw.Write(exp.header); err == nil {
		err = cw.WriteAll(exp.rows(plan))
	}
	if err != nil {
		h.logger.ErrorContext(r.Context(), "write csv error", slog.String("plan_id", plan.ID), slog.Any("error", err))
	}
}
