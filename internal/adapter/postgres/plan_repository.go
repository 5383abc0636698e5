package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"sem-planner/internal/core/domain"
	"sem-planner/internal/core/port"
)

// PlanRepository implements port.PlanRepository using pgxpool for PostgreSQL.
type PlanRepository struct {
	pool *pgxpool.Pool
}

// NewPlanRepository returns a new repository instance.
func NewPlanRepository(pool *pgxpool.Pool) *PlanRepository {
	return &PlanRepository{pool: pool}
}

// CreatePlan stores the plan and all of its children in one transaction.
func (r *PlanRepository) CreatePlan(ctx context.Context, plan *domain.Plan) (err error) {
	members, err := plan.AdGroupMembers()
	if err != nil {
		return err
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	in := plan.Inputs
	_, err = tx.Exec(ctx, `INSERT INTO sem_plans
(id, brand_website, competitor_website, service_locations, shopping_budget, search_budget, pmax_budget,
 total_estimated_cost, expected_conversions, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`,
		plan.ID, in.BrandWebsite, in.CompetitorWebsite, nonNil(in.ServiceLocations),
		in.Budgets.Shopping, in.Budgets.Search, in.Budgets.PMax,
		plan.TotalEstimatedCost, plan.ExpectedConversions, plan.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert plan: %w", err)
	}

	// keyword ids are returned in insert order
	keywordIDs := make([]int64, len(plan.Keywords))
	for i, kw := range plan.Keywords {
		err = tx.QueryRow(ctx, `INSERT INTO keywords
(plan_id, keyword, search_volume, top_of_page_bid_low, top_of_page_bid_high, competition, intent)
VALUES ($1,$2,$3,$4,$5,$6,$7) RETURNING id`,
			plan.ID, kw.Text, kw.SearchVolume, kw.BidLow, kw.BidHigh, kw.Competition, kw.Intent).Scan(&keywordIDs[i])
		if err != nil {
			return fmt.Errorf("insert keyword %q: %w", kw.Text, err)
		}
	}

	for g, group := range plan.AdGroups {
		var groupID int64
		err = tx.QueryRow(ctx, `INSERT INTO ad_groups (plan_id, name, suggested_cpc, match_types)
VALUES ($1,$2,$3,$4) RETURNING id`,
			plan.ID, group.Name, group.SuggestedCPC, nonNil(group.MatchTypes)).Scan(&groupID)
		if err != nil {
			return fmt.Errorf("insert ad group %q: %w", group.Name, err)
		}
		for pos, idx := range members[g] {
			_, err = tx.Exec(ctx, `INSERT INTO ad_group_keywords (ad_group_id, keyword_id, position) VALUES ($1,$2,$3)`,
				groupID, keywordIDs[idx], pos)
			if err != nil {
				return fmt.Errorf("link ad group %q: %w", group.Name, err)
			}
		}
	}

	for _, theme := range plan.SearchThemes {
		_, err = tx.Exec(ctx, `INSERT INTO search_themes (plan_id, name, description, keywords, suggested_bid)
VALUES ($1,$2,$3,$4,$5)`,
			plan.ID, theme.Name, theme.Description, nonNil(theme.Keywords), theme.SuggestedBid)
		if err != nil {
			return fmt.Errorf("insert search theme %q: %w", theme.Name, err)
		}
	}

	for _, bid := range plan.ShoppingBids {
		_, err = tx.Exec(ctx, `INSERT INTO shopping_bids (plan_id, product_category, suggested_cpc, priority, expected_conversions)
VALUES ($1,$2,$3,$4,$5)`,
			plan.ID, bid.ProductCategory, bid.SuggestedCPC, bid.Priority, bid.ExpectedConversions)
		if err != nil {
			return fmt.Errorf("insert shopping bid %q: %w", bid.ProductCategory, err)
		}
	}
	return nil
}

// GetPlan returns a plan with all of its children or port.ErrPlanNotFound.
func (r *PlanRepository) GetPlan(ctx context.Context, id string) (*domain.Plan, error) {
	var p domain.Plan
	err := r.pool.QueryRow(ctx, `SELECT id, brand_website, competitor_website, service_locations,
shopping_budget, search_budget, pmax_budget, total_estimated_cost, expected_conversions, created_at
FROM sem_plans WHERE id = $1`, id).
		Scan(&p.ID, &p.Inputs.BrandWebsite, &p.Inputs.CompetitorWebsite, &p.Inputs.ServiceLocations,
			&p.Inputs.Budgets.Shopping, &p.Inputs.Budgets.Search, &p.Inputs.Budgets.PMax,
			&p.TotalEstimatedCost, &p.ExpectedConversions, &p.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, port.ErrPlanNotFound
	}
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx, `SELECT id, keyword, search_volume, top_of_page_bid_low, top_of_page_bid_high, competition, intent
FROM keywords WHERE plan_id = $1 ORDER BY id`, id)
	if err != nil {
		return nil, err
	}
	byID := make(map[int64]domain.Keyword)
	p.Keywords, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Keyword, error) {
		var (
			kwID int64
			kw   domain.Keyword
		)
		err := row.Scan(&kwID, &kw.Text, &kw.SearchVolume, &kw.BidLow, &kw.BidHigh, &kw.Competition, &kw.Intent)
		byID[kwID] = kw
		return kw, err
	})
	if err != nil {
		return nil, err
	}

	if p.AdGroups, err = r.adGroups(ctx, id, byID); err != nil {
		return nil, err
	}

	rows, err = r.pool.Query(ctx, `SELECT name, description, keywords, suggested_bid
FROM search_themes WHERE plan_id = $1 ORDER BY id`, id)
	if err != nil {
		return nil, err
	}
	p.SearchThemes, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.SearchTheme, error) {
		var t domain.SearchTheme
		err := row.Scan(&t.Name, &t.Description, &t.Keywords, &t.SuggestedBid)
		return t, err
	})
	if err != nil {
		return nil, err
	}

	rows, err = r.pool.Query(ctx, `SELECT product_category, suggested_cpc, priority, expected_conversions
FROM shopping_bids WHERE plan_id = $1 ORDER BY id`, id)
	if err != nil {
		return nil, err
	}
	p.ShoppingBids, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ShoppingBid, error) {
		var b domain.ShoppingBid
		err := row.Scan(&b.ProductCategory, &b.SuggestedCPC, &b.Priority, &b.ExpectedConversions)
		return b, err
	})
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PlanRepository) adGroups(ctx context.Context, planID string, keywords map[int64]domain.Keyword) ([]domain.AdGroup, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, suggested_cpc, match_types
FROM ad_groups WHERE plan_id = $1 ORDER BY id`, planID)
	if err != nil {
		return nil, err
	}
	groupIDs := make([]int64, 0)
	groups, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.AdGroup, error) {
		var (
			groupID int64
			g       = domain.AdGroup{Keywords: []domain.Keyword{}}
		)
		err := row.Scan(&groupID, &g.Name, &g.SuggestedCPC, &g.MatchTypes)
		groupIDs = append(groupIDs, groupID)
		return g, err
	})
	if err != nil {
		return nil, err
	}

	rows, err = r.pool.Query(ctx, `SELECT agk.ad_group_id, agk.keyword_id
FROM ad_group_keywords agk
JOIN ad_groups g ON g.id = agk.ad_group_id
WHERE g.plan_id = $1
ORDER BY agk.ad_group_id, agk.position`, planID)
	if err != nil {
		return nil, err
	}
	type link struct{ groupID, keywordID int64 }
	links, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (link, error) {
		var l link
		err := row.Scan(&l.groupID, &l.keywordID)
		return l, err
	})
	if err != nil {
		return nil, err
	}

	index := make(map[int64]int, len(groupIDs))
	for i, gid := range groupIDs {
		index[gid] = i
	}
	for _, l := range links {
		i := index[l.groupID]
		groups[i].Keywords = append(groups[i].Keywords, keywords[l.keywordID])
	}
	return groups, nil
}

// ListPlans returns plan summaries, newest first.
func (r *PlanRepository) ListPlans(ctx context.Context) ([]domain.PlanSummary, error) {
	rows, err := r.pool.Query(ctx, `SELECT p.id, p.brand_website, p.total_estimated_cost, p.expected_conversions,
       (SELECT count(*) FROM keywords k WHERE k.plan_id = p.id), p.created_at
FROM sem_plans p
ORDER BY p.created_at DESC, p.id DESC`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.PlanSummary, error) {
		var s domain.PlanSummary
		err := row.Scan(&s.ID, &s.BrandWebsite, &s.TotalEstimatedCost, &s.ExpectedConversions, &s.KeywordCount, &s.CreatedAt)
		return s, err
	})
}

// DeletePlansByPrefix removes every plan whose id starts with prefix and
// returns the removed ids. Children go with the plan through ON DELETE
// CASCADE.
func (r *PlanRepository) DeletePlansByPrefix(ctx context.Context, prefix string) ([]string, error) {
	rows, err := r.pool.Query(ctx, `DELETE FROM sem_plans WHERE left(id, length($1)) = $1 RETURNING id`, prefix)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[string])
}

// Ping checks connectivity with a trivial query.
func (r *PlanRepository) Ping(ctx context.Context) error {
	var one int
	return r.pool.QueryRow(ctx, `SELECT 1`).Scan(&one)
}

// nonNil keeps JSONB columns from storing null for empty lists.
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
