package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"sem-planner/internal/core/domain"
	"sem-planner/internal/core/port"
)

// PlanRepository implements port.PlanRepository on SQLite. List columns
// are stored as JSON text.
type PlanRepository struct {
	db *sql.DB
}

// NewPlanRepository returns a repository over an open, migrated handle.
func NewPlanRepository(db *sql.DB) *PlanRepository {
	return &PlanRepository{db: db}
}

// CreatePlan stores the plan and all of its children in one transaction.
func (r *PlanRepository) CreatePlan(ctx context.Context, plan *domain.Plan) (err error) {
	members, err := plan.AdGroupMembers()
	if err != nil {
		return err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	in := plan.Inputs
	locations, err := encodeList(in.ServiceLocations)
	if err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx, `INSERT INTO sem_plans
(id, brand_website, competitor_website, service_locations, shopping_budget, search_budget, pmax_budget,
 total_estimated_cost, expected_conversions, created_at)
VALUES (?,?,?,?,?,?,?,?,?,?)`,
		plan.ID, in.BrandWebsite, in.CompetitorWebsite, locations,
		in.Budgets.Shopping, in.Budgets.Search, in.Budgets.PMax,
		plan.TotalEstimatedCost, plan.ExpectedConversions, plan.CreatedAt.UTC())
	if err != nil {
		return fmt.Errorf("insert plan: %w", err)
	}

	keywordIDs := make([]int64, len(plan.Keywords))
	for i, kw := range plan.Keywords {
		err = tx.QueryRowContext(ctx, `INSERT INTO keywords
(plan_id, keyword, search_volume, top_of_page_bid_low, top_of_page_bid_high, competition, intent)
VALUES (?,?,?,?,?,?,?) RETURNING id`,
			plan.ID, kw.Text, kw.SearchVolume, kw.BidLow, kw.BidHigh, string(kw.Competition), string(kw.Intent)).Scan(&keywordIDs[i])
		if err != nil {
			return fmt.Errorf("insert keyword %q: %w", kw.Text, err)
		}
	}

	for g, group := range plan.AdGroups {
		var matchTypes string
		if matchTypes, err = encodeList(group.MatchTypes); err != nil {
			return err
		}
		var groupID int64
		err = tx.QueryRowContext(ctx, `INSERT INTO ad_groups (plan_id, name, suggested_cpc, match_types)
VALUES (?,?,?,?) RETURNING id`,
			plan.ID, group.Name, group.SuggestedCPC, matchTypes).Scan(&groupID)
		if err != nil {
			return fmt.Errorf("insert ad group %q: %w", group.Name, err)
		}
		for pos, idx := range members[g] {
			_, err = tx.ExecContext(ctx, `INSERT INTO ad_group_keywords (ad_group_id, keyword_id, position) VALUES (?,?,?)`,
				groupID, keywordIDs[idx], pos)
			if err != nil {
				return fmt.Errorf("link ad group %q: %w", group.Name, err)
			}
		}
	}

	for _, theme := range plan.SearchThemes {
		var texts string
		if texts, err = encodeList(theme.Keywords); err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx, `INSERT INTO search_themes (plan_id, name, description, keywords, suggested_bid)
VALUES (?,?,?,?,?)`,
			plan.ID, theme.Name, theme.Description, texts, theme.SuggestedBid)
		if err != nil {
			return fmt.Errorf("insert search theme %q: %w", theme.Name, err)
		}
	}

	for _, bid := range plan.ShoppingBids {
		_, err = tx.ExecContext(ctx, `INSERT INTO shopping_bids (plan_id, product_category, suggested_cpc, priority, expected_conversions)
VALUES (?,?,?,?,?)`,
			plan.ID, bid.ProductCategory, bid.SuggestedCPC, string(bid.Priority), bid.ExpectedConversions)
		if err != nil {
			return fmt.Errorf("insert shopping bid %q: %w", bid.ProductCategory, err)
		}
	}
	return nil
}

// GetPlan returns a plan with all of its children or port.ErrPlanNotFound.
func (r *PlanRepository) GetPlan(ctx context.Context, id string) (*domain.Plan, error) {
	var (
		p         domain.Plan
		locations string
	)
	err := r.db.QueryRowContext(ctx, `SELECT id, brand_website, competitor_website, service_locations,
shopping_budget, search_budget, pmax_budget, total_estimated_cost, expected_conversions, created_at
FROM sem_plans WHERE id = ?`, id).
		Scan(&p.ID, &p.Inputs.BrandWebsite, &p.Inputs.CompetitorWebsite, &locations,
			&p.Inputs.Budgets.Shopping, &p.Inputs.Budgets.Search, &p.Inputs.Budgets.PMax,
			&p.TotalEstimatedCost, &p.ExpectedConversions, &p.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, port.ErrPlanNotFound
	}
	if err != nil {
		return nil, err
	}
	if p.Inputs.ServiceLocations, err = decodeList(locations); err != nil {
		return nil, err
	}
	// empty collections stay [] in JSON, like a freshly created plan
	p.Keywords = []domain.Keyword{}
	p.SearchThemes = []domain.SearchTheme{}
	p.ShoppingBids = []domain.ShoppingBid{}

	byID := make(map[int64]domain.Keyword)
	err = r.each(ctx, `SELECT id, keyword, search_volume, top_of_page_bid_low, top_of_page_bid_high, competition, intent
FROM keywords WHERE plan_id = ? ORDER BY id`, id, func(rows *sql.Rows) error {
		var (
			kwID int64
			kw   domain.Keyword
		)
		if err := rows.Scan(&kwID, &kw.Text, &kw.SearchVolume, &kw.BidLow, &kw.BidHigh, &kw.Competition, &kw.Intent); err != nil {
			return err
		}
		byID[kwID] = kw
		p.Keywords = append(p.Keywords, kw)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if p.AdGroups, err = r.adGroups(ctx, id, byID); err != nil {
		return nil, err
	}

	err = r.each(ctx, `SELECT name, description, keywords, suggested_bid
FROM search_themes WHERE plan_id = ? ORDER BY id`, id, func(rows *sql.Rows) error {
		var (
			t     domain.SearchTheme
			texts string
		)
		if err := rows.Scan(&t.Name, &t.Description, &texts, &t.SuggestedBid); err != nil {
			return err
		}
		var err error
		if t.Keywords, err = decodeList(texts); err != nil {
			return err
		}
		p.SearchThemes = append(p.SearchThemes, t)
		return nil
	})
	if err != nil {
		return nil, err
	}

	err = r.each(ctx, `SELECT product_category, suggested_cpc, priority, expected_conversions
FROM shopping_bids WHERE plan_id = ? ORDER BY id`, id, func(rows *sql.Rows) error {
		var b domain.ShoppingBid
		if err := rows.Scan(&b.ProductCategory, &b.SuggestedCPC, &b.Priority, &b.ExpectedConversions); err != nil {
			return err
		}
		p.ShoppingBids = append(p.ShoppingBids, b)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PlanRepository) adGroups(ctx context.Context, planID string, keywords map[int64]domain.Keyword) ([]domain.AdGroup, error) {
	groups := []domain.AdGroup{}
	index := make(map[int64]int)
	err := r.each(ctx, `SELECT id, name, suggested_cpc, match_types
FROM ad_groups WHERE plan_id = ? ORDER BY id`, planID, func(rows *sql.Rows) error {
		var (
			groupID    int64
			g          = domain.AdGroup{Keywords: []domain.Keyword{}}
			matchTypes string
		)
		if err := rows.Scan(&groupID, &g.Name, &g.SuggestedCPC, &matchTypes); err != nil {
			return err
		}
		var err error
		if g.MatchTypes, err = decodeList(matchTypes); err != nil {
			return err
		}
		index[groupID] = len(groups)
		groups = append(groups, g)
		return nil
	})
	if err != nil {
		return nil, err
	}

	err = r.each(ctx, `SELECT agk.ad_group_id, agk.keyword_id
FROM ad_group_keywords agk
JOIN ad_groups g ON g.id = agk.ad_group_id
WHERE g.plan_id = ?
ORDER BY agk.ad_group_id, agk.position`, planID, func(rows *sql.Rows) error {
		var groupID, keywordID int64
		if err := rows.Scan(&groupID, &keywordID); err != nil {
			return err
		}
		i := index[groupID]
		groups[i].Keywords = append(groups[i].Keywords, keywords[keywordID])
		return nil
	})
	if err != nil {
		return nil, err
	}
	return groups, nil
}

// ListPlans returns plan summaries, newest first.
func (r *PlanRepository) ListPlans(ctx context.Context) ([]domain.PlanSummary, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT p.id, p.brand_website, p.total_estimated_cost, p.expected_conversions,
       (SELECT count(*) FROM keywords k WHERE k.plan_id = p.id), p.created_at
FROM sem_plans p
ORDER BY p.created_at DESC, p.id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := make([]domain.PlanSummary, 0)
	for rows.Next() {
		var s domain.PlanSummary
		if err = rows.Scan(&s.ID, &s.BrandWebsite, &s.TotalEstimatedCost, &s.ExpectedConversions, &s.KeywordCount, &s.CreatedAt); err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

// DeletePlansByPrefix removes every plan whose id starts with prefix and
// returns the removed ids. Children go with the plan through ON DELETE
// CASCADE.
func (r *PlanRepository) DeletePlansByPrefix(ctx context.Context, prefix string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `DELETE FROM sem_plans WHERE substr(id, 1, length(?1)) = ?1 RETURNING id`, prefix)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err = rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// Ping checks connectivity with a trivial query.
func (r *PlanRepository) Ping(ctx context.Context) error {
	var one int
	return r.db.QueryRowContext(ctx, `SELECT 1`).Scan(&one)
}

func (r *PlanRepository) each(ctx context.Context, query, planID string, scan func(*sql.Rows) error) error {
	rows, err := r.db.QueryContext(ctx, query, planID)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		if err = scan(rows); err != nil {
			return err
		}
	}
	return rows.Err()
}

func encodeList(s []string) (string, error) {
	if s == nil {
		s = []string{}
	}
	raw, err := json.Marshal(s)
	return string(raw), err
}

func decodeList(raw string) ([]string, error) {
	out := []string{}
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, fmt.Errorf("decode list column: %w", err)
	}
	if out == nil {
		out = []string{}
	}
	return out, nil
}
