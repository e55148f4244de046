package storage

import (
	"context"
	"errors"
	"strconv"

	"github.com/jackc/pgx/v5"

	"github.com/AlenaMolokova/checks/internal/apperrors"
	"github.com/AlenaMolokova/checks/internal/models"
)

// checkSummaryQuery is the single place where total and rest are computed for
// reads. Both single-check fetches and the my-checks listing are built from
// it, so the two paths cannot disagree on the formula.
const checkSummaryQuery = `
	SELECT c.check_id, c.token, c.url, c.type, c.amount, c.created_at, c.customer_id,
	       SUM(p.price * p.quantity) AS total,
	       c.amount - SUM(p.price * p.quantity) AS rest,
	       CONCAT(u.first_name, ' ', u.last_name) AS customer_name
	FROM checks c
	JOIN product_checks p ON p.check_id = c.check_id
	JOIN users u ON u.user_id = c.customer_id`

const checkSummaryGroupBy = ` GROUP BY c.check_id, u.first_name, u.last_name`

// CreateCheck persists a check and its line items as one atomic unit. Either
// all rows commit or none do.
func (s *Storage) CreateCheck(ctx context.Context, check models.Check, products []models.ProductCheck) (models.Check, []models.ProductCheck, error) {
	created := check
	items := make([]models.ProductCheck, len(products))

	err := s.withTx(ctx, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx,
			`INSERT INTO checks (token, url, type, amount, customer_id)
			 VALUES ($1, $2, $3, $4, $5)
			 RETURNING check_id, created_at`,
			check.Token, check.URL, check.Type, check.Amount, check.CustomerID,
		).Scan(&created.ID, &created.CreatedAt)
		if err != nil {
			return err
		}

		for i, product := range products {
			item := product
			item.CheckID = created.ID
			err := tx.QueryRow(ctx,
				`INSERT INTO product_checks (check_id, name, quantity, price)
				 VALUES ($1, $2, $3, $4)
				 RETURNING check_detail_id`,
				item.CheckID, item.Name, item.Quantity, item.Price,
			).Scan(&item.ID)
			if err != nil {
				return err
			}
			items[i] = item
		}
		return nil
	})
	if err != nil {
		return models.Check{}, nil, err
	}
	return created, items, nil
}

// GetCheckByID is owner-scoped: a check id belonging to another customer is
// indistinguishable from a missing one.
func (s *Storage) GetCheckByID(ctx context.Context, customerID, checkID int64) (models.CheckSummary, []models.ProductCheck, error) {
	return s.getCheckSummary(ctx,
		checkSummaryQuery+` WHERE c.customer_id = $1 AND c.check_id = $2`+checkSummaryGroupBy,
		customerID, checkID)
}

// GetCheckByToken is the public token-scoped lookup and performs no ownership
// check.
func (s *Storage) GetCheckByToken(ctx context.Context, token string) (models.CheckSummary, []models.ProductCheck, error) {
	return s.getCheckSummary(ctx,
		checkSummaryQuery+` WHERE c.token = $1`+checkSummaryGroupBy,
		token)
}

func (s *Storage) getCheckSummary(ctx context.Context, query string, args ...any) (models.CheckSummary, []models.ProductCheck, error) {
	var summary models.CheckSummary
	err := s.db.QueryRow(ctx, query, args...).Scan(
		&summary.Check.ID, &summary.Check.Token, &summary.Check.URL, &summary.Check.Type,
		&summary.Check.Amount, &summary.Check.CreatedAt, &summary.Check.CustomerID,
		&summary.Total, &summary.Rest, &summary.CustomerName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.CheckSummary{}, nil, apperrors.NotFound("check not found")
		}
		return models.CheckSummary{}, nil, translateDBError(err)
	}

	productsByCheck, err := s.getProducts(ctx, []int64{summary.Check.ID})
	if err != nil {
		return models.CheckSummary{}, nil, err
	}
	return summary, productsByCheck[summary.Check.ID], nil
}

// ListChecksByUser runs the grouped aggregate over the user's checks. The
// total threshold filter applies to the aggregated sum via HAVING, not to
// individual line items; all filters combine with AND.
func (s *Storage) ListChecksByUser(ctx context.Context, customerID int64, filters models.CheckFilters) ([]models.CheckSummary, map[int64][]models.ProductCheck, error) {
	query := checkSummaryQuery + ` WHERE c.customer_id = $1`
	args := []any{customerID}

	if filters.PaymentType != nil {
		args = append(args, *filters.PaymentType)
		query += ` AND c.type = $` + strconv.Itoa(len(args))
	}
	if filters.CreatedFrom != nil {
		args = append(args, *filters.CreatedFrom)
		query += ` AND c.created_at >= $` + strconv.Itoa(len(args))
	}
	query += checkSummaryGroupBy
	if filters.TotalGreaterThan != nil {
		args = append(args, *filters.TotalGreaterThan)
		query += ` HAVING SUM(p.price * p.quantity) > $` + strconv.Itoa(len(args))
	}
	query += ` ORDER BY c.check_id`

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, translateDBError(err)
	}
	defer rows.Close()

	var summaries []models.CheckSummary
	var checkIDs []int64
	for rows.Next() {
		var summary models.CheckSummary
		err := rows.Scan(
			&summary.Check.ID, &summary.Check.Token, &summary.Check.URL, &summary.Check.Type,
			&summary.Check.Amount, &summary.Check.CreatedAt, &summary.Check.CustomerID,
			&summary.Total, &summary.Rest, &summary.CustomerName,
		)
		if err != nil {
			return nil, nil, translateDBError(err)
		}
		summaries = append(summaries, summary)
		checkIDs = append(checkIDs, summary.Check.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, translateDBError(err)
	}

	if len(checkIDs) == 0 {
		return summaries, map[int64][]models.ProductCheck{}, nil
	}

	products, err := s.getProducts(ctx, checkIDs)
	if err != nil {
		return nil, nil, err
	}
	return summaries, products, nil
}

func (s *Storage) getProducts(ctx context.Context, checkIDs []int64) (map[int64][]models.ProductCheck, error) {
	rows, err := s.db.Query(ctx,
		`SELECT check_detail_id, check_id, name, quantity, price
		 FROM product_checks
		 WHERE check_id = ANY($1)
		 ORDER BY check_detail_id`,
		checkIDs)
	if err != nil {
		return nil, translateDBError(err)
	}
	defer rows.Close()

	products := make(map[int64][]models.ProductCheck)
	for rows.Next() {
		var item models.ProductCheck
		if err := rows.Scan(&item.ID, &item.CheckID, &item.Name, &item.Quantity, &item.Price); err != nil {
			return nil, translateDBError(err)
		}
		products[item.CheckID] = append(products[item.CheckID], item)
	}
	if err := rows.Err(); err != nil {
		return nil, translateDBError(err)
	}
	return products, nil
}

