package db

import (
	"context"

	"github.com/lifeline-salud/backend/internal/model"
)

func (db *Postgres) CreateType(ctx context.Context, req model.CreateTypeRequest) (int64, error) {
	query := `CALL create_type($1, $2, $3, NULL)`

	var id int64
	err := db.Pool.QueryRow(ctx, query, req.Name, req.Description, req.EntityType).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (db *Postgres) CreateSubscription(ctx context.Context, req model.CreateSubscriptionRequest) (int64, error) {
	query := `CALL create_subscription($1, $2, $3, $4, NULL)`

	var id int64
	err := db.Pool.QueryRow(ctx, query, req.Name, req.Description, req.Price, req.BillingPeriod).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}
