package db

import (
	"context"

	"github.com/lifeline-salud/backend/internal/model"
)

func (db *Postgres) CreateInventory(ctx context.Context, req model.CreateInventoryRequest) (int64, error) {
	query := `CALL create_inventory($1, $2, $3, $4, NULL)`

	var id int64
	err := db.Pool.QueryRow(ctx, query,
		req.Name,
		req.Description,
		req.Type,
		string(req.Questions),
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (db *Postgres) GetInventoryDetails(ctx context.Context, inventoryID int64) (*model.Inventory, error) {
	query := `
		SELECT id, name, description, type, questions
		FROM get_inventory_details($1)
	`
	var inv model.Inventory
	err := db.Pool.QueryRow(ctx, query, inventoryID).Scan(
		&inv.ID,
		&inv.Name,
		&inv.Description,
		&inv.Type,
		&inv.Questions,
	)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func (db *Postgres) GetInventories(ctx context.Context) ([]model.Inventory, error) {
	query := `SELECT id, name, description, type, questions FROM get_inventories()`

	rows, err := db.Pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []model.Inventory
	for rows.Next() {
		var inv model.Inventory
		if err := rows.Scan(&inv.ID, &inv.Name, &inv.Description, &inv.Type, &inv.Questions); err != nil {
			return nil, err
		}
		list = append(list, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if list == nil {
		list = []model.Inventory{}
	}
	return list, nil
}

func (db *Postgres) CreateInventoryResponse(ctx context.Context, inventoryID int64, req model.CreateInventoryResponseRequest) (int64, error) {
	query := `CALL create_inventory_response($1, $2, $3, $4, NULL)`

	var id int64
	err := db.Pool.QueryRow(ctx, query,
		inventoryID,
		req.RespondentName,
		string(req.Answers),
		req.MedicalRecord,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (db *Postgres) GetInventoryResponses(ctx context.Context, responseID int64) ([]model.InventoryResponse, error) {
	query := `
		SELECT response_id, respondent_name, answers, created_at
		FROM get_inventory_responses($1)
	`
	rows, err := db.Pool.Query(ctx, query, responseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []model.InventoryResponse
	for rows.Next() {
		var r model.InventoryResponse
		if err := rows.Scan(&r.ID, &r.RespondentName, &r.Answers, &r.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if list == nil {
		list = []model.InventoryResponse{}
	}
	return list, nil
}

func (db *Postgres) GetAllInventoryResponses(ctx context.Context) ([]model.InventoryResponse, error) {
	query := `
		SELECT id, inventory_id, medical_record, respondent_name, answers, created_at
		FROM get_all_inventory_responses()
	`
	rows, err := db.Pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []model.InventoryResponse
	for rows.Next() {
		var r model.InventoryResponse
		if err := rows.Scan(&r.ID, &r.InventoryID, &r.MedicalRecord, &r.RespondentName, &r.Answers, &r.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if list == nil {
		list = []model.InventoryResponse{}
	}
	return list, nil
}
