package db

import "context"

// Destructive maintenance procedures, intended for staging resets.

func (db *Postgres) DeleteAllContent(ctx context.Context) error {
	_, err := db.Pool.Exec(ctx, `CALL sp_delete_all_data()`)
	return err
}

func (db *Postgres) DropAllTables(ctx context.Context) error {
	_, err := db.Pool.Exec(ctx, `CALL sp_drop_all_tables()`)
	return err
}

func (db *Postgres) DropAllProcedures(ctx context.Context) error {
	_, err := db.Pool.Exec(ctx, `CALL sp_drop_all_procedures()`)
	return err
}
