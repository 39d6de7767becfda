package property

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

const selectPropertiesQuery = `
	SELECT id, type, location, neighborhood, price, currency,
	       bedrooms, bathrooms, area_m2, description, garden_area
	FROM properties
	ORDER BY id`

// LoadPostgres reads the full properties table into an immutable Dataset.
// The table is queried once at startup; the agent never goes back to the
// database during a conversation.
func LoadPostgres(ctx context.Context, databaseURL string) (*Dataset, error) {
	db, err := sqlx.ConnectContext(ctx, "postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("property: connect postgres: %w", err)
	}
	defer db.Close()
	return LoadPostgresDB(ctx, db)
}

// LoadPostgresDB reads the properties table using an existing connection.
func LoadPostgresDB(ctx context.Context, db *sqlx.DB) (*Dataset, error) {
	var properties []Property
	if err := db.SelectContext(ctx, &properties, selectPropertiesQuery); err != nil {
		return nil, fmt.Errorf("property: select properties: %w", err)
	}
	return NewDataset(properties), nil
}
