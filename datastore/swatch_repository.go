package datastore

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/color-game/swatchbook/models"
	_ "github.com/lib/pq"
)

type SwatchRepository interface {
	Create(swatch models.Swatch, limit int) (models.Swatch, error)
	Get(userID string, id int) (models.Swatch, error)
	GetByUser(userID string) ([]models.Swatch, error)
	Delete(userID string, id int) (int64, error)
}

// ErrSwatchLimit is returned by Create when the owner has no room left
var ErrSwatchLimit = errors.New("swatch limit reached")

type SwatchDatabase struct {
	database *sql.DB
}

func NewSwatchDatabase(db *sql.DB) (SwatchDatabase, error) {
	var swatchDB SwatchDatabase
	swatchDB.database = db
	return swatchDB, nil
}

func scanSwatch(row rowScanner) (models.Swatch, error) {
	var swatch models.Swatch
	err := row.Scan(
		&swatch.ID,
		&swatch.UserID,
		&swatch.Name,
		&swatch.Source,
		&swatch.Red,
		&swatch.Green,
		&swatch.Blue,
		&swatch.Alpha,
		&swatch.CreatedAt,
	)
	return swatch, err
}

// Create inserts a new swatch unless its owner already has limit of them.
// The owner's user row stays locked from the count until the insert commits.
func (sdb SwatchDatabase) Create(swatch models.Swatch, limit int) (models.Swatch, error) {
	tx, err := sdb.database.Begin()
	if err != nil {
		return models.Swatch{}, fmt.Errorf("failed to begin swatch insert: %v", err)
	}
	defer tx.Rollback()

	var owner string
	lockErr := tx.QueryRow(`SELECT user_id FROM users WHERE user_id = $1 FOR UPDATE`, swatch.UserID).Scan(&owner)
	switch lockErr {
	case nil:
	case sql.ErrNoRows:
		return models.Swatch{}, NoRowsError{true, lockErr}
	default:
		return models.Swatch{}, lockErr
	}

	var count int
	if err := tx.QueryRow(`SELECT COUNT(*) FROM swatches WHERE user_id = $1`, swatch.UserID).Scan(&count); err != nil {
		return models.Swatch{}, err
	}
	if count >= limit {
		return models.Swatch{}, ErrSwatchLimit
	}

	sqlStatement := `
		INSERT INTO swatches (user_id, name, source, red, green, blue, alpha, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	err = tx.QueryRow(
		sqlStatement,
		swatch.UserID,
		swatch.Name,
		swatch.Source,
		swatch.Red,
		swatch.Green,
		swatch.Blue,
		swatch.Alpha,
		swatch.CreatedAt,
	).Scan(&swatch.ID)

	if err != nil {
		return models.Swatch{}, fmt.Errorf("failed to create swatch: %v", err)
	}

	if err := tx.Commit(); err != nil {
		return models.Swatch{}, fmt.Errorf("failed to commit swatch: %v", err)
	}

	return swatch, nil
}

// Get retrieves one of a user's swatches
func (sdb SwatchDatabase) Get(userID string, id int) (models.Swatch, error) {
	db := sdb.database

	sqlStatement := `
		SELECT id, user_id, name, source, red, green, blue, alpha, created_at
		FROM swatches
		WHERE user_id = $1 AND id = $2`

	swatch, err := scanSwatch(db.QueryRow(sqlStatement, userID, id))

	switch err {
	case sql.ErrNoRows:
		return models.Swatch{}, NoRowsError{true, err}
	case nil:
		return swatch, nil
	default:
		return models.Swatch{}, err
	}
}

// GetByUser retrieves every swatch of a user, newest first
func (sdb SwatchDatabase) GetByUser(userID string) ([]models.Swatch, error) {
	db := sdb.database

	sqlStatement := `
		SELECT id, user_id, name, source, red, green, blue, alpha, created_at
		FROM swatches
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC`

	rows, err := db.Query(sqlStatement, userID)
	if err != nil {
		return []models.Swatch{}, err
	}
	defer rows.Close()

	var swatches []models.Swatch
	for rows.Next() {
		swatch, err := scanSwatch(rows)
		if err != nil {
			return []models.Swatch{}, err
		}
		swatches = append(swatches, swatch)
	}

	return swatches, rows.Err()
}

// Delete removes one of a user's swatches and reports how many rows went away
func (sdb SwatchDatabase) Delete(userID string, id int) (int64, error) {
	db := sdb.database

	sqlStatement := `DELETE FROM swatches WHERE user_id = $1 AND id = $2`
	result, err := db.Exec(sqlStatement, userID, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete swatch: %v", err)
	}

	return result.RowsAffected()
}
