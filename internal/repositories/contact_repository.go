package repositories

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"sponsorcrm/internal/models"
)

type ContactRepository struct {
	db *sql.DB
}

func NewContactRepository(db *sql.DB) *ContactRepository {
	if db == nil {
		log.Fatalf("received nil database connection")
	}
	return &ContactRepository{db: db}
}

// CreateTx inserts a contact inside the owner's transaction and fills in the
// generated id.
func (r *ContactRepository) CreateTx(tx *sql.Tx, c *models.Contact) error {
	const query = `
		INSERT INTO contacts (name, company, email, phone, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
		RETURNING id
	`
	now := time.Now()
	c.CreatedAt = now
	c.UpdatedAt = now
	return tx.QueryRow(query, c.Name, c.Company, c.Email, c.Phone, c.Notes, now).Scan(&c.ID)
}

// UpdateTx patches only the given columns.
func (r *ContactRepository) UpdateTx(tx *sql.Tx, id int64, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	set, args := buildSet(fields, 2)
	query := fmt.Sprintf(`UPDATE contacts SET %s, updated_at=NOW() WHERE id=$1`, set)
	_, err := tx.Exec(query, append([]interface{}{id}, args...)...)
	return err
}

// DeleteTx removes the contact owned by a just-deleted lead or sponsor.
func (r *ContactRepository) DeleteTx(tx *sql.Tx, id int64) error {
	_, err := tx.Exec(`DELETE FROM contacts WHERE id=$1`, id)
	return err
}

func (r *ContactRepository) GetByID(id int64) (*models.Contact, error) {
	const query = `
		SELECT id, name, company, email, phone, notes, created_at, updated_at
		FROM contacts
		WHERE id=$1
	`
	c := &models.Contact{}
	err := r.db.QueryRow(query, id).Scan(
		&c.ID, &c.Name, &c.Company, &c.Email, &c.Phone, &c.Notes, &c.CreatedAt, &c.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}
