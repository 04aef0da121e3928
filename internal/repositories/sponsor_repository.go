package repositories

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/lib/pq"

	"sponsorcrm/internal/models"
)

const sponsorColumns = `
	s.id, s.contact_id, s.contract_start, s.contract_end, s.value, s.status,
	s.notes, s.media_assets, s.created_at, s.updated_at,
	c.id, c.name, c.company, c.email, c.phone, c.notes, c.created_at, c.updated_at
`

type SponsorRepository struct {
	db       *sql.DB
	contacts *ContactRepository
}

func NewSponsorRepository(db *sql.DB, contacts *ContactRepository) *SponsorRepository {
	if db == nil {
		log.Fatalf("received nil database connection")
	}
	return &SponsorRepository{db: db, contacts: contacts}
}

func scanSponsor(row interface{ Scan(...interface{}) error }) (*models.Sponsor, error) {
	s := &models.Sponsor{Contact: &models.Contact{}}
	err := row.Scan(
		&s.ID, &s.ContactID, &s.ContractStart, &s.ContractEnd, &s.Value, &s.Status,
		&s.Notes, pq.Array(&s.MediaAssets), &s.CreatedAt, &s.UpdatedAt,
		&s.Contact.ID, &s.Contact.Name, &s.Contact.Company, &s.Contact.Email,
		&s.Contact.Phone, &s.Contact.Notes, &s.Contact.CreatedAt, &s.Contact.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *SponsorRepository) Create(sponsor *models.Sponsor, contact *models.Contact) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := r.contacts.CreateTx(tx, contact); err != nil {
		return err
	}

	const query = `
		INSERT INTO sponsors (contact_id, contract_start, contract_end, value, status,
			notes, media_assets, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
		RETURNING id
	`
	now := time.Now()
	sponsor.CreatedAt = now
	sponsor.UpdatedAt = now
	sponsor.ContactID = contact.ID
	sponsor.Contact = contact
	if err := tx.QueryRow(query,
		contact.ID, sponsor.ContractStart, sponsor.ContractEnd, sponsor.Value,
		sponsor.Status, sponsor.Notes, pq.Array(sponsor.MediaAssets), now,
	).Scan(&sponsor.ID); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *SponsorRepository) GetByID(id int64) (*models.Sponsor, error) {
	query := `
		SELECT ` + sponsorColumns + `
		FROM sponsors s
		JOIN contacts c ON c.id = s.contact_id
		WHERE s.id=$1
	`
	sponsor, err := scanSponsor(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return sponsor, nil
}

// List returns sponsors filtered by media asset membership and an optional
// search, soonest contract end first.
func (r *SponsorRepository) List(mediaAsset, search string) ([]*models.Sponsor, error) {
	query := `
		SELECT ` + sponsorColumns + `
		FROM sponsors s
		JOIN contacts c ON c.id = s.contact_id
		WHERE 1=1
	`
	args := []interface{}{}
	i := 1

	if mediaAsset != "" {
		query += fmt.Sprintf(" AND $%d = ANY(s.media_assets)", i)
		args = append(args, mediaAsset)
		i++
	}
	if search != "" {
		query += fmt.Sprintf(" AND (c.name ILIKE $%d OR c.company ILIKE $%d OR c.email ILIKE $%d)", i, i, i)
		args = append(args, "%"+search+"%")
		i++
	}

	query += " ORDER BY s.contract_end ASC, s.id ASC"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Sponsor
	for rows.Next() {
		s, err := scanSponsor(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *SponsorRepository) Update(id int64, sponsorFields, contactFields map[string]interface{}) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if len(sponsorFields) > 0 {
		set, args := buildSet(sponsorFields, 2)
		query := fmt.Sprintf(`UPDATE sponsors SET %s, updated_at=NOW() WHERE id=$1`, set)
		if _, err := tx.Exec(query, append([]interface{}{id}, args...)...); err != nil {
			return err
		}
	} else if _, err := tx.Exec(`UPDATE sponsors SET updated_at=NOW() WHERE id=$1`, id); err != nil {
		return err
	}

	if len(contactFields) > 0 {
		var contactID int64
		if err := tx.QueryRow(`SELECT contact_id FROM sponsors WHERE id=$1`, id).Scan(&contactID); err != nil {
			return err
		}
		if err := r.contacts.UpdateTx(tx, contactID, contactFields); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// Delete removes the sponsor and the contact it owns.
func (r *SponsorRepository) Delete(id int64) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var contactID int64
	if err := tx.QueryRow(`SELECT contact_id FROM sponsors WHERE id=$1`, id).Scan(&contactID); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM sponsors WHERE id=$1`, id); err != nil {
		return err
	}
	if err := r.contacts.DeleteTx(tx, contactID); err != nil {
		return err
	}
	return tx.Commit()
}

// ===== dashboard aggregates =====

func (r *SponsorRepository) CountActive(mediaAsset string) (int, error) {
	query := `SELECT COUNT(*) FROM sponsors WHERE status=$1`
	args := []interface{}{string(models.SponsorActive)}
	if mediaAsset != "" {
		query += ` AND $2 = ANY(media_assets)`
		args = append(args, mediaAsset)
	}
	var count int
	err := r.db.QueryRow(query, args...).Scan(&count)
	return count, err
}

// CountExpiring counts active sponsors whose contract ends within [from, to].
func (r *SponsorRepository) CountExpiring(mediaAsset string, from, to time.Time) (int, error) {
	query := `
		SELECT COUNT(*) FROM sponsors
		WHERE status=$1 AND contract_end >= $2 AND contract_end <= $3
	`
	args := []interface{}{string(models.SponsorActive), from, to}
	if mediaAsset != "" {
		query += ` AND $4 = ANY(media_assets)`
		args = append(args, mediaAsset)
	}
	var count int
	err := r.db.QueryRow(query, args...).Scan(&count)
	return count, err
}
