package repositories

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/lib/pq"

	"sponsorcrm/internal/models"
)

const leadColumns = `
	l.id, l.contact_id, l.stage, l.value, l.probability, l.next_follow_up,
	l.follow_up_notes, l.source, l.hold_reason, l.media_assets, l.created_at, l.updated_at,
	c.id, c.name, c.company, c.email, c.phone, c.notes, c.created_at, c.updated_at
`

type LeadRepository struct {
	db       *sql.DB
	contacts *ContactRepository
}

func NewLeadRepository(db *sql.DB, contacts *ContactRepository) *LeadRepository {
	if db == nil {
		log.Fatalf("received nil database connection")
	}
	return &LeadRepository{db: db, contacts: contacts}
}

func scanLead(row interface{ Scan(...interface{}) error }) (*models.Lead, error) {
	l := &models.Lead{Contact: &models.Contact{}}
	err := row.Scan(
		&l.ID, &l.ContactID, &l.Stage, &l.Value, &l.Probability, &l.NextFollowUp,
		&l.FollowUpNotes, &l.Source, &l.HoldReason, pq.Array(&l.MediaAssets), &l.CreatedAt, &l.UpdatedAt,
		&l.Contact.ID, &l.Contact.Name, &l.Contact.Company, &l.Contact.Email,
		&l.Contact.Phone, &l.Contact.Notes, &l.Contact.CreatedAt, &l.Contact.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return l, nil
}

// Create inserts the contact and the lead in one transaction. The lead owns
// the contact from here on.
func (r *LeadRepository) Create(lead *models.Lead, contact *models.Contact) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := r.contacts.CreateTx(tx, contact); err != nil {
		return err
	}

	const query = `
		INSERT INTO leads (contact_id, stage, value, probability, next_follow_up,
			follow_up_notes, source, hold_reason, media_assets, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10)
		RETURNING id
	`
	now := time.Now()
	lead.CreatedAt = now
	lead.UpdatedAt = now
	lead.ContactID = contact.ID
	lead.Contact = contact
	if err := tx.QueryRow(query,
		contact.ID, lead.Stage, lead.Value, lead.Probability, lead.NextFollowUp,
		lead.FollowUpNotes, lead.Source, lead.HoldReason, pq.Array(lead.MediaAssets), now,
	).Scan(&lead.ID); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *LeadRepository) GetByID(id int64) (*models.Lead, error) {
	query := `
		SELECT ` + leadColumns + `
		FROM leads l
		JOIN contacts c ON c.id = l.contact_id
		WHERE l.id=$1
	`
	lead, err := scanLead(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return lead, nil
}

// List returns leads filtered by media asset membership and an optional
// name/company/email search, ordered by next follow-up with undated leads
// after all dated ones.
func (r *LeadRepository) List(mediaAsset, search string) ([]*models.Lead, error) {
	query := `
		SELECT ` + leadColumns + `
		FROM leads l
		JOIN contacts c ON c.id = l.contact_id
		WHERE 1=1
	`
	args := []interface{}{}
	i := 1

	if mediaAsset != "" {
		query += fmt.Sprintf(" AND $%d = ANY(l.media_assets)", i)
		args = append(args, mediaAsset)
		i++
	}
	if search != "" {
		query += fmt.Sprintf(" AND (c.name ILIKE $%d OR c.company ILIKE $%d OR c.email ILIKE $%d)", i, i, i)
		args = append(args, "%"+search+"%")
		i++
	}

	query += " ORDER BY l.next_follow_up ASC NULLS LAST, l.id ASC"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Lead
	for rows.Next() {
		l, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

// Update patches the given lead columns, and contact columns when the patch
// touched contact-owned fields, in one transaction.
func (r *LeadRepository) Update(id int64, leadFields, contactFields map[string]interface{}) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if len(leadFields) > 0 {
		set, args := buildSet(leadFields, 2)
		query := fmt.Sprintf(`UPDATE leads SET %s, updated_at=NOW() WHERE id=$1`, set)
		if _, err := tx.Exec(query, append([]interface{}{id}, args...)...); err != nil {
			return err
		}
	} else if _, err := tx.Exec(`UPDATE leads SET updated_at=NOW() WHERE id=$1`, id); err != nil {
		return err
	}

	if len(contactFields) > 0 {
		var contactID int64
		if err := tx.QueryRow(`SELECT contact_id FROM leads WHERE id=$1`, id).Scan(&contactID); err != nil {
			return err
		}
		if err := r.contacts.UpdateTx(tx, contactID, contactFields); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// Delete removes the lead and the contact it owns.
func (r *LeadRepository) Delete(id int64) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var contactID int64
	if err := tx.QueryRow(`SELECT contact_id FROM leads WHERE id=$1`, id).Scan(&contactID); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM leads WHERE id=$1`, id); err != nil {
		return err
	}
	if err := r.contacts.DeleteTx(tx, contactID); err != nil {
		return err
	}
	return tx.Commit()
}

// ===== dashboard aggregates =====

func (r *LeadRepository) CountActive(mediaAsset string) (int, error) {
	query := `SELECT COUNT(*) FROM leads WHERE NOT (stage = ANY($1))`
	args := []interface{}{terminalStages()}
	if mediaAsset != "" {
		query += ` AND $2 = ANY(media_assets)`
		args = append(args, mediaAsset)
	}
	var count int
	err := r.db.QueryRow(query, args...).Scan(&count)
	return count, err
}

// CountFollowUpsBetween counts non-terminal leads whose follow-up falls in
// [from, to).
func (r *LeadRepository) CountFollowUpsBetween(mediaAsset string, from, to time.Time) (int, error) {
	query := `
		SELECT COUNT(*) FROM leads
		WHERE NOT (stage = ANY($1)) AND next_follow_up >= $2 AND next_follow_up < $3
	`
	args := []interface{}{terminalStages(), from, to}
	if mediaAsset != "" {
		query += ` AND $4 = ANY(media_assets)`
		args = append(args, mediaAsset)
	}
	var count int
	err := r.db.QueryRow(query, args...).Scan(&count)
	return count, err
}

// CountOverdue counts non-terminal leads whose follow-up is strictly before
// the given day start.
func (r *LeadRepository) CountOverdue(mediaAsset string, before time.Time) (int, error) {
	query := `
		SELECT COUNT(*) FROM leads
		WHERE NOT (stage = ANY($1)) AND next_follow_up < $2
	`
	args := []interface{}{terminalStages(), before}
	if mediaAsset != "" {
		query += ` AND $3 = ANY(media_assets)`
		args = append(args, mediaAsset)
	}
	var count int
	err := r.db.QueryRow(query, args...).Scan(&count)
	return count, err
}

// SumPipelineValue sums value over non-terminal leads. SUM skips NULL values,
// which is the intended contrast with the board column totals.
func (r *LeadRepository) SumPipelineValue(mediaAsset string) (float64, error) {
	query := `SELECT COALESCE(SUM(value), 0) FROM leads WHERE NOT (stage = ANY($1))`
	args := []interface{}{terminalStages()}
	if mediaAsset != "" {
		query += ` AND $2 = ANY(media_assets)`
		args = append(args, mediaAsset)
	}
	var sum float64
	err := r.db.QueryRow(query, args...).Scan(&sum)
	return sum, err
}

// ListFollowUpsDue returns non-terminal leads with a follow-up before the
// given cutoff, oldest first. Used by the digest job.
func (r *LeadRepository) ListFollowUpsDue(before time.Time) ([]*models.Lead, error) {
	query := `
		SELECT ` + leadColumns + `
		FROM leads l
		JOIN contacts c ON c.id = l.contact_id
		WHERE NOT (l.stage = ANY($1)) AND l.next_follow_up < $2
		ORDER BY l.next_follow_up ASC
	`
	rows, err := r.db.Query(query, terminalStages(), before)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Lead
	for rows.Next() {
		l, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}
