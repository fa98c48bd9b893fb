package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/pepiapp/citizen_registry_microservice/internal/core/domain"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const dateLayout = "2006-01-02"

const passportUniqueConstraint = "citizens_passport_number_idx"

// mapUniqueViolation attributes a 23505 to the passport constraint. The
// citizens table also carries a unique index on unique_id; a collision
// there must not be reported as a duplicate passport.
func mapUniqueViolation(err error) error {
	if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" && pqErr.Constraint == passportUniqueConstraint {
		return domain.ErrPassportExists
	}
	return err
}

type PostgresCitizenRepository struct {
	db *sql.DB
}

func NewCitizenRepository(db *sql.DB) *PostgresCitizenRepository {
	return &PostgresCitizenRepository{
		db,
	}
}

func (r *PostgresCitizenRepository) CreateCitizen(ctx context.Context, citizen *domain.Citizen) (*domain.Citizen, error) {
	query := `INSERT INTO citizens (first_name, last_name, date_of_birth, nationality, passport_number, passport_issue_date, unique_id)
    VALUES ($1, $2, $3, $4, $5, $6, $7)
    RETURNING id, created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query,
		citizen.FirstName,
		citizen.LastName,
		citizen.DateOfBirth,
		citizen.Nationality,
		citizen.PassportNumber,
		citizen.PassportIssueDate,
		citizen.UniqueID,
	).Scan(
		&citizen.ID,
		&citizen.CreatedAt,
		&citizen.UpdatedAt,
	)
	if err != nil {
		return nil, mapUniqueViolation(err)
	}
	return citizen, nil
}

func (r *PostgresCitizenRepository) GetCitizenByID(ctx context.Context, id uuid.UUID) (*domain.Citizen, error) {
	query := `SELECT id, first_name, last_name, date_of_birth, nationality, passport_number, passport_issue_date, unique_id, created_at, updated_at
              FROM citizens WHERE id = $1`

	citizen, err := scanCitizen(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, domain.ErrCitizenNotFound
	}
	if err != nil {
		return nil, err
	}
	return citizen, nil
}

func (r *PostgresCitizenRepository) GetCitizenByPassport(ctx context.Context, passportNumber string) (*domain.Citizen, error) {
	query := `SELECT id, first_name, last_name, date_of_birth, nationality, passport_number, passport_issue_date, unique_id, created_at, updated_at
              FROM citizens WHERE passport_number = $1`

	citizen, err := scanCitizen(r.db.QueryRowContext(ctx, query, passportNumber))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return citizen, nil
}

func (r *PostgresCitizenRepository) ListCitizens(ctx context.Context) ([]domain.Citizen, error) {
	query := `SELECT id, first_name, last_name, date_of_birth, nationality, passport_number, passport_issue_date, unique_id, created_at, updated_at
              FROM citizens ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	citizens := []domain.Citizen{}
	for rows.Next() {
		citizen, err := scanCitizen(rows)
		if err != nil {
			return nil, err
		}
		citizens = append(citizens, *citizen)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return citizens, nil
}

func (r *PostgresCitizenRepository) UpdateCitizen(ctx context.Context, citizen *domain.Citizen) (*domain.Citizen, error) {
	query := `UPDATE citizens
        SET
        first_name = $1,
        last_name = $2,
        date_of_birth = $3,
        nationality = $4,
        passport_number = $5,
        passport_issue_date = $6,
        updated_at = CURRENT_TIMESTAMP
        WHERE id = $7
        RETURNING id, first_name, last_name, date_of_birth, nationality, passport_number, passport_issue_date, unique_id, created_at, updated_at`

	updated, err := scanCitizen(r.db.QueryRowContext(ctx, query,
		citizen.FirstName,
		citizen.LastName,
		citizen.DateOfBirth,
		citizen.Nationality,
		citizen.PassportNumber,
		citizen.PassportIssueDate,
		citizen.ID,
	))
	if err == sql.ErrNoRows {
		return nil, domain.ErrCitizenNotFound
	}
	if err != nil {
		return nil, mapUniqueViolation(err)
	}
	return updated, nil
}

func (r *PostgresCitizenRepository) DeleteCitizen(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM citizens WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return domain.ErrCitizenNotFound
	}

	return nil
}

func (r *PostgresCitizenRepository) PassportTaken(ctx context.Context, passportNumber string, excludeID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS (
        SELECT 1 FROM citizens WHERE passport_number = $1 AND id <> $2
    )`

	var taken bool
	if err := r.db.QueryRowContext(ctx, query, passportNumber, excludeID).Scan(&taken); err != nil {
		return false, err
	}
	return taken, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// Date columns come back as time.Time from lib/pq; the domain keeps them as
// YYYY-MM-DD strings.
func scanCitizen(row rowScanner) (*domain.Citizen, error) {
	citizen := &domain.Citizen{}
	var dateOfBirth, passportIssueDate time.Time

	err := row.Scan(
		&citizen.ID,
		&citizen.FirstName,
		&citizen.LastName,
		&dateOfBirth,
		&citizen.Nationality,
		&citizen.PassportNumber,
		&passportIssueDate,
		&citizen.UniqueID,
		&citizen.CreatedAt,
		&citizen.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	citizen.DateOfBirth = dateOfBirth.Format(dateLayout)
	citizen.PassportIssueDate = passportIssueDate.Format(dateLayout)
	return citizen, nil
}
