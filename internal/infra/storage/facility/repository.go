package facility

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/eklokale/RoomBookingService/internal/domain"
	"github.com/eklokale/RoomBookingService/pkg/psqlbuilder"
)

var facilityColumns = []string{
	"id",
	"title",
	"capacity",
	"description",
	"floor",
	"facility_type",
	"created_at",
}

// Repository репозиторий справочника помещений
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория помещений
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает помещение по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Facility, error) {
	query, args, err := psqlbuilder.Select(facilityColumns...).
		From("facilities").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	f, err := scanFacility(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrFacilityNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan facility: %v", ErrScanRow, err)
	}

	return f, nil
}

// List получает все помещения
func (r *Repository) List(ctx context.Context) ([]*domain.Facility, error) {
	query, args, err := psqlbuilder.Select(facilityColumns...).
		From("facilities").
		OrderBy("title ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	facilities := make([]*domain.Facility, 0)

	for rows.Next() {
		f, err := scanFacility(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		facilities = append(facilities, f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return facilities, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanFacility(row rowScanner) (*domain.Facility, error) {
	var (
		f            domain.Facility
		capacity     sql.NullString
		description  sql.NullString
		floor        sql.NullString
		facilityType sql.NullString
		created      sql.NullTime
	)

	err := row.Scan(
		&f.ID,
		&f.Title,
		&capacity,
		&description,
		&floor,
		&facilityType,
		&created,
	)
	if err != nil {
		return nil, err
	}

	if capacity.Valid {
		f.Capacity = &capacity.String
	}
	if description.Valid {
		f.Description = &description.String
	}
	if floor.Valid {
		f.Floor = &floor.String
	}
	if facilityType.Valid {
		f.FacilityType = &facilityType.String
	}
	f.CreatedAt = created.Time

	return &f, nil
}
