package slot

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/eklokale/RoomBookingService/internal/domain"
	"github.com/eklokale/RoomBookingService/pkg/psqlbuilder"
)

// slotColumns полный набор колонок таблицы slots
var slotColumns = []string{
	"id",
	"facility_id",
	"title",
	"starts_at",
	"ends_at",
	"state",
	"owner",
	"created_at",
	"updated_at",
}

// Repository репозиторий реестра слотов.
// Все гарантии конкурентности обеспечиваются здесь: предусловие каждой
// записи (ожидаемое состояние и владелец) уходит в WHERE единственного
// UPDATE, поэтому из гонящихся запросов строку меняет ровно один.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория слотов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает слот по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Slot, error) {
	query, args, err := psqlbuilder.Select(slotColumns...).
		From("slots").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	s, err := scanSlot(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan slot: %v", ErrScanRow, err)
	}

	return s, nil
}

// ClaimIfState атомарно занимает слот.
// Обновление проходит только если состояние И владелец строки всё ещё
// совпадают с теми, что видел вызывающий в момент решения. Если другой
// писатель успел раньше, строка не matched и возвращается ErrConflict.
func (r *Repository) ClaimIfState(
	ctx context.Context,
	id uuid.UUID,
	expectedState domain.SlotState,
	expectedOwner *uuid.UUID,
	newOwner uuid.UUID,
) (*domain.Slot, error) {
	query, args, err := psqlbuilder.Update("slots").
		Set("state", domain.StateOccupied).
		Set("owner", newOwner).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "state": expectedState}).
		Where(squirrel.Expr("owner IS NOT DISTINCT FROM ?", ownerArg(expectedOwner))).
		Suffix("RETURNING " + columnList()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ClaimIfState - build update query: %v", ErrBuildQuery, err)
	}

	s, err := scanSlot(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		// Предусловие больше не выполняется: слот успели занять или освободить
		return nil, ErrConflict
	}
	if err != nil {
		return nil, fmt.Errorf("%w: ClaimIfState - scan slot: %v", ErrScanRow, err)
	}

	return s, nil
}

// ReleaseIfOwner атомарно освобождает слот, только если им всё ещё
// владеет requiredOwner. Уже освобождённый или чужой слот даёт ErrConflict.
func (r *Repository) ReleaseIfOwner(ctx context.Context, id uuid.UUID, requiredOwner uuid.UUID) (*domain.Slot, error) {
	query, args, err := psqlbuilder.Update("slots").
		Set("state", domain.StateAvailable).
		Set("owner", nil).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "owner": requiredOwner}).
		Suffix("RETURNING " + columnList()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ReleaseIfOwner - build update query: %v", ErrBuildQuery, err)
	}

	s, err := scanSlot(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrConflict
	}
	if err != nil {
		return nil, fmt.Errorf("%w: ReleaseIfOwner - scan slot: %v", ErrScanRow, err)
	}

	return s, nil
}

// ListForDay получает все слоты, начинающиеся в окне [from, to)
func (r *Repository) ListForDay(ctx context.Context, from, to time.Time) ([]*domain.Slot, error) {
	query, args, err := psqlbuilder.Select(slotColumns...).
		From("slots").
		Where(squirrel.GtOrEq{"starts_at": from}).
		Where(squirrel.Lt{"starts_at": to}).
		OrderBy("starts_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListForDay - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListForDay - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanSlots(rows)
}

// ListOwnedForDay получает занятые актёром слоты в окне [from, to).
// Используется для дневного лимита, проверки второго помещения и
// списка "мои бронирования".
func (r *Repository) ListOwnedForDay(ctx context.Context, owner uuid.UUID, from, to time.Time) ([]*domain.Slot, error) {
	query, args, err := psqlbuilder.Select(slotColumns...).
		From("slots").
		Where(squirrel.Eq{"owner": owner, "state": domain.StateOccupied}).
		Where(squirrel.GtOrEq{"starts_at": from}).
		Where(squirrel.Lt{"starts_at": to}).
		OrderBy("starts_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListOwnedForDay - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListOwnedForDay - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanSlots(rows)
}

// rowScanner общий интерфейс sql.Row и sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanSlot сканирует одну строку слота
func scanSlot(row rowScanner) (*domain.Slot, error) {
	var (
		s       domain.Slot
		endsAt  sql.NullTime
		owner   uuid.NullUUID
		created sql.NullTime
		updated sql.NullTime
	)

	err := row.Scan(
		&s.ID,
		&s.FacilityID,
		&s.Title,
		&s.StartsAt,
		&endsAt,
		&s.State,
		&owner,
		&created,
		&updated,
	)
	if err != nil {
		return nil, err
	}

	if endsAt.Valid {
		s.EndsAt = &endsAt.Time
	}
	if owner.Valid {
		id := owner.UUID
		s.Owner = &id
	}
	s.CreatedAt = created.Time
	s.UpdatedAt = updated.Time

	return &s, nil
}

// scanSlots сканирует результаты запроса в слайс слотов
func scanSlots(rows *sql.Rows) ([]*domain.Slot, error) {
	slots := make([]*domain.Slot, 0)

	for rows.Next() {
		s, err := scanSlot(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanSlots - scan row: %v", ErrScanRow, err)
		}
		slots = append(slots, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanSlots - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}

// ownerArg превращает опционального владельца в SQL-аргумент
func ownerArg(owner *uuid.UUID) interface{} {
	if owner == nil {
		return nil
	}
	return *owner
}

// columnList колонки для RETURNING
func columnList() string {
	out := slotColumns[0]
	for _, c := range slotColumns[1:] {
		out += ", " + c
	}
	return out
}
