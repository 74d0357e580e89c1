package reminder

import (
	"context"
	"errors"
	"fmt"
	"time"

	e "volunteercal/internal/core/domain/errors"
	"volunteercal/internal/core/domain/event"
	"volunteercal/internal/core/domain/reminder"
	"volunteercal/internal/core/domain/user"
	"volunteercal/internal/db"

	"github.com/jackc/pgx/v4"
)

const reminderColumns = "id::text, event_id::text, user_id::text, remind_at, channel, sent, created_at"

type PgxReminderRepository struct {
	db db.DBTX
}

func NewPgxReminderRepository(dbtx db.DBTX) *PgxReminderRepository {
	if dbtx == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxReminderRepository{db: dbtx}
}

func (r *PgxReminderRepository) Create(
	ctx context.Context,
	input reminder.CreateInput,
) (rem reminder.Reminder, err error) {
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO reminders (event_id, user_id, remind_at, channel, sent, created_at)
		VALUES ($1, $2, $3, $4, false, $5)
		RETURNING `+reminderColumns,
		string(input.EventID),
		string(input.UserID),
		input.RemindAt,
		input.Channel.OrDefault().String(),
		input.CreatedAt,
	)
	rem, err = scanReminder(row)
	if err != nil {
		if db.IsForeignKeyViolation(err) {
			return rem, reminder.ErrEventOrUserDoesNotExist
		}
		return rem, err
	}
	return rem, nil
}

func (r *PgxReminderRepository) Lock(ctx context.Context, id reminder.ID) error {
	// The method works only within a DB transaction
	_, err := r.db.Exec(ctx, "SELECT id FROM reminders WHERE id = $1 FOR UPDATE", string(id))
	return err
}

func (r *PgxReminderRepository) GetByID(ctx context.Context, id reminder.ID) (rem reminder.Reminder, err error) {
	row := r.db.QueryRow(ctx, "SELECT "+reminderColumns+" FROM reminders WHERE id = $1", string(id))
	rem, err = scanReminder(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return rem, reminder.ErrReminderDoesNotExist
		}
		return rem, err
	}
	return rem, nil
}

func (r *PgxReminderRepository) ListByUser(ctx context.Context, userID user.ID) ([]reminder.Reminder, error) {
	return r.list(
		ctx,
		"SELECT "+reminderColumns+" FROM reminders WHERE user_id = $1 ORDER BY remind_at, id",
		string(userID),
	)
}

func (r *PgxReminderRepository) ListByEvent(ctx context.Context, eventID event.ID) ([]reminder.Reminder, error) {
	return r.list(
		ctx,
		"SELECT "+reminderColumns+" FROM reminders WHERE event_id = $1 ORDER BY remind_at, id",
		string(eventID),
	)
}

func (r *PgxReminderRepository) ListDue(
	ctx context.Context,
	now time.Time,
	limit uint,
) ([]reminder.Reminder, error) {
	return r.list(
		ctx,
		"SELECT "+reminderColumns+" FROM reminders WHERE NOT sent AND remind_at <= $1 ORDER BY remind_at, id LIMIT $2",
		now,
		int64(limit),
	)
}

func (r *PgxReminderRepository) Update(
	ctx context.Context,
	input reminder.UpdateInput,
) (rem reminder.Reminder, err error) {
	row := r.db.QueryRow(
		ctx,
		`UPDATE reminders SET
			remind_at = CASE WHEN $2::boolean THEN $3 ELSE remind_at END,
			channel = CASE WHEN $4::boolean THEN $5 ELSE channel END
		WHERE id = $1
		RETURNING `+reminderColumns,
		string(input.ID),
		input.DoRemindAtUpdate,
		input.RemindAt,
		input.DoChannelUpdate,
		input.Channel.OrDefault().String(),
	)
	rem, err = scanReminder(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return rem, reminder.ErrReminderDoesNotExist
		}
		return rem, err
	}
	return rem, nil
}

func (r *PgxReminderRepository) MarkSent(ctx context.Context, id reminder.ID) (bool, error) {
	tag, err := r.db.Exec(ctx, "UPDATE reminders SET sent = true WHERE id = $1 AND NOT sent", string(id))
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *PgxReminderRepository) Delete(ctx context.Context, id reminder.ID) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM reminders WHERE id = $1", string(id))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return reminder.ErrReminderDoesNotExist
	}
	return nil
}

func (r *PgxReminderRepository) DeleteByEvent(ctx context.Context, eventID event.ID) (uint, error) {
	tag, err := r.db.Exec(ctx, "DELETE FROM reminders WHERE event_id = $1", string(eventID))
	if err != nil {
		return 0, err
	}
	return uint(tag.RowsAffected()), nil
}

func (r *PgxReminderRepository) list(ctx context.Context, sql string, args ...interface{}) ([]reminder.Reminder, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reminders := make([]reminder.Reminder, 0)
	for rows.Next() {
		rem, err := scanReminder(rows)
		if err != nil {
			return reminders, err
		}
		reminders = append(reminders, rem)
	}
	return reminders, rows.Err()
}

func scanReminder(row pgx.Row) (rem reminder.Reminder, err error) {
	var (
		id, eventID, userID, channel string
	)
	err = row.Scan(&id, &eventID, &userID, &rem.RemindAt, &channel, &rem.Sent, &rem.CreatedAt)
	if err != nil {
		return rem, err
	}
	rem.Channel, err = reminder.ParseChannel(channel)
	if err != nil {
		return rem, fmt.Errorf("could not decode reminder %s: %w", id, err)
	}
	rem.ID = reminder.ID(id)
	rem.EventID = event.ID(eventID)
	rem.UserID = user.ID(userID)
	rem.RemindAt = rem.RemindAt.UTC()
	rem.CreatedAt = rem.CreatedAt.UTC()
	return rem, nil
}
