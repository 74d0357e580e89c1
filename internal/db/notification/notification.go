package notification

import (
	"context"
	"fmt"

	c "volunteercal/internal/core/domain/common"
	e "volunteercal/internal/core/domain/errors"
	"volunteercal/internal/core/domain/event"
	"volunteercal/internal/core/domain/notification"
	"volunteercal/internal/core/domain/user"
	"volunteercal/internal/db"

	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v4"
)

const notificationColumns = `id::text, user_id::text, type, title, message,
	related_event_id::text, related_group_id::text, is_read, created_at`

type PgxNotificationRepository struct {
	db db.DBTX
}

func NewPgxNotificationRepository(dbtx db.DBTX) *PgxNotificationRepository {
	if dbtx == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxNotificationRepository{db: dbtx}
}

func (r *PgxNotificationRepository) Create(
	ctx context.Context,
	input notification.CreateInput,
) (n notification.Notification, err error) {
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO notifications (user_id, type, title, message, related_event_id, related_group_id, is_read, created_at)
		VALUES ($1, $2, $3, $4, $5::uuid, $6::uuid, false, $7)
		RETURNING `+notificationColumns,
		string(input.UserID),
		input.Type.String(),
		input.Title,
		db.NullString(input.Message.Value, input.Message.IsPresent),
		db.NullString(string(input.RelatedEventID.Value), input.RelatedEventID.IsPresent),
		db.NullString(string(input.RelatedGroupID.Value), input.RelatedGroupID.IsPresent),
		input.CreatedAt,
	)
	n, err = scanNotification(row)
	if err != nil {
		if db.IsForeignKeyViolation(err) {
			return n, fmt.Errorf("user %s: %w", input.UserID, err)
		}
		return n, err
	}
	return n, nil
}

func (r *PgxNotificationRepository) ListByUser(
	ctx context.Context,
	options notification.ReadOptions,
) ([]notification.Notification, error) {
	var limit pgtype.Int8
	limit.Status = pgtype.Null
	if options.Limit > 0 {
		limit = pgtype.Int8{Int: int64(options.Limit), Status: pgtype.Present}
	}
	rows, err := r.db.Query(
		ctx,
		`SELECT `+notificationColumns+` FROM notifications
		WHERE user_id = $1 AND (NOT $2::boolean OR NOT is_read)
		ORDER BY created_at DESC, id
		LIMIT $3 OFFSET $4`,
		string(options.UserID),
		options.UnreadOnly,
		limit,
		int64(options.Offset),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notifications := make([]notification.Notification, 0)
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return notifications, err
		}
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}

func (r *PgxNotificationRepository) CountUnread(ctx context.Context, userID user.ID) (uint, error) {
	var count int64
	err := r.db.QueryRow(
		ctx,
		"SELECT count(*) FROM notifications WHERE user_id = $1 AND NOT is_read",
		string(userID),
	).Scan(&count)
	return uint(count), err
}

func (r *PgxNotificationRepository) MarkRead(ctx context.Context, id notification.ID, userID user.ID) error {
	tag, err := r.db.Exec(
		ctx,
		"UPDATE notifications SET is_read = true WHERE id = $1 AND user_id = $2",
		string(id),
		string(userID),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return notification.ErrNotificationDoesNotExist
	}
	return nil
}

func (r *PgxNotificationRepository) MarkAllRead(ctx context.Context, userID user.ID) (uint, error) {
	tag, err := r.db.Exec(
		ctx,
		"UPDATE notifications SET is_read = true WHERE user_id = $1 AND NOT is_read",
		string(userID),
	)
	if err != nil {
		return 0, err
	}
	return uint(tag.RowsAffected()), nil
}

func (r *PgxNotificationRepository) Delete(ctx context.Context, id notification.ID, userID user.ID) error {
	tag, err := r.db.Exec(
		ctx,
		"DELETE FROM notifications WHERE id = $1 AND user_id = $2",
		string(id),
		string(userID),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return notification.ErrNotificationDoesNotExist
	}
	return nil
}

func scanNotification(row pgx.Row) (n notification.Notification, err error) {
	var (
		id, userID, notificationType          string
		message, relatedEventID, relatedGroup pgtype.Text
	)
	err = row.Scan(
		&id,
		&userID,
		&notificationType,
		&n.Title,
		&message,
		&relatedEventID,
		&relatedGroup,
		&n.IsRead,
		&n.CreatedAt,
	)
	if err != nil {
		return n, err
	}
	n.Type, err = notification.ParseType(notificationType)
	if err != nil {
		return n, fmt.Errorf("could not decode notification %s: %w", id, err)
	}
	n.ID = notification.ID(id)
	n.UserID = user.ID(userID)
	n.Message = c.NewOptional(message.String, message.Status == pgtype.Present)
	n.RelatedEventID = c.NewOptional(event.ID(relatedEventID.String), relatedEventID.Status == pgtype.Present)
	n.RelatedGroupID = c.NewOptional(notification.GroupID(relatedGroup.String), relatedGroup.Status == pgtype.Present)
	n.CreatedAt = n.CreatedAt.UTC()
	return n, nil
}
