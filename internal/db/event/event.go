package event

import (
	"context"
	"errors"

	c "volunteercal/internal/core/domain/common"
	e "volunteercal/internal/core/domain/errors"
	"volunteercal/internal/core/domain/event"
	"volunteercal/internal/db"

	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v4"
)

type PgxEventRepository struct {
	db db.DBTX
}

func NewPgxEventRepository(dbtx db.DBTX) *PgxEventRepository {
	if dbtx == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxEventRepository{db: dbtx}
}

func (r *PgxEventRepository) GetByID(ctx context.Context, id event.ID) (ev event.Event, err error) {
	var (
		eventID  string
		location pgtype.Text
	)
	err = r.db.QueryRow(
		ctx,
		"SELECT id::text, title, start_time, location FROM events WHERE id = $1",
		string(id),
	).Scan(&eventID, &ev.Title, &ev.StartTime, &location)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ev, event.ErrEventDoesNotExist
		}
		return ev, err
	}
	ev.ID = event.ID(eventID)
	ev.StartTime = ev.StartTime.UTC()
	ev.Location = c.NewOptional(location.String, location.Status == pgtype.Present && location.String != "")
	return ev, nil
}
