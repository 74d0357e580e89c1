package profile

import (
	"context"
	"errors"

	c "volunteercal/internal/core/domain/common"
	e "volunteercal/internal/core/domain/errors"
	"volunteercal/internal/core/domain/profile"
	"volunteercal/internal/core/domain/user"
	"volunteercal/internal/db"

	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v4"
)

type PgxProfileRepository struct {
	db db.DBTX
}

func NewPgxProfileRepository(dbtx db.DBTX) *PgxProfileRepository {
	if dbtx == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxProfileRepository{db: dbtx}
}

func (r *PgxProfileRepository) GetByID(ctx context.Context, id user.ID) (p profile.Profile, err error) {
	var (
		profileID, email string
		fullName         pgtype.Text
	)
	err = r.db.QueryRow(
		ctx,
		"SELECT id::text, email, full_name FROM profiles WHERE id = $1",
		string(id),
	).Scan(&profileID, &email, &fullName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return p, profile.ErrProfileDoesNotExist
		}
		return p, err
	}
	p.ID = user.ID(profileID)
	p.Email = c.NewEmail(email)
	p.FullName = c.OptionalString(fullName.String)
	return p, nil
}
