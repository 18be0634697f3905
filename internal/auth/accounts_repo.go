package auth

import (
	"context"
	"errors"

	"github.com/coachdesk/coachdesk/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrAccountNotFound = errors.New("account not found")

type AccountsRepo struct {
	db *pgxpool.Pool
}

func NewAccountsRepo(db *pgxpool.Pool) *AccountsRepo {
	return &AccountsRepo{
		db: db,
	}
}

func (r *AccountsRepo) GetByUsername(ctx context.Context, username string) (_ *Account, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.accounts.getbyusername")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("account.username", username))

	var account Account
	var role string
	var clientID *string
	err = r.db.QueryRow(
		ctx,
		`SELECT username, password_hash, role, client_id FROM account WHERE username = $1;`,
		username,
	).Scan(&account.Username, &account.PasswordHash, &role, &clientID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}

	account.Role = Role(role)
	if clientID != nil {
		account.ClientID = *clientID
	}

	return &account, nil
}
