package ports

import "context"

// TxManager scopes fn to an atomic unit of work for one player's record.
// Either every write inside fn commits or none does. Invocations for
// different players must not block each other.
type TxManager interface {
	RunInPlayerTx(ctx context.Context, playerID string, fn func(ctx context.Context) error) error
}
