package usecases

import "context"

// Transactor runs a function inside a database transaction. Writes
// performed through repositories inside fn share the transaction.
type Transactor interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
