package ports

import "context"

// UnitOfWork define a interface para gerenciamento de transações.
// A transação do banco é a única barreira de concorrência do sistema:
// as sequências read-validate-write dos workflows rodam dentro dela.
type UnitOfWork interface {
	Begin(ctx context.Context) (context.Context, error)
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
	WithTransaction(ctx context.Context, fn func(context.Context) error) error
}
