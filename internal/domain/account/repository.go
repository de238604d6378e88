package account

import "context"

// Filter narrows account listings.
type Filter struct {
	IsEmployee *bool
	IsAdmin    *bool
	IsActive   *bool
	IsVerified *bool
	Page       int
	PageSize   int
}

type Repository interface {
	Save(ctx context.Context, account *Account) error
	Update(ctx context.Context, account *Account) error
	GetByID(ctx context.Context, id uint) (*Account, error)
	GetByEmail(ctx context.Context, email string) (*Account, error)
	List(ctx context.Context, filter Filter) ([]*Account, int64, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
