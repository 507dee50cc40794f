package borrower

import "context"

type Repository interface {
	GetByUserID(ctx context.Context, userID string) (*Profile, error)
	Save(ctx context.Context, p *Profile) error
	// IncrementSuccessfulLoans bumps the track record by one. Creates the
	// profile row if the borrower never filled one in.
	IncrementSuccessfulLoans(ctx context.Context, userID string) error
}
