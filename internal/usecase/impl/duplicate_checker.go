package impl

import (
	"context"

	"authgate/internal/domain/entity"
	"authgate/internal/domain/repository"
)

// duplicateChecker answers how many stored users already hold an email.
type duplicateChecker struct {
	userRepo repository.UserRepository
}

func newDuplicateChecker(userRepo repository.UserRepository) *duplicateChecker {
	return &duplicateChecker{userRepo: userRepo}
}

// CountByEmail returns the number of users whose normalized email matches.
// A repository failure is returned as-is and never reads as zero.
func (c *duplicateChecker) CountByEmail(ctx context.Context, email string) (int, error) {
	users, err := c.userRepo.FindByEmail(ctx, entity.NormalizeEmail(email))
	if err != nil {
		return 0, err
	}

	return len(users), nil
}
