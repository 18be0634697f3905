package auth

import "context"

var _ Checker = (*LoginChecker)(nil)
var _ Checker = (*LoginTestChecker)(nil)

type Checker interface {
	SessionFor(ctx context.Context, token string) (*Session, error)
}
