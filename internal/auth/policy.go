package auth

import "context"

type sessionContextKey struct{}

// ContextWithSession stores the authenticated session for downstream handlers.
func ContextWithSession(ctx context.Context, session *Session) context.Context {
	return context.WithValue(ctx, sessionContextKey{}, session)
}

func SessionFromContext(ctx context.Context) *Session {
	session, _ := ctx.Value(sessionContextKey{}).(*Session)
	return session
}

// CanViewClient tells whether the session may read a client's progress and
// stats. Coaches and admins see everyone, a client only themselves.
func CanViewClient(session *Session, clientID string) bool {
	if session == nil {
		return false
	}
	switch session.Role {
	case RoleAdmin, RoleCoach:
		return true
	case RoleClient:
		return session.ClientID != "" && session.ClientID == clientID
	default:
		return false
	}
}

// CanRecordFor tells whether the session may record a training session on a
// client's behalf.
func CanRecordFor(session *Session, clientID string) bool {
	return CanViewClient(session, clientID)
}

// CanManageRoster guards roster-wide reports and plan/client administration.
func CanManageRoster(session *Session) bool {
	if session == nil {
		return false
	}
	return session.Role == RoleAdmin || session.Role == RoleCoach
}
