package auth

import "context"

// The authenticated user's id rides the request context so handlers can
// attribute quizzes, review sessions, and submissions to their owner.

type subjectKey struct{}

func WithSubject(ctx context.Context, sub string) context.Context {
	return context.WithValue(ctx, subjectKey{}, sub)
}

func SubjectFromContext(ctx context.Context) string {
	s, _ := ctx.Value(subjectKey{}).(string)
	return s
}
