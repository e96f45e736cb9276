package resolver

import (
	"github.com/griffnb/core-resolve/internal/diagnostic"
	"github.com/griffnb/core-resolve/internal/domain"
)

// RequireSuccessBody resolves the success body of an operation that must
// have one. When classification finds no qualifying response, a single
// expected-success-response diagnostic targeting the operation is reported
// through sink and the shared domain.UnresolvedBody placeholder is returned,
// so the caller's pipeline keeps processing the remaining operations. An
// error is returned only for a malformed type graph.
func RequireSuccessBody(op *domain.Operation, sink diagnostic.Sink) (*domain.ObjectType, error) {
	body, ok, err := SuccessBody(op)
	if err != nil {
		return nil, err
	}
	if ok {
		return body, nil
	}

	if sink != nil {
		sink.Report(diagnostic.Diagnostic{
			Code:      diagnostic.ExpectedSuccessResponse,
			Operation: op,
		})
	}

	return domain.UnresolvedBody, nil
}
