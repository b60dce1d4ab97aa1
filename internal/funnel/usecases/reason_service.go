package usecases

import (
	"context"
	"log/slog"
	"strings"

	"havenground-server/internal/infra/classifier"
)

// Short inputs are tagged without an external call.
const _minClassifiableLength = 10

func NewReasonService(reasonClassifier ReasonClassifier) *SimpleReasonService {
	return &SimpleReasonService{
		classifier: reasonClassifier,
	}
}

var _ ReasonService = (*SimpleReasonService)(nil)

type SimpleReasonService struct {
	classifier ReasonClassifier
}

// ValidateReason classifies a free-text selling reason. Classification is
// advisory: when the classifier cannot answer, the reason passes.
func (s *SimpleReasonService) ValidateReason(ctx context.Context, reason string) classifier.Result {
	if len(strings.TrimSpace(reason)) < _minClassifiableLength {
		return classifier.ResultDescriptionOnly
	}

	result, err := s.classifier.Classify(ctx, reason)
	if err != nil {
		slog.Warn("reason classification failed, passing through", slog.Any("error", err))
		return classifier.ResultPass
	}

	return result
}
