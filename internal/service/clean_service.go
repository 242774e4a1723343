//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package service

import (
	"context"
	"errors"
	"fmt"

	"igclean/internal/hashutil"
	"igclean/internal/urlutil"
	"igclean/pkg/igclean"
	"igclean/pkg/logger"
	"igclean/pkg/sanitizer"
)

// MaxBatchSize bounds a single CleanBatch call.
const MaxBatchSize = 50

// BatchItem is the outcome for one input of a batch, in input order.
type BatchItem struct {
	Input  string
	Result *igclean.Result
	Err    error
}

type CleanService interface {
	Clean(ctx context.Context, input string) (*igclean.Result, error)
	CleanText(ctx context.Context, text string) (*igclean.Result, error)
	CleanBatch(ctx context.Context, inputs []string) ([]BatchItem, error)
}

type cleanService struct{}

func NewCleanService() CleanService {
	return &cleanService{}
}

func (s *cleanService) Clean(ctx context.Context, input string) (*igclean.Result, error) {
	result, err := igclean.ValidateAndClean(input)
	if err != nil {
		logCleanFailure(input, err)
		return nil, err
	}
	if result == nil {
		logger.Debug("clean skipped", "module", "service", "action", "clean", "resource", "url", "result", "empty")
		return nil, nil
	}
	logger.Info("url cleaned", "module", "service", "action", "clean", "resource", "url", "result", "ok", "input_hash", hashutil.Short(input), "modified", result.WasModified)
	logger.Debug("tracking segment", "module", "service", "removed", result.Removed)
	return result, nil
}

func (s *cleanService) CleanText(ctx context.Context, text string) (*igclean.Result, error) {
	candidate := igclean.ExtractURL(text)
	plain := ""
	if candidate == "" {
		plain = sanitizer.PlainText(text)
		candidate = igclean.ExtractURL(plain)
	}
	candidate = urlutil.TrimTrailingPunctuation(candidate)
	if candidate == "" {
		candidate = plain
	}
	return s.Clean(ctx, candidate)
}

func (s *cleanService) CleanBatch(ctx context.Context, inputs []string) ([]BatchItem, error) {
	if len(inputs) == 0 || len(inputs) > MaxBatchSize {
		return nil, fmt.Errorf("batch size %d: %w", len(inputs), ErrInvalid)
	}
	items := make([]BatchItem, 0, len(inputs))
	for _, input := range inputs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		result, err := s.Clean(ctx, input)
		items = append(items, BatchItem{Input: input, Result: result, Err: err})
	}
	logger.Info("batch cleaned", "module", "service", "action", "clean", "resource", "batch", "result", "ok", "count", len(items))
	return items, nil
}

func logCleanFailure(input string, err error) {
	inputHash := hashutil.Short(input)
	switch {
	case errors.Is(err, igclean.ErrInvalidDomain):
		logger.Info("clean rejected", "module", "service", "action", "clean", "resource", "url", "result", "invalid_domain", "input_hash", inputHash)
	case errors.Is(err, igclean.ErrMalformedURL):
		logger.Warn("clean failed", "module", "service", "action", "clean", "resource", "url", "result", "malformed", "input_hash", inputHash, "error", err)
	default:
		logger.Error("clean failed", "module", "service", "action", "clean", "resource", "url", "result", "failed", "input_hash", inputHash, "error", err)
	}
}
