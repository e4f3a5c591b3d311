package reports

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"

	"Dealio/internal/notify"
)

// SubjectReportCreated is the notification subject for new reports
const SubjectReportCreated = "report.created"

type reportService struct {
	repo      Repository
	targets   TargetValidator
	publisher notify.Publisher
	validate  *validator.Validate
	logger    *slog.Logger
}

// NewService creates a report service. A nil publisher disables notifications.
func NewService(repo Repository, targets TargetValidator, publisher notify.Publisher, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	if publisher == nil {
		publisher = notify.Noop{}
	}
	return &reportService{
		repo:      repo,
		targets:   targets,
		publisher: publisher,
		validate:  validator.New(validator.WithRequiredStructEnabled()),
		logger:    logger,
	}
}

func (s *reportService) ListReasons(ctx context.Context) ([]string, error) {
	reasons, err := s.repo.ListReasons(ctx)
	if err != nil {
		s.logger.Error("failed to list reasons", "error", err)
		return nil, fmt.Errorf("failed to list reasons: %w", err)
	}
	names := make([]string, 0, len(reasons))
	for _, r := range reasons {
		names = append(names, r.Name)
	}
	return names, nil
}

func (s *reportService) CreateReport(ctx context.Context, reporter string, req CreateReportRequest) (*Report, error) {
	reporter = strings.TrimSpace(reporter)
	if reporter == "" {
		return nil, ErrMissingReporter
	}
	if err := s.validateRequest(req); err != nil {
		return nil, err
	}

	reason, err := s.repo.GetReasonByName(ctx, req.Reason)
	if err != nil {
		if errors.Is(err, ErrUnknownReason) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to resolve reason: %w", err)
	}

	if err := s.requireTarget(ctx, req); err != nil {
		return nil, err
	}

	report := &Report{
		ReasonID:    reason.ID,
		Reason:      reason.Name,
		PostID:      req.PostID,
		CommentID:   req.CommentID,
		Reporter:    reporter,
		Description: req.Description,
	}

	err = s.repo.Create(ctx, report, func(ctx context.Context, stored *Report) error {
		return s.publisher.Publish(ctx, SubjectReportCreated, stored)
	})
	if err != nil {
		s.logger.Error("failed to create report",
			"error", err,
			"reporter", reporter,
			"reason", reason.Name)
		return nil, fmt.Errorf("failed to create report: %w", err)
	}

	s.logger.Info("report created",
		"report_id", report.ID,
		"reporter", reporter,
		"reason", reason.Name)
	return report, nil
}

func (s *reportService) validateRequest(req CreateReportRequest) error {
	if (req.PostID == nil) == (req.CommentID == nil) {
		return NewValidationError("post_id", "exactly one of post_id or comment_id is required")
	}

	err := s.validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		switch fe.Field() {
		case "PostID":
			return NewValidationError("post_id", "must be a positive id")
		case "CommentID":
			return NewValidationError("comment_id", "must be a positive id")
		case "Reason":
			if fe.Tag() == "required" {
				return NewValidationError("reason", "reason is required")
			}
			return NewValidationError("reason", "reason is too long")
		default:
			return NewValidationError(strings.ToLower(fe.Field()), fe.Error())
		}
	}
	return NewValidationError("body", err.Error())
}

func (s *reportService) requireTarget(ctx context.Context, req CreateReportRequest) error {
	var (
		exists bool
		err    error
	)
	if req.PostID != nil {
		exists, err = s.targets.PostExists(ctx, *req.PostID)
	} else {
		exists, err = s.targets.CommentExists(ctx, *req.CommentID)
	}
	if err != nil {
		return fmt.Errorf("failed to verify report target: %w", err)
	}
	if !exists {
		return ErrTargetNotFound
	}
	return nil
}
