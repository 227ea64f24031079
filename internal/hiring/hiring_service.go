package hiring

import (
	"context"
	"strings"

	"go-hris-backoffice/internal/events"
	hiringerrors "go-hris-backoffice/internal/hiring/errors"
	"go-hris-backoffice/internal/messaging/kafka"
	"go-hris-backoffice/internal/shared/apperror"
	"go-hris-backoffice/internal/shared/contextutil"
	"go-hris-backoffice/internal/shared/patch"
	"go-hris-backoffice/internal/shared/timeutil"
	"go-hris-backoffice/internal/tenantstore"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	PostingCollection     = tenantstore.Collection{Kind: "posting", NotFound: hiringerrors.ErrPostingNotFound}
	CandidateCollection   = tenantstore.Collection{Kind: "candidate", NotFound: hiringerrors.ErrCandidateNotFound}
	ApplicationCollection = tenantstore.Collection{Kind: "application", NotFound: hiringerrors.ErrApplicationNotFound}
)

//go:generate mockgen -source=hiring_service.go -destination=mock/hiring_service_mock.go -package=mock
type Service interface {
	CreatePosting(ctx context.Context, tenantID string, req CreatePostingRequest) (PostingResponse, error)
	GetPostings(ctx context.Context, tenantID string) ([]PostingResponse, error)
	GetPostingByID(ctx context.Context, tenantID, id string) (PostingResponse, error)
	UpdatePosting(ctx context.Context, tenantID, id string, req UpdatePostingRequest) (PostingResponse, error)

	CreateCandidate(ctx context.Context, tenantID string, req CreateCandidateRequest) (CandidateResponse, error)
	GetCandidates(ctx context.Context, tenantID string) ([]CandidateResponse, error)
	GetCandidateByID(ctx context.Context, tenantID, id string) (CandidateResponse, error)

	CreateApplication(ctx context.Context, tenantID string, req CreateApplicationRequest) (ApplicationResponse, error)
	GetApplications(ctx context.Context, tenantID string) ([]ApplicationResponse, error)
	GetApplicationByID(ctx context.Context, tenantID, id string) (ApplicationResponse, error)
	UpdateApplication(ctx context.Context, tenantID, id string, req UpdateApplicationRequest) (ApplicationResponse, error)
}

// Stores groups the three hiring collections.
type Stores struct {
	Postings     tenantstore.Store[Posting]
	Candidates   tenantstore.Store[Candidate]
	Applications tenantstore.Store[Application]
}

type service struct {
	postings     tenantstore.Store[Posting]
	candidates   tenantstore.Store[Candidate]
	applications tenantstore.Store[Application]
	publisher    kafka.Publisher
	logger       *zap.Logger
}

func NewService(stores Stores, publisher kafka.Publisher, logger ...*zap.Logger) Service {
	l := zap.L().Named("hiring.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("hiring.service")
	}
	if publisher == nil {
		publisher = kafka.NoopPublisher{}
	}
	return &service{
		postings:     stores.Postings,
		candidates:   stores.Candidates,
		applications: stores.Applications,
		publisher:    publisher,
		logger:       l,
	}
}

// Postings

func (s *service) CreatePosting(ctx context.Context, tenantID string, req CreatePostingRequest) (PostingResponse, error) {
	s.logger.Debug("create posting requested",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("tenant_id", tenantID),
		zap.String("title", req.Title),
	)

	if err := tenantstore.CheckTenant(tenantID); err != nil {
		return PostingResponse{}, err
	}
	if strings.TrimSpace(req.Title) == "" {
		return PostingResponse{}, apperror.RequiredField("title")
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	now := timeutil.Now()
	p := Posting{
		ID:          uuid.NewString(),
		TenantID:    tenantID,
		Title:       req.Title,
		Description: req.Description,
		StoreID:     req.StoreID,
		IsActive:    isActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.postings.Append(ctx, tenantID, p); err != nil {
		s.logger.Error("create posting persist failed", zap.Error(err))
		return PostingResponse{}, err
	}

	s.logger.Info("create posting success", zap.String("posting_id", p.ID), zap.String("tenant_id", tenantID))
	return mapPostingToResponse(p), nil
}

func (s *service) GetPostings(ctx context.Context, tenantID string) ([]PostingResponse, error) {
	postings, err := s.postings.List(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	return mapList(postings, mapPostingToResponse), nil
}

func (s *service) GetPostingByID(ctx context.Context, tenantID, id string) (PostingResponse, error) {
	p, err := s.postings.FindByID(ctx, tenantID, id)
	if err != nil {
		return PostingResponse{}, err
	}
	return mapPostingToResponse(p), nil
}

// UpdatePosting bumps updatedAt even when the patch is empty.
func (s *service) UpdatePosting(ctx context.Context, tenantID, id string, req UpdatePostingRequest) (PostingResponse, error) {
	s.logger.Debug("update posting requested",
		zap.String("tenant_id", tenantID),
		zap.String("posting_id", id),
	)

	p, err := s.postings.Update(ctx, tenantID, id, func(p *Posting) error {
		patch.ApplyRequired(req.Title, &p.Title)
		patch.ApplyOptional(req.Description, &p.Description)
		patch.ApplyOptional(req.StoreID, &p.StoreID)
		patch.ApplyRequired(req.IsActive, &p.IsActive)
		p.UpdatedAt = timeutil.Now()
		return nil
	})
	if err != nil {
		s.logger.Warn("update posting failed", zap.String("posting_id", id), zap.Error(err))
		return PostingResponse{}, err
	}

	s.logger.Info("update posting success", zap.String("posting_id", p.ID))
	return mapPostingToResponse(p), nil
}

// Candidates

func (s *service) CreateCandidate(ctx context.Context, tenantID string, req CreateCandidateRequest) (CandidateResponse, error) {
	s.logger.Debug("create candidate requested",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("tenant_id", tenantID),
	)

	if err := tenantstore.CheckTenant(tenantID); err != nil {
		return CandidateResponse{}, err
	}
	if strings.TrimSpace(req.FirstName) == "" {
		return CandidateResponse{}, apperror.RequiredField("firstName")
	}
	if strings.TrimSpace(req.LastName) == "" {
		return CandidateResponse{}, apperror.RequiredField("lastName")
	}

	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}

	now := timeutil.Now()
	c := Candidate{
		ID:        uuid.NewString(),
		TenantID:  tenantID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		ResumeURL: req.ResumeURL,
		Tags:      tags,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.candidates.Append(ctx, tenantID, c); err != nil {
		s.logger.Error("create candidate persist failed", zap.Error(err))
		return CandidateResponse{}, err
	}

	s.logger.Info("create candidate success", zap.String("candidate_id", c.ID), zap.String("tenant_id", tenantID))
	return mapCandidateToResponse(c), nil
}

func (s *service) GetCandidates(ctx context.Context, tenantID string) ([]CandidateResponse, error) {
	candidates, err := s.candidates.List(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	return mapList(candidates, mapCandidateToResponse), nil
}

func (s *service) GetCandidateByID(ctx context.Context, tenantID, id string) (CandidateResponse, error) {
	c, err := s.candidates.FindByID(ctx, tenantID, id)
	if err != nil {
		return CandidateResponse{}, err
	}
	return mapCandidateToResponse(c), nil
}

// Applications

// CreateApplication resolves the candidate before the posting.
func (s *service) CreateApplication(ctx context.Context, tenantID string, req CreateApplicationRequest) (ApplicationResponse, error) {
	s.logger.Debug("create application requested",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("tenant_id", tenantID),
		zap.String("candidate_id", req.CandidateID),
		zap.String("posting_id", req.PostingID),
	)

	if err := tenantstore.CheckTenant(tenantID); err != nil {
		return ApplicationResponse{}, err
	}
	if _, err := s.candidates.FindByID(ctx, tenantID, req.CandidateID); err != nil {
		s.logger.Warn("create application candidate lookup failed", zap.Error(err))
		return ApplicationResponse{}, err
	}
	if _, err := s.postings.FindByID(ctx, tenantID, req.PostingID); err != nil {
		s.logger.Warn("create application posting lookup failed", zap.Error(err))
		return ApplicationResponse{}, err
	}
	if req.Score != nil && !validScore(*req.Score) {
		return ApplicationResponse{}, hiringerrors.ErrScoreOutOfRange
	}

	// Only an absent stage takes the default; an explicit "" is kept.
	stage := DefaultStage
	if req.Stage != nil {
		stage = *req.Stage
	}

	now := timeutil.Now()
	a := Application{
		ID:          uuid.NewString(),
		TenantID:    tenantID,
		CandidateID: req.CandidateID,
		PostingID:   req.PostingID,
		Stage:       stage,
		Score:       req.Score,
		Notes:       req.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.applications.Append(ctx, tenantID, a); err != nil {
		s.logger.Error("create application persist failed", zap.Error(err))
		return ApplicationResponse{}, err
	}

	s.logger.Info("create application success",
		zap.String("application_id", a.ID),
		zap.String("tenant_id", tenantID),
		zap.String("stage", a.Stage),
	)
	return mapApplicationToResponse(a), nil
}

func (s *service) GetApplications(ctx context.Context, tenantID string) ([]ApplicationResponse, error) {
	applications, err := s.applications.List(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	return mapList(applications, mapApplicationToResponse), nil
}

func (s *service) GetApplicationByID(ctx context.Context, tenantID, id string) (ApplicationResponse, error) {
	a, err := s.applications.FindByID(ctx, tenantID, id)
	if err != nil {
		return ApplicationResponse{}, err
	}
	return mapApplicationToResponse(a), nil
}

// UpdateApplication validates score before touching the record, so a bad
// score leaves every field as it was.
func (s *service) UpdateApplication(ctx context.Context, tenantID, id string, req UpdateApplicationRequest) (ApplicationResponse, error) {
	s.logger.Debug("update application requested",
		zap.String("tenant_id", tenantID),
		zap.String("application_id", id),
	)

	var from string
	a, err := s.applications.Update(ctx, tenantID, id, func(a *Application) error {
		if req.Score.HasValue() && !validScore(req.Score.Value) {
			return hiringerrors.ErrScoreOutOfRange
		}
		from = a.Stage
		patch.ApplyRequired(req.Stage, &a.Stage)
		patch.ApplyOptional(req.Score, &a.Score)
		patch.ApplyOptional(req.Notes, &a.Notes)
		a.UpdatedAt = timeutil.Now()
		return nil
	})
	if err != nil {
		s.logger.Warn("update application failed", zap.String("application_id", id), zap.Error(err))
		return ApplicationResponse{}, err
	}

	if a.Stage != from {
		kafka.Emit(ctx, s.publisher, s.logger, events.HiringApplicationTopic, events.ApplicationStageChanged,
			a.TenantID, "application", a.ID, events.ApplicationStageChangedData{
				ApplicationID: a.ID,
				CandidateID:   a.CandidateID,
				PostingID:     a.PostingID,
				From:          from,
				To:            a.Stage,
			})
	}

	s.logger.Info("update application success",
		zap.String("application_id", a.ID),
		zap.String("stage", a.Stage),
	)
	return mapApplicationToResponse(a), nil
}
