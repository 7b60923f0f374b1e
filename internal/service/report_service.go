package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"lifenumber/reporthub/internal/generation"
	"lifenumber/reporthub/internal/model"
	"lifenumber/reporthub/internal/numerology"
	"lifenumber/reporthub/internal/repository"
)

// birthdayLayout is the only accepted input format for birth dates.
const birthdayLayout = "2006-01-02"

const historyLimit = 50

// Calculation is the result of the quick-calculate operation: the life
// number and age without generating a report.
type Calculation struct {
	LifeNumber int  `json:"life_number"`
	IsMaster   bool `json:"is_master"`
	Age        int  `json:"age"`
}

type ReportService interface {
	// Calculate derives the life number and age for a birthday without
	// calling the generation service or persisting anything.
	Calculate(birthday string) (*Calculation, error)
	// Generate runs the full pipeline: parse, derive, build the prompt,
	// call the generation service, persist. Nothing is persisted unless
	// every prior step succeeded.
	Generate(ctx context.Context, birthday, gender, question string) (*model.Report, error)
	GetReport(ctx context.Context, id uint) (*model.Report, error)
	History(ctx context.Context) ([]model.ReportSummary, error)
}

type reportService struct {
	reportRepo repository.ReportRepository
	cache      repository.ReportCache
	generator  generation.Client
	logger     *zap.Logger
	now        func() time.Time
}

func NewReportService(
	reportRepo repository.ReportRepository,
	cache repository.ReportCache,
	generator generation.Client,
	logger *zap.Logger,
) ReportService {
	return &reportService{
		reportRepo: reportRepo,
		cache:      cache,
		generator:  generator,
		logger:     logger,
		now:        time.Now,
	}
}

func (s *reportService) Calculate(birthday string) (*Calculation, error) {
	birth, err := time.Parse(birthdayLayout, birthday)
	if err != nil {
		return nil, ErrInvalidBirthday
	}

	lifeNumber := numerology.Compute(birth)
	return &Calculation{
		LifeNumber: lifeNumber,
		IsMaster:   numerology.IsMaster(lifeNumber),
		Age:        numerology.AgeAt(birth, s.now()),
	}, nil
}

func (s *reportService) Generate(ctx context.Context, birthday, gender, question string) (*model.Report, error) {
	birth, err := time.Parse(birthdayLayout, birthday)
	if err != nil {
		return nil, ErrInvalidBirthday
	}

	age := numerology.AgeAt(birth, s.now())
	lifeNumber := numerology.Compute(birth)
	genReq := numerology.BuildPrompt(lifeNumber, gender, age, question)

	content, err := s.generator.Generate(ctx, genReq)
	if err != nil {
		s.logger.Warn("report generation failed",
			zap.Int("life_number", lifeNumber),
			zap.Error(err))
		return nil, err
	}

	report := &model.Report{
		LifeNumber:    lifeNumber,
		Birthday:      birthday,
		Gender:        gender,
		Age:           age,
		Question:      question,
		ReportContent: content,
		CreatedAt:     s.now(),
	}
	if err := s.reportRepo.Create(ctx, report); err != nil {
		return nil, fmt.Errorf("persist report: %w", err)
	}

	s.logger.Info("report generated",
		zap.Uint("report_id", report.ID),
		zap.Int("life_number", lifeNumber),
		zap.Int("age", age))
	return report, nil
}

func (s *reportService) GetReport(ctx context.Context, id uint) (*model.Report, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, id); err == nil && cached != nil {
			return cached, nil
		}
	}

	report, err := s.reportRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrReportNotFound
		}
		return nil, fmt.Errorf("load report: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, report); err != nil {
			s.logger.Warn("report cache write failed", zap.Uint("report_id", id), zap.Error(err))
		}
	}
	return report, nil
}

func (s *reportService) History(ctx context.Context) ([]model.ReportSummary, error) {
	return s.reportRepo.ListRecent(ctx, historyLimit)
}

var _ ReportService = (*reportService)(nil)
