package settingsservice

//go:generate mockgen -source=settingsservice.go -destination=mock_settingsservice.go -package=settingsservice

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/GlebRadaev/dailymine/internal/domain"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

var ErrValidation = errors.New("invalid commission settings")

type Repo interface {
	Get(ctx context.Context, keyname string) (*domain.CommissionSetting, error)
	CreateDefault(ctx context.Context, keyname string) (*domain.CommissionSetting, error)
	Upsert(ctx context.Context, setting *domain.CommissionSetting) (*domain.CommissionSetting, error)
}

type levels struct {
	StartingLevel float64 `validate:"gte=0,lte=100"`
	EndingLevel   float64 `validate:"gte=0,lte=100,gtefield=StartingLevel"`
}

type Service struct {
	repo     Repo
	validate *validator.Validate
}

func New(repo Repo) *Service {
	return &Service{
		repo:     repo,
		validate: validator.New(),
	}
}

// GetSettings returns the commission row as a one-element list, creating a
// zeroed row on first access.
func (s *Service) GetSettings(ctx context.Context) ([]domain.CommissionSetting, error) {
	setting, err := s.repo.Get(ctx, domain.DailyCommissionKey)
	if err != nil {
		zap.L().Error("can't get commission settings", zap.Error(err))
		return nil, err
	}
	if setting == nil {
		setting, err = s.repo.CreateDefault(ctx, domain.DailyCommissionKey)
		if err != nil {
			zap.L().Error("can't create default commission settings", zap.Error(err))
			return nil, err
		}
		zap.L().Info("default commission settings created")
	}
	return []domain.CommissionSetting{*setting}, nil
}

// UpdateSettings takes pointers so that an absent bound is told apart from 0.
func (s *Service) UpdateSettings(ctx context.Context, startingLevel, endingLevel *float64) (*domain.CommissionSetting, error) {
	if startingLevel == nil {
		return nil, fmt.Errorf("%w: startingLevel must be a number", ErrValidation)
	}
	if endingLevel == nil {
		return nil, fmt.Errorf("%w: endingLevel must be a number", ErrValidation)
	}
	l := levels{StartingLevel: *startingLevel, EndingLevel: *endingLevel}
	if err := s.validate.Struct(l); err != nil {
		zap.L().Info("rejected commission settings", zap.Float64("starting_level", l.StartingLevel),
			zap.Float64("ending_level", l.EndingLevel), zap.Error(err))
		return nil, fmt.Errorf("%w: %s", ErrValidation, describe(err))
	}

	setting, err := s.repo.Upsert(ctx, &domain.CommissionSetting{
		Keyname:       domain.DailyCommissionKey,
		StartingLevel: l.StartingLevel,
		EndingLevel:   l.EndingLevel,
	})
	if err != nil {
		zap.L().Error("can't save commission settings", zap.Error(err))
		return nil, err
	}
	zap.L().Info("commission settings updated", zap.Float64("starting_level", setting.StartingLevel),
		zap.Float64("ending_level", setting.EndingLevel))
	return setting, nil
}

func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err.Error()
	}
	fe := verrs[0]
	switch fe.Tag() {
	case "gtefield":
		return "endingLevel must be greater than or equal to startingLevel"
	default:
		return fmt.Sprintf("%s must be between 0 and 100", lowerFirst(fe.Field()))
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
