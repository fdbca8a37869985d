package services

import (
	"fmt"
	"strings"

	"github.com/courtlab/racketfit/internal/models"
	"github.com/courtlab/racketfit/internal/repository"
)

// catalogServiceImpl implements CatalogService
type catalogServiceImpl struct {
	repos *repository.Repositories
}

// newCatalogService creates a new catalog service
func newCatalogService(repos *repository.Repositories) CatalogService {
	return &catalogServiceImpl{repos: repos}
}

// GetByID retrieves a single racket
func (s *catalogServiceImpl) GetByID(id int64) (*models.Racket, error) {
	return s.repos.Racket.GetByID(id)
}

// GetAll retrieves rackets matching the filters
func (s *catalogServiceImpl) GetAll(filters repository.RacketFilters) ([]models.Racket, error) {
	return s.repos.Racket.GetAll(filters)
}

// Create creates a new catalog entry from a form. Name and brand are
// required; everything else falls back to defaults.
func (s *catalogServiceImpl) Create(form *models.RacketForm) (*models.Racket, error) {
	if form == nil {
		return nil, fmt.Errorf("racket data is required")
	}

	name := strings.TrimSpace(deref(form.Name))
	brand := strings.TrimSpace(deref(form.Brand))
	if name == "" || brand == "" {
		return nil, fmt.Errorf("name and brand are required")
	}

	racket := &models.Racket{
		Name:     name,
		Brand:    brand,
		Power:    5,
		Control:  5,
		Spin:     5,
		IsActive: true,
	}
	applyForm(racket, form)

	if err := validateScores(racket); err != nil {
		return nil, err
	}

	if err := s.repos.Racket.Create(racket); err != nil {
		return nil, err
	}

	return racket, nil
}

// Update applies a partial update to an existing catalog entry. Only
// fields present in the form change.
func (s *catalogServiceImpl) Update(id int64, form *models.RacketForm) (*models.Racket, error) {
	if form == nil {
		return nil, fmt.Errorf("racket data is required")
	}

	racket, err := s.repos.Racket.GetByID(id)
	if err != nil {
		return nil, err
	}

	if form.Name != nil {
		name := strings.TrimSpace(*form.Name)
		if name == "" {
			return nil, fmt.Errorf("name cannot be empty")
		}
		racket.Name = name
	}
	if form.Brand != nil {
		brand := strings.TrimSpace(*form.Brand)
		if brand == "" {
			return nil, fmt.Errorf("brand cannot be empty")
		}
		racket.Brand = brand
	}
	applyForm(racket, form)

	if err := validateScores(racket); err != nil {
		return nil, err
	}

	if err := s.repos.Racket.Update(racket); err != nil {
		return nil, err
	}

	return racket, nil
}

// Delete removes a catalog entry
func (s *catalogServiceImpl) Delete(id int64) error {
	return s.repos.Racket.Delete(id)
}

// ImportRackets inserts a batch of parsed rackets in one transaction and
// returns the number inserted.
func (s *catalogServiceImpl) ImportRackets(rackets []models.Racket) (int, error) {
	if len(rackets) == 0 {
		return 0, nil
	}

	for i := range rackets {
		if strings.TrimSpace(rackets[i].Name) == "" || strings.TrimSpace(rackets[i].Brand) == "" {
			return 0, fmt.Errorf("imported racket %d missing name or brand", i+1)
		}
		if err := validateScores(&rackets[i]); err != nil {
			return 0, fmt.Errorf("imported racket %q: %w", rackets[i].Name, err)
		}
	}

	err := s.repos.Tx.WithTransaction(func(repos *repository.Repositories) error {
		for i := range rackets {
			if err := repos.Racket.Create(&rackets[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return len(rackets), nil
}

// applyForm copies present form fields onto the racket. Name and brand
// are handled by the callers because their rules differ between create
// and update.
func applyForm(racket *models.Racket, form *models.RacketForm) {
	if form.HeadSizeSqIn != nil {
		racket.HeadSizeSqIn = form.HeadSizeSqIn
	}
	if form.LengthMm != nil {
		racket.LengthMm = form.LengthMm
	}
	if form.UnstrungWeightG != nil {
		racket.UnstrungWeightG = form.UnstrungWeightG
	}
	if form.BalanceType != nil {
		racket.BalanceType = form.BalanceType
	}
	if form.Swingweight != nil {
		racket.Swingweight = form.Swingweight
	}
	if form.StiffnessRa != nil {
		racket.StiffnessRa = form.StiffnessRa
	}
	if form.StringPattern != nil {
		racket.StringPattern = form.StringPattern
	}
	if form.BeamWidthMm != nil {
		racket.BeamWidthMm = form.BeamWidthMm
	}
	if form.Power != nil {
		racket.Power = *form.Power
	}
	if form.Control != nil {
		racket.Control = *form.Control
	}
	if form.Spin != nil {
		racket.Spin = *form.Spin
	}
	if form.PowerScore != nil {
		racket.PowerScore = form.PowerScore
	}
	if form.ControlScore != nil {
		racket.ControlScore = form.ControlScore
	}
	if form.SpinScore != nil {
		racket.SpinScore = form.SpinScore
	}
	if form.ComfortScore != nil {
		racket.ComfortScore = form.ComfortScore
	}
	if form.ManeuverScore != nil {
		racket.ManeuverScore = form.ManeuverScore
	}
	if form.LevelMin != nil {
		racket.LevelMin = form.LevelMin
	}
	if form.LevelMax != nil {
		racket.LevelMax = form.LevelMax
	}
	if form.Tags != nil {
		racket.Tags = models.Tags(form.Tags)
	}
	if form.IsActive != nil {
		racket.IsActive = *form.IsActive
	}
}

// validateScores checks the 1-10 range on base and extended scores
func validateScores(racket *models.Racket) error {
	check := func(name string, v int) error {
		if v < 1 || v > 10 {
			return fmt.Errorf("%s must be between 1 and 10, got %d", name, v)
		}
		return nil
	}

	if err := check("power", racket.Power); err != nil {
		return err
	}
	if err := check("control", racket.Control); err != nil {
		return err
	}
	if err := check("spin", racket.Spin); err != nil {
		return err
	}

	optional := map[string]*int{
		"powerScore":    racket.PowerScore,
		"controlScore":  racket.ControlScore,
		"spinScore":     racket.SpinScore,
		"comfortScore":  racket.ComfortScore,
		"maneuverScore": racket.ManeuverScore,
	}
	for name, v := range optional {
		if v == nil {
			continue
		}
		if err := check(name, *v); err != nil {
			return err
		}
	}

	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
