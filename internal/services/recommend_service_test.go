package services

import (
	"testing"

	"github.com/courtlab/racketfit/internal/database"
	"github.com/courtlab/racketfit/internal/logger"
	"github.com/courtlab/racketfit/internal/matching"
	"github.com/courtlab/racketfit/pkg/config"
)

func newTestRecommendService(t *testing.T) (RecommendService, *mockHistoryRepository) {
	t.Helper()

	repos, racketRepo, historyRepo, _ := newMockRepositories()
	for _, r := range database.SeedCatalog() {
		racket := r
		if err := racketRepo.Create(&racket); err != nil {
			t.Fatalf("Failed to seed mock catalog: %v", err)
		}
	}

	cfg := &config.Config{RecommendTopK: 5}
	return newRecommendService(repos, cfg, logger.NewSimpleLogger()), historyRepo
}

func TestRecommend_FullFlow(t *testing.T) {
	svc, history := newTestRecommendService(t)

	resp, err := svc.Recommend(&RecommendRequest{
		HandMetrics: map[string]interface{}{
			"handLengthMm": 195.0,
			"handWidthMm":  92.0,
		},
		Survey: map[string]interface{}{
			"level":  "advanced",
			"pain":   "none",
			"swing":  "fast",
			"styles": []interface{}{"power"},
		},
	})
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}

	if len(resp.Rackets) != 5 {
		t.Errorf("Expected 5 ranked rackets, got %d", len(resp.Rackets))
	}
	if resp.Rackets[0].NormalizedScore != 100.0 {
		t.Errorf("Expected top score 100.0, got %.1f", resp.Rackets[0].NormalizedScore)
	}
	if resp.HandProfile.SizeCategory == nil || *resp.HandProfile.SizeCategory != "LARGE" {
		t.Error("Expected LARGE hand size from 195 mm length")
	}
	if !resp.StyleProfile.StylePower {
		t.Error("Expected power style in profile")
	}
	if resp.String.TensionMainKg <= 0 {
		t.Error("Expected a string tension recommendation")
	}

	// One log row per ranked candidate, plus measurement and survey
	if len(history.logs) != len(resp.Rackets) {
		t.Errorf("Expected %d log rows, got %d", len(resp.Rackets), len(history.logs))
	}
	if len(history.measurements) != 1 {
		t.Errorf("Expected 1 saved measurement, got %d", len(history.measurements))
	}
	if len(history.surveys) != 1 {
		t.Errorf("Expected 1 saved survey, got %d", len(history.surveys))
	}

	for i, l := range history.logs {
		if l.RankInResult != i+1 {
			t.Errorf("Expected rank %d, got %d", i+1, l.RankInResult)
		}
		if l.AlgorithmVersion != matching.AlgorithmVersion {
			t.Errorf("Expected algorithm version %q, got %q", matching.AlgorithmVersion, l.AlgorithmVersion)
		}
		if l.HandProfileJSON == "" || l.StyleProfileJSON == "" {
			t.Error("Expected profile snapshots on log rows")
		}
	}
}

func TestRecommend_EmptyRequest(t *testing.T) {
	svc, history := newTestRecommendService(t)

	resp, err := svc.Recommend(nil)
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}

	if len(resp.Rackets) == 0 {
		t.Error("Expected ranked rackets even with no input")
	}
	if resp.HandProfile.Exists {
		t.Error("Expected no hand profile for empty input")
	}

	// An empty measurement is not persisted, the survey still is
	if len(history.measurements) != 0 {
		t.Errorf("Expected no saved measurements, got %d", len(history.measurements))
	}
	if len(history.surveys) != 1 {
		t.Errorf("Expected 1 saved survey, got %d", len(history.surveys))
	}
	for _, l := range history.logs {
		if l.HandMetricsID != nil {
			t.Error("Expected nil hand metrics reference for empty measurement")
		}
	}
}

func TestRecommend_MalformedFieldsIgnored(t *testing.T) {
	svc, _ := newTestRecommendService(t)

	resp, err := svc.Recommend(&RecommendRequest{
		HandMetrics: map[string]interface{}{
			"handLengthMm": "not-a-number",
			"handWidthMm":  true,
		},
		Survey: map[string]interface{}{
			"level":  42,
			"styles": "power",
		},
	})
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}

	if resp.HandProfile.Exists {
		t.Error("Expected malformed hand fields treated as absent")
	}
	if resp.StyleProfile.Level != nil {
		t.Error("Expected malformed level treated as absent")
	}
	if resp.StyleProfile.LevelScore != 2 {
		t.Errorf("Expected default level score 2, got %d", resp.StyleProfile.LevelScore)
	}
}

func TestRecommend_PersistenceFailureDoesNotFailRequest(t *testing.T) {
	repos, racketRepo, historyRepo, _ := newMockRepositories()
	for _, r := range database.SeedCatalog() {
		racket := r
		if err := racketRepo.Create(&racket); err != nil {
			t.Fatalf("Failed to seed mock catalog: %v", err)
		}
	}
	historyRepo.saveErr = repositorySaveError{}

	svc := newRecommendService(repos, &config.Config{RecommendTopK: 5}, logger.NewSimpleLogger())

	resp, err := svc.Recommend(&RecommendRequest{
		Survey: map[string]interface{}{"level": "beginner"},
	})
	if err != nil {
		t.Fatalf("Expected recommendation despite persistence failure, got %v", err)
	}
	if len(resp.Rackets) == 0 {
		t.Error("Expected ranked rackets despite persistence failure")
	}
}

type repositorySaveError struct{}

func (repositorySaveError) Error() string { return "storage unavailable" }
