package main

import (
	"fmt"

	"github.com/courtlab/racketfit/internal/database"
	"github.com/courtlab/racketfit/internal/matching"
	"github.com/courtlab/racketfit/internal/models"
)

func main() {
	fmt.Println("🎾 RacketFit Matching Engine Test")
	fmt.Println("=================================")

	engine := matching.NewEngine()
	catalog := database.SeedCatalog()
	fmt.Printf("Loaded %d rackets from the seed catalog\n", len(catalog))

	// Simulate an aggressive baseliner with a fast swing and no arm trouble
	fmt.Println("\n🔹 Testing Power Player Profile")
	fmt.Println("===============================")

	powerPayload := map[string]interface{}{
		"handLengthMm": 195.0,
		"handWidthMm":  92.0,
		"fingerRatios": []interface{}{1.05, 1.0, 0.96},
	}
	powerSurvey := map[string]interface{}{
		"level":  "advanced",
		"styles": []interface{}{"power", "spin"},
		"swing":  "fast",
		"pain":   "none",
	}

	runProfile("Power Player", engine, catalog, powerPayload, powerSurvey)

	// Simulate a club player managing tennis elbow
	fmt.Println("\n🔸 Testing Comfort-First Profile")
	fmt.Println("================================")

	comfortPayload := map[string]interface{}{
		"handLengthMm": 165.0,
		"handWidthMm":  78.0,
	}
	comfortSurvey := map[string]interface{}{
		"level":  "beginner",
		"styles": []interface{}{"control"},
		"pain":   "often",
	}

	runProfile("Comfort First", engine, catalog, comfortPayload, comfortSurvey)

	// Survey only, no hand measurement at all
	fmt.Println("\n🔹 Testing Survey-Only Profile")
	fmt.Println("==============================")

	runProfile("Survey Only", engine, catalog, nil, map[string]interface{}{
		"level": "intermediate",
		"swing": "normal",
	})

	fmt.Println("\n🎾 Matching Engine Test Complete!")
	fmt.Println("=================================")
}

func runProfile(name string, engine *matching.Engine, catalog []models.Racket, handPayload, surveyPayload map[string]interface{}) {
	hand := matching.BuildHandProfile(models.HandMeasurementFromPayload(handPayload))
	style := matching.BuildStyleProfile(models.SurveyResponseFromPayload(surveyPayload))

	result := engine.Match(hand, style, catalog)

	fmt.Printf("\nProfile: %s\n", name)
	if hand.Exists {
		if hand.SizeCategory != nil {
			fmt.Printf("Hand Size: %s", *hand.SizeCategory)
		}
		if hand.GripSizeLabel != nil {
			fmt.Printf(" (grip %s)", *hand.GripSizeLabel)
		}
		fmt.Println()
	} else {
		fmt.Println("Hand Size: not measured")
	}
	fmt.Printf("Weights: power %.1f | control %.1f | spin %.1f | comfort %.1f\n",
		style.PowerWeight, style.ControlWeight, style.SpinWeight, style.ComfortWeight)
	fmt.Printf("Weight Preference: %s\n", style.WeightPreference)

	fmt.Println("\nRanked Rackets:")
	fmt.Println("---------------")
	for i, c := range result.Rackets {
		weight := "n/a"
		if c.Weight != nil {
			weight = fmt.Sprintf("%dg", *c.Weight)
		}
		fmt.Printf("%d. %s %s (%s) - score %.1f (raw %.1f)\n", i+1, c.Brand, c.Name, weight, c.NormalizedScore, c.RawScore)
		if c.Reason != "" {
			fmt.Printf("   %s\n", c.Reason)
		}
	}

	fmt.Println("\nString Recommendation:")
	fmt.Printf("Type: %s (%s)\n", result.String.StringType, result.String.StringLabel)
	fmt.Printf("Tension: %.1f kg / %d lbs\n", result.String.TensionMainKg, result.String.TensionMainLbs)
	fmt.Printf("Reason: %s\n", result.String.Reason)
}
