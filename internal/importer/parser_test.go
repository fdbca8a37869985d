package importer

import (
	"strings"
	"testing"
)

const specSheetHTML = `
<html><body>
<h1>2026 Performance Rackets</h1>
<table>
  <thead>
    <tr>
      <th>Model</th><th>Brand</th><th>Head Size</th><th>Weight</th>
      <th>Balance</th><th>Swingweight</th><th>Stiffness</th>
      <th>String Pattern</th><th>Power</th><th>Control</th><th>Spin</th>
    </tr>
  </thead>
  <tbody>
    <tr>
      <td>Gravity Pro</td><td>Head</td><td>100 sq in</td><td>315 g</td>
      <td>Head Light</td><td>332</td><td>62 RA</td>
      <td>18 x 20</td><td>6</td><td>9</td><td>7</td>
    </tr>
    <tr>
      <td>Extreme Tour</td><td>Head</td><td>98 sq in</td><td>305 g</td>
      <td>Even</td><td>322</td><td>64 RA</td>
      <td>16 x 19</td><td>7</td><td>7</td><td>9</td>
    </tr>
  </tbody>
</table>
</body></html>`

func TestParseSpecSheet(t *testing.T) {
	parser := NewParser()

	rows, err := parser.Parse(strings.NewReader(specSheetHTML))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if len(rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(rows))
	}
	if rows[0]["name"] != "Gravity Pro" {
		t.Errorf("Expected name 'Gravity Pro', got %q", rows[0]["name"])
	}
	if rows[0]["weight"] != "315 g" {
		t.Errorf("Expected raw weight cell kept, got %q", rows[0]["weight"])
	}
	if rows[1]["pattern"] != "16 x 19" {
		t.Errorf("Expected pattern cell, got %q", rows[1]["pattern"])
	}
}

func TestParse_NoSpecTable(t *testing.T) {
	parser := NewParser()

	html := `<html><body><table><tr><th>Date</th><th>Price</th></tr>
		<tr><td>2026-01-01</td><td>199</td></tr></table></body></html>`

	if _, err := parser.Parse(strings.NewReader(html)); err == nil {
		t.Error("Expected an error for a non-spec table")
	}
}

func TestTransformSpecRows(t *testing.T) {
	parser := NewParser()
	transformer := NewTransformer()

	rows, err := parser.Parse(strings.NewReader(specSheetHTML))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	rackets, err := transformer.Transform(rows)
	if err != nil {
		t.Fatalf("Transform failed: %v", err)
	}

	if len(rackets) != 2 {
		t.Fatalf("Expected 2 rackets, got %d", len(rackets))
	}

	gravity := rackets[0]
	if gravity.Name != "Gravity Pro" || gravity.Brand != "Head" {
		t.Errorf("Unexpected name/brand: %q/%q", gravity.Name, gravity.Brand)
	}
	if gravity.HeadSizeSqIn == nil || *gravity.HeadSizeSqIn != 100 {
		t.Error("Expected head size 100")
	}
	if gravity.UnstrungWeightG == nil || *gravity.UnstrungWeightG != 315 {
		t.Error("Expected weight 315")
	}
	if gravity.BalanceType == nil || *gravity.BalanceType != "HL" {
		t.Error("Expected head-light balance code")
	}
	if gravity.StringPattern == nil || *gravity.StringPattern != "18x20" {
		t.Errorf("Expected normalized pattern 18x20, got %v", gravity.StringPattern)
	}
	if gravity.Control != 9 {
		t.Errorf("Expected control 9, got %d", gravity.Control)
	}
	if !gravity.IsActive {
		t.Error("Expected imported rackets to default to active")
	}
}

func TestTransform_BrandFallsBackToNamePrefix(t *testing.T) {
	transformer := NewTransformer()

	rackets, err := transformer.Transform([]SpecRow{
		{"name": "Yonex Vcore 100", "weight": "300g"},
	})
	if err != nil {
		t.Fatalf("Transform failed: %v", err)
	}
	if rackets[0].Brand != "Yonex" {
		t.Errorf("Expected brand from name prefix, got %q", rackets[0].Brand)
	}
}

func TestTransform_MissingNameRejected(t *testing.T) {
	transformer := NewTransformer()

	if _, err := transformer.Transform([]SpecRow{{"weight": "300g"}}); err == nil {
		t.Error("Expected an error for a row without a name")
	}
}

func TestTransform_OutOfRangeScoresDropped(t *testing.T) {
	transformer := NewTransformer()

	rackets, err := transformer.Transform([]SpecRow{
		{"name": "Head Boom", "power": "15", "control": "8"},
	})
	if err != nil {
		t.Fatalf("Transform failed: %v", err)
	}
	if rackets[0].Power != 5 {
		t.Errorf("Expected out-of-range power dropped to default, got %d", rackets[0].Power)
	}
	if rackets[0].Control != 8 {
		t.Errorf("Expected control 8, got %d", rackets[0].Control)
	}
}
