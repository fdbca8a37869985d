package database

import (
	"fmt"

	"github.com/courtlab/racketfit/internal/models"
	"github.com/courtlab/racketfit/internal/repository"
)

func iptr(v int) *int       { return &v }
func sptr(v string) *string { return &v }

// SeedCatalog returns the starter racket catalog used for fresh
// installations and the offline matching tool.
func SeedCatalog() []models.Racket {
	return []models.Racket{
		{
			Name: "Wilson Pro Staff RF97", Brand: "Wilson",
			HeadSizeSqIn: iptr(97), LengthMm: iptr(686), UnstrungWeightG: iptr(340),
			BalanceType: sptr(models.BalanceHeadLight), Swingweight: iptr(335),
			StiffnessRa: iptr(68), StringPattern: sptr("16x19"), BeamWidthMm: sptr("21.5"),
			Power: 7, Control: 9, Spin: 6,
			PowerScore: iptr(7), ControlScore: iptr(9), SpinScore: iptr(6),
			ComfortScore: iptr(5), ManeuverScore: iptr(4),
			LevelMin: iptr(3), LevelMax: iptr(4),
			Tags: models.Tags{"heavy", "control", "attacking"}, IsActive: true,
		},
		{
			Name: "Babolat Pure Aero", Brand: "Babolat",
			HeadSizeSqIn: iptr(100), LengthMm: iptr(685), UnstrungWeightG: iptr(300),
			BalanceType: sptr(models.BalanceHeadLight), Swingweight: iptr(324),
			StiffnessRa: iptr(67), StringPattern: sptr("16x19"), BeamWidthMm: sptr("23-26-23"),
			Power: 8, Control: 6, Spin: 9,
			PowerScore: iptr(8), ControlScore: iptr(6), SpinScore: iptr(9),
			ComfortScore: iptr(6), ManeuverScore: iptr(7),
			LevelMin: iptr(2), LevelMax: iptr(4),
			Tags: models.Tags{"spin", "attacking", "tour"}, IsActive: true,
		},
		{
			Name: "Babolat Pure Drive", Brand: "Babolat",
			HeadSizeSqIn: iptr(100), LengthMm: iptr(685), UnstrungWeightG: iptr(300),
			BalanceType: sptr(models.BalanceHeadLight), Swingweight: iptr(320),
			StiffnessRa: iptr(71), StringPattern: sptr("16x19"), BeamWidthMm: sptr("23-26-23"),
			Power: 9, Control: 6, Spin: 7,
			PowerScore: iptr(9), ControlScore: iptr(6), SpinScore: iptr(7),
			ComfortScore: iptr(5), ManeuverScore: iptr(7),
			LevelMin: iptr(2), LevelMax: iptr(4),
			Tags: models.Tags{"power", "all-round"}, IsActive: true,
		},
		{
			Name: "Yonex Percept 97", Brand: "Yonex",
			HeadSizeSqIn: iptr(97), LengthMm: iptr(685), UnstrungWeightG: iptr(310),
			BalanceType: sptr(models.BalanceHeadLight), Swingweight: iptr(320),
			StiffnessRa: iptr(62), StringPattern: sptr("16x19"), BeamWidthMm: sptr("21"),
			Power: 6, Control: 9, Spin: 6,
			PowerScore: iptr(6), ControlScore: iptr(9), SpinScore: iptr(6),
			ComfortScore: iptr(7), ManeuverScore: iptr(6),
			LevelMin: iptr(3), LevelMax: iptr(4),
			Tags: models.Tags{"control", "soft-feel"}, IsActive: true,
		},
		{
			Name: "Yonex Ezone 100", Brand: "Yonex",
			HeadSizeSqIn: iptr(100), LengthMm: iptr(685), UnstrungWeightG: iptr(300),
			BalanceType: sptr(models.BalanceHeadLight), Swingweight: iptr(318),
			StiffnessRa: iptr(68), StringPattern: sptr("16x19"), BeamWidthMm: sptr("23.5-26-22"),
			Power: 8, Control: 7, Spin: 7,
			PowerScore: iptr(8), ControlScore: iptr(7), SpinScore: iptr(7),
			ComfortScore: iptr(6), ManeuverScore: iptr(7),
			LevelMin: iptr(2), LevelMax: iptr(4),
			Tags: models.Tags{"attacking", "all-round"}, IsActive: true,
		},
		{
			Name: "Wilson Blade 98 v9", Brand: "Wilson",
			HeadSizeSqIn: iptr(98), LengthMm: iptr(685), UnstrungWeightG: iptr(305),
			BalanceType: sptr(models.BalanceHeadLight), Swingweight: iptr(320),
			StiffnessRa: iptr(64), StringPattern: sptr("16x19"), BeamWidthMm: sptr("21"),
			Power: 7, Control: 8, Spin: 7,
			PowerScore: iptr(7), ControlScore: iptr(8), SpinScore: iptr(7),
			ComfortScore: iptr(7), ManeuverScore: iptr(7),
			LevelMin: iptr(2), LevelMax: iptr(4),
			Tags: models.Tags{"tour", "balanced"}, IsActive: true,
		},
	}
}

// SeedIfEmpty inserts the starter catalog when the rackets table has no rows
func SeedIfEmpty(repos *repository.Repositories) error {
	count, err := repos.Racket.Count()
	if err != nil {
		return fmt.Errorf("failed to check catalog size: %w", err)
	}
	if count > 0 {
		return nil
	}

	return repos.Tx.WithTransaction(func(txRepos *repository.Repositories) error {
		for _, racket := range SeedCatalog() {
			r := racket
			if err := txRepos.Racket.Create(&r); err != nil {
				return err
			}
		}
		return nil
	})
}
