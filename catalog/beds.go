package catalog

import "doctigo/models"

// bedOptions is the fixed bed/cabin menu. Prices are per night in INR.
var bedOptions = []models.BedOption{
	{
		Type:     models.BedTypeGeneralBed,
		Price:    100,
		Features: []string{"1 bed", "1 chair", "bed table"},
		Icon:     "🛏️",
	},
	{
		Type:     models.BedTypeGeneralCabin,
		Price:    1000,
		Features: []string{"2 beds", "attached washroom", "bed table", "chair", "food x3 times"},
		Icon:     "👥",
	},
	{
		Type:     models.BedTypeVIPCabin,
		Price:    4000,
		Features: []string{
			"premium bed x2", "sofa", "Air Conditioning", "attached washroom",
			"TV", "fridge", "bed table x2", "coffee table", "2 chairs",
		},
		Icon: "🌟",
	},
}

// BedOptions returns the bed/cabin menu shown at the ask_bed step.
func BedOptions() []models.BedOption {
	out := make([]models.BedOption, len(bedOptions))
	copy(out, bedOptions)
	return out
}

// BedOptionByType looks up one menu entry by its bed type.
func BedOptionByType(t models.BedType) (models.BedOption, bool) {
	for _, opt := range bedOptions {
		if opt.Type == t {
			return opt, true
		}
	}
	return models.BedOption{}, false
}

// defaultStockLevels is the per-hospital baseline: total units and how many
// were already booked before this process started.
var defaultStockLevels = []struct {
	bedType   models.BedType
	total     int
	preBooked int
}{
	{models.BedTypeGeneralBed, 20, 12},
	{models.BedTypeGeneralCabin, 8, 5},
	{models.BedTypeVIPCabin, 2, 1},
}

// DefaultBedStocks materializes the startup inventory configuration for every
// hospital in the directory.
func (d *Directory) DefaultBedStocks() []models.BedStock {
	var stocks []models.BedStock
	for _, h := range d.hospitals {
		for _, lvl := range defaultStockLevels {
			stocks = append(stocks, models.BedStock{
				HospitalID: h.ID,
				Type:       lvl.bedType,
				Total:      lvl.total,
				PreBooked:  lvl.preBooked,
			})
		}
	}
	return stocks
}
