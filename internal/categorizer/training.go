package categorizer

import "fintrack/internal/core"

// bundledSamples is the built-in training set used whenever no persisted
// model can be loaded. It covers every substantive category; Miscellaneous
// is the fallback and needs no examples.
func bundledSamples() []Sample {
	return []Sample{
		{Text: "pizza delivery", Label: string(core.CategoryFoodDining)},
		{Text: "grocery store", Label: string(core.CategoryFoodDining)},
		{Text: "restaurant bill", Label: string(core.CategoryFoodDining)},
		{Text: "coffee shop", Label: string(core.CategoryFoodDining)},
		{Text: "gas station", Label: string(core.CategoryTransportation)},
		{Text: "uber ride", Label: string(core.CategoryTransportation)},
		{Text: "bus ticket", Label: string(core.CategoryTransportation)},
		{Text: "car maintenance", Label: string(core.CategoryTransportation)},
		{Text: "amazon purchase", Label: string(core.CategoryShopping)},
		{Text: "clothing store", Label: string(core.CategoryShopping)},
		{Text: "electronics", Label: string(core.CategoryShopping)},
		{Text: "movie tickets", Label: string(core.CategoryEntertainment)},
		{Text: "concert", Label: string(core.CategoryEntertainment)},
		{Text: "streaming service", Label: string(core.CategoryEntertainment)},
		{Text: "electricity bill", Label: string(core.CategoryBillsUtilities)},
		{Text: "phone bill", Label: string(core.CategoryBillsUtilities)},
		{Text: "internet", Label: string(core.CategoryBillsUtilities)},
		{Text: "doctor visit", Label: string(core.CategoryHealthcare)},
		{Text: "pharmacy", Label: string(core.CategoryHealthcare)},
		{Text: "dental", Label: string(core.CategoryHealthcare)},
		{Text: "tuition", Label: string(core.CategoryEducation)},
		{Text: "books", Label: string(core.CategoryEducation)},
		{Text: "hotel", Label: string(core.CategoryTravel)},
		{Text: "flight", Label: string(core.CategoryTravel)},
		{Text: "haircut", Label: string(core.CategoryPersonalCare)},
		{Text: "cosmetics", Label: string(core.CategoryPersonalCare)},
		{Text: "home depot", Label: string(core.CategoryHomeGarden)},
		{Text: "garden supplies", Label: string(core.CategoryHomeGarden)},
	}
}
