package planner

// Template identifiers accepted by CreateTrip and ApplyPackingTemplate.
const (
	TemplateNone     = "none"
	TemplateDomestic = "domestic"
	TemplateOverseas = "overseas"
	TemplateDayTrip  = "daytrip"
	TemplateCamp     = "camp"
)

// TodoTemplateItem is one pre-populated task in a trip template.
type TodoTemplateItem struct {
	Text     string
	Priority Priority
}

// PackingTemplateItem is one pre-populated entry in a packing template.
type PackingTemplateItem struct {
	Name     string
	Category string
}

// Packing categories used by the built-in templates.
const (
	PackingCategoryValuables   = "valuables"
	PackingCategoryElectronics = "electronics"
	PackingCategoryClothing    = "clothing"
	PackingCategoryToiletries  = "toiletries"
	PackingCategoryMedicine    = "medicine"
	PackingCategoryOther       = "other"
)

var todoTemplates = map[string][]TodoTemplateItem{
	TemplateDomestic: {
		{Text: "Book accommodation", Priority: PriorityHigh},
		{Text: "Research transportation", Priority: PriorityHigh},
		{Text: "Make a packing list", Priority: PriorityMedium},
		{Text: "Research sightseeing spots", Priority: PriorityMedium},
		{Text: "Think about a souvenir list", Priority: PriorityLow},
		{Text: "Check the weather forecast", Priority: PriorityLow},
	},
	TemplateOverseas: {
		{Text: "Check passport expiration date", Priority: PriorityHigh},
		{Text: "Book flights", Priority: PriorityHigh},
		{Text: "Book a hotel", Priority: PriorityHigh},
		{Text: "Buy travel insurance", Priority: PriorityHigh},
		{Text: "Exchange money for local currency", Priority: PriorityMedium},
		{Text: "Arrange Wi-Fi rental", Priority: PriorityMedium},
		{Text: "Make a packing list", Priority: PriorityMedium},
		{Text: "Plan sightseeing", Priority: PriorityLow},
	},
	TemplateDayTrip: {
		{Text: "Decide on a destination", Priority: PriorityMedium},
		{Text: "Research transportation", Priority: PriorityMedium},
		{Text: "Reserve a restaurant", Priority: PriorityLow},
		{Text: "Check belongings", Priority: PriorityLow},
	},
}

var packingTemplates = map[string][]PackingTemplateItem{
	TemplateDomestic: {
		{Name: "Wallet", Category: PackingCategoryValuables},
		{Name: "Phone", Category: PackingCategoryValuables},
		{Name: "Charger", Category: PackingCategoryElectronics},
		{Name: "Change of clothes", Category: PackingCategoryClothing},
		{Name: "Underwear", Category: PackingCategoryClothing},
		{Name: "Pajamas", Category: PackingCategoryClothing},
		{Name: "Toothbrush", Category: PackingCategoryToiletries},
		{Name: "Towel", Category: PackingCategoryToiletries},
		{Name: "Regular medicine", Category: PackingCategoryMedicine},
		{Name: "Reusable bag", Category: PackingCategoryOther},
	},
	TemplateOverseas: {
		{Name: "Passport", Category: PackingCategoryValuables},
		{Name: "Flight tickets", Category: PackingCategoryValuables},
		{Name: "Wallet and credit cards", Category: PackingCategoryValuables},
		{Name: "Phone", Category: PackingCategoryValuables},
		{Name: "Travel insurance card", Category: PackingCategoryValuables},
		{Name: "Charger", Category: PackingCategoryElectronics},
		{Name: "Plug adapter", Category: PackingCategoryElectronics},
		{Name: "Wi-Fi router", Category: PackingCategoryElectronics},
		{Name: "Change of clothes", Category: PackingCategoryClothing},
		{Name: "Underwear", Category: PackingCategoryClothing},
		{Name: "Pajamas", Category: PackingCategoryClothing},
		{Name: "Toothbrush", Category: PackingCategoryToiletries},
		{Name: "Shampoo", Category: PackingCategoryToiletries},
		{Name: "Regular medicine", Category: PackingCategoryMedicine},
		{Name: "Stomach medicine", Category: PackingCategoryMedicine},
		{Name: "Local currency", Category: PackingCategoryOther},
		{Name: "Guidebook", Category: PackingCategoryOther},
	},
	TemplateDayTrip: {
		{Name: "Wallet", Category: PackingCategoryValuables},
		{Name: "Phone", Category: PackingCategoryValuables},
		{Name: "Mobile battery", Category: PackingCategoryElectronics},
		{Name: "Drinks", Category: PackingCategoryOther},
		{Name: "Rain gear", Category: PackingCategoryOther},
	},
	TemplateCamp: {
		{Name: "Tent", Category: PackingCategoryOther},
		{Name: "Sleeping bag", Category: PackingCategoryOther},
		{Name: "Sleeping mat", Category: PackingCategoryOther},
		{Name: "Lantern", Category: PackingCategoryElectronics},
		{Name: "Burner and stove", Category: PackingCategoryOther},
		{Name: "Cookware set", Category: PackingCategoryOther},
		{Name: "Food and drinks", Category: PackingCategoryOther},
		{Name: "Change of clothes", Category: PackingCategoryClothing},
		{Name: "Warm layers", Category: PackingCategoryClothing},
		{Name: "Toothbrush", Category: PackingCategoryToiletries},
		{Name: "Insect repellent", Category: PackingCategoryMedicine},
		{Name: "First aid kit", Category: PackingCategoryMedicine},
	},
}

// TodoTemplate returns the named trip todo template. Unknown names report
// ok=false; CreateTrip treats them the same as "none".
func TodoTemplate(name string) ([]TodoTemplateItem, bool) {
	items, ok := todoTemplates[name]
	return items, ok
}

// PackingTemplate returns the named packing template.
func PackingTemplate(name string) ([]PackingTemplateItem, bool) {
	items, ok := packingTemplates[name]
	return items, ok
}
