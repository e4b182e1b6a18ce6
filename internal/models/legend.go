package models

// LegendItem is one category of the fixed legend. Special categories
// (on-call duty) bypass the weekend/holiday filter and the non-overlap rule.
// AskLabel categories prompt the user for a free-text label before commit.
type LegendItem struct {
	Label    string `json:"label"`
	Color    string `json:"color"`
	Special  bool   `json:"special,omitempty"`
	AskLabel bool   `json:"ask_label,omitempty"`
}

// LegendItems is the fixed, ordered legend configuration. Not user-editable.
var LegendItems = []LegendItem{
	{Label: "Urlop", Color: "🟥"},
	{Label: "Staże", Color: "🟦", AskLabel: true},
	{Label: "Kursy", Color: "🟦", AskLabel: true},
	{Label: "Samokształcenie", Color: "🟩"},
	{Label: "L4", Color: "🟫"},
	{Label: "Opieka nad dzieckiem", Color: "🟪"},
	{Label: "Kwarantanna", Color: "🟨"},
	{Label: "Urlop macierzyński", Color: "🩷"},
	{Label: "Urlop wychowawczy", Color: "🟢"},
	{Label: "Dyżur", Color: "⬛", Special: true},
}

// FindLegendItem looks a category up by its label.
func FindLegendItem(label string) (LegendItem, bool) {
	for _, item := range LegendItems {
		if item.Label == label {
			return item, true
		}
	}
	return LegendItem{}, false
}
