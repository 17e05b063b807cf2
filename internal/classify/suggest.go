package classify

import "strings"

// Canned description paragraphs, one per service area plus a generic
// fallback. Returned verbatim by SuggestDescription.
const (
	descRoads   = "There is a significant issue with the road surface here. It's causing traffic delays and posing a safety hazard to vehicles and pedestrians alike. Immediate repair is requested to prevent further deterioration."
	descWaste   = "A large accumulation of uncollected waste has been observed here. This is creating unsanitary conditions and attracting pests. Regular collection needs to be reinstated or a cleanup crew dispatched."
	descWater   = "I've noticed a persistent leak/issue with the local water infrastructure. Clean water is being wasted and it could potentially damage the surrounding area. Please investigate and repair."
	descLights  = "The street lighting in this area is malfunctioning or absent. This makes the area feel unsafe at night and reduces visibility for drivers. Please replace the bulbs or check the power supply."
	descParks   = "The public park/green space here requires maintenance. Overgrown vegetation or broken facilities are making it difficult for the community to enjoy this space."
	descGeneral = "I am reporting a public utility issue that needs attention from the city authorities. Please review the attached details and provide a timeline for resolution."
)

// suggestGroup maps title keywords to a canned paragraph. Checked in
// order, first hit wins.
type suggestGroup struct {
	keywords  []string
	paragraph string
}

var suggestGroups = []suggestGroup{
	{[]string{"road", "pothole", "infrastructure"}, descRoads},
	{[]string{"trash", "garbage", "waste"}, descWaste},
	{[]string{"water", "pipe", "leak"}, descWater},
	{[]string{"light", "power", "electricity"}, descLights},
	{[]string{"park", "tree", "garden"}, descParks},
}

// SuggestDescription returns a prefilled description paragraph for a
// complaint title, or a generic paragraph when no keyword matches.
func SuggestDescription(title string) string {
	t := strings.ToLower(title)
	for _, g := range suggestGroups {
		if containsAny(t, g.keywords) {
			return g.paragraph
		}
	}
	return descGeneral
}
