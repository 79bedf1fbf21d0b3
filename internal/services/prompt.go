package services

import (
	"fmt"
	"strings"
	"trip-emissions-service/internal/domain"
)

// Fixed instruction appended to every narrative prompt. Tone, length cap
// and formatting requirements live here so both prompt variants share them.
const promptInstruction = "Assess how efficient this trip is in terms of CO2 emissions " +
	"and mention one greener alternative if a clearly better option exists. " +
	"Answer in at most 120 words of plain prose, without markdown or bullet points."

// BuildPrompt formats the computed figures into the narrative prompt.
// When transit segments exist the prompt describes the itinerary;
// otherwise it describes the selected transport profile. The two
// variants are the pipeline's only coupling to the text service.
func BuildPrompt(
	origin domain.Location,
	destination domain.Location,
	profile domain.TransportProfile,
	distanceKm float64,
	emissionsKg float64,
	segments []domain.TransitSegment,
) string {
	var b strings.Builder

	fmt.Fprintf(&b, "A trip from %s to %s covers roughly %.2f km (straight-line).\n",
		origin.Address, destination.Address, distanceKm)

	if len(segments) > 0 {
		b.WriteString("Public transit itinerary:\n")
		for _, s := range segments {
			fmt.Fprintf(&b, "- %s from %s to %s (%s)", s.Mode, s.DepartureStop, s.ArrivalStop, s.Distance)
			if s.WalkingBefore != "" {
				fmt.Fprintf(&b, ", walk before: %s", s.WalkingBefore)
			}
			if s.WalkingAfter != "" {
				fmt.Fprintf(&b, ", walk after: %s", s.WalkingAfter)
			}
			b.WriteString("\n")
		}
	} else {
		fmt.Fprintf(&b, "Transport mode: %s (%.0f g CO2/km).\n", profile.Name, profile.GramsPerKm)
	}

	fmt.Fprintf(&b, "Estimated emissions: %.2f kg CO2.\n\n", emissionsKg)
	b.WriteString(promptInstruction)

	return b.String()
}
