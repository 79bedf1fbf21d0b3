package maps

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"trip-emissions-service/internal/domain"
	"trip-emissions-service/internal/platform/obs"
	"trip-emissions-service/internal/ports"
)

type directionsResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message,omitempty"`
	Routes       []struct {
		Legs []wireLeg `json:"legs"`
	} `json:"routes"`
}

type wireLeg struct {
	Steps []wireStep `json:"steps"`
}

type wireStep struct {
	TravelMode string `json:"travel_mode"`
	Distance   struct {
		Text string `json:"text"`
	} `json:"distance"`
	Duration struct {
		Text string `json:"text"`
	} `json:"duration"`
	TransitDetails *struct {
		DepartureStop struct {
			Name string `json:"name"`
		} `json:"departure_stop"`
		ArrivalStop struct {
			Name string `json:"name"`
		} `json:"arrival_stop"`
		NumStops int `json:"num_stops"`
		Line     struct {
			Name    string `json:"name"`
			Vehicle struct {
				Name string `json:"name"`
			} `json:"vehicle"`
		} `json:"line"`
	} `json:"transit_details,omitempty"`
}

// GetTransitRoute fetches a transit-mode route via /directions/json.
//
// Any non-OK status (including ZERO_RESULTS) and an empty route list
// both mean "no transit option" and return a nil route with a nil
// error; only transport and decoding failures surface as errors.
func (g *GoogleMapsProvider) GetTransitRoute(
	ctx context.Context,
	origin domain.Coordinates,
	destination domain.Coordinates,
) (_ *ports.TransitRoute, err error) {
	defer obs.Time(ctx, "google.GetTransitRoute")(&err)

	if g.directionsCache != nil {
		route, err := g.directionsCache.Get(ctx, origin, destination)
		if err != nil {
			log.Printf("directions cache read failed: %v", err)
		} else if route != nil {
			return route, nil
		}
	}

	resp, err := g.doWithRetry(ctx, func() (*http.Request, error) {
		params := url.Values{}
		params.Set("origin", fmt.Sprintf("%f,%f", origin.Lat, origin.Lng))
		params.Set("destination", fmt.Sprintf("%f,%f", destination.Lat, destination.Lng))
		params.Set("mode", "transit")
		params.Set("units", "metric")
		return g.newRequest(ctx, "/directions/json", params)
	})
	if err != nil {
		return nil, fmt.Errorf("directions request: %w", err)
	}
	defer resp.Body.Close()

	var decoded directionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode directions response: %w", err)
	}

	if decoded.Status != "OK" || len(decoded.Routes) == 0 {
		if decoded.Status != "ZERO_RESULTS" {
			log.Printf("directions lookup returned status=%s msg=%q", decoded.Status, decoded.ErrorMessage)
		}
		return nil, nil
	}

	route := convertRoute(decoded.Routes[0].Legs)

	if g.directionsCache != nil {
		if err := g.directionsCache.Put(ctx, origin, destination, route); err != nil {
			log.Printf("directions cache write failed: %v", err)
		}
	}

	return route, nil
}

// convertRoute maps the wire payload onto the port types consumed by
// the itinerary normalizer, preserving step order.
func convertRoute(legs []wireLeg) *ports.TransitRoute {
	route := &ports.TransitRoute{Legs: make([]ports.RouteLeg, 0, len(legs))}

	for _, leg := range legs {
		out := ports.RouteLeg{Steps: make([]ports.RouteStep, 0, len(leg.Steps))}
		for _, s := range leg.Steps {
			step := ports.RouteStep{
				TravelMode:   s.TravelMode,
				DistanceText: s.Distance.Text,
				DurationText: s.Duration.Text,
			}
			if td := s.TransitDetails; td != nil {
				step.Transit = &ports.TransitDetails{
					VehicleName:   td.Line.Vehicle.Name,
					LineName:      td.Line.Name,
					DepartureStop: td.DepartureStop.Name,
					ArrivalStop:   td.ArrivalStop.Name,
					NumStops:      td.NumStops,
				}
			}
			out.Steps = append(out.Steps, step)
		}
		route.Legs = append(route.Legs, out)
	}

	return route
}
