package nakama

import (
	cm "ticketroute/internal/citymap"
	"ticketroute/internal/manager"
	"ticketroute/internal/player"
)

// actionResponse is the uniform JSON shape returned for every action opcode,
// per the external interface boundary's response convention.
type actionResponse struct {
	Success      bool    `json:"success"`
	ErrorMessage *string `json:"error_message"`
}

func successResponse() actionResponse {
	return actionResponse{Success: true}
}

func errorResponse(err error) actionResponse {
	msg := err.Error()
	return actionResponse{Success: false, ErrorMessage: &msg}
}

type changeNameRequest struct {
	NewName string `json:"new_name"`
}

type changeColorRequest struct {
	NewColor string `json:"new_color"`
}

type setReadyRequest struct {
	IsReady bool `json:"is_ready"`
}

type selectDestinationCardsRequest struct {
	Decisions []bool `json:"destination_cards_decisions"`
}

type drawOpenTrainCardRequest struct {
	CardIndex int `json:"card_index"`
}

type claimRouteRequest struct {
	Route              [2]int   `json:"route"`
	ParallelRouteIndex int      `json:"parallel_route_index"`
	Cards              []string `json:"cards"`
}

// toPair converts a wire [city_a, city_b] int pair into a citymap.Pair.
func toPair(route [2]int) cm.Pair {
	return cm.Pair{A: cm.City(route[0]), B: cm.City(route[1])}
}

// toHand parses the wire lower-case color names of a claim-route request
// into the TrainColor hand the player action expects.
func toHand(names []string) ([]cm.TrainColor, error) {
	hand := make([]cm.TrainColor, len(names))
	for i, name := range names {
		c, err := cm.ParseTrainColor(name)
		if err != nil {
			return nil, err
		}
		hand[i] = c
	}
	return hand, nil
}

func toColor(name string) (player.Color, error) {
	for _, c := range player.AllColors {
		if string(c) == name {
			return c, nil
		}
	}
	return "", manager.ErrUnknownColor
}
