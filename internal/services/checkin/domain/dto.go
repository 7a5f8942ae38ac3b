package domain

import "healthdash/internal/core/streak"

// Result is what a successful submission produced
type Result struct {
	ID           string
	Day          string
	Scale        Scale
	Resubmission bool
	Streak       streak.Transition
	MicroWins    []string
}

// Response is the 200 body of POST /checkin
type Response struct {
	Success   bool     `json:"success"`
	ID        string   `json:"id"`
	Upserted  bool     `json:"upserted"`
	MicroWins []string `json:"micro_wins"`
}

// ErrorBody is the non 2xx body of POST /checkin
type ErrorBody struct {
	Error string `json:"error"`
}

// ResponseFrom shapes a result for the wire
func ResponseFrom(r Result) Response {
	wins := r.MicroWins
	if wins == nil {
		wins = []string{}
	}
	return Response{Success: true, ID: r.ID, Upserted: true, MicroWins: wins}
}
