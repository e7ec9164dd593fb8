package models

type Event struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	ActivationCode string `json:"activationCode"`
}

type CreateEventRequest struct {
	Name           string `json:"name" binding:"required"`
	ActivationCode string `json:"activationCode"`
}

type ActivateRequest struct {
	ActivationCode string `json:"activationCode"`
}
