package response

type Response struct {
	Message string `json:"message"`
}

type AvailabilityResponse struct {
	Available bool `json:"available"`
}
