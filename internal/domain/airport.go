package domain

type Airport struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	City     string `json:"city"`
	Country  string `json:"country"`
	Timezone string `json:"timezone"`
}

type Destination struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	City          string `json:"city"`
	Country       string `json:"country"`
	Description   string `json:"description"`
	ImageURL      string `json:"imageUrl"`
	StartingPrice Money  `json:"startingPrice"`
	FlightTime    string `json:"flightTime"`
	IsPopular     bool   `json:"isPopular"`
}
