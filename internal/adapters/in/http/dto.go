package http

// Error is the common error payload for all endpoints.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewCustomer is the request body for customer onboarding.
type NewCustomer struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// NewDriver is the request body for driver onboarding.
type NewDriver struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// NewOrder is the request body for order placement.
type NewOrder struct {
	ID         string  `json:"id"`
	CustomerID string  `json:"customer_id"`
	Item       string  `json:"item"`
	Quantity   int     `json:"quantity"`
	Weight     float64 `json:"weight"`
}

// DriverAction is the request body for pickup and delivery confirmation.
type DriverAction struct {
	DriverID string `json:"driver_id"`
}

// Payment is the request body for payment collection.
type Payment struct {
	Amount string `json:"amount"`
	Mode   string `json:"mode"`
}

// Rating is the request body for rating a driver.
type Rating struct {
	Score int `json:"score"`
}

// TopDriver is one leaderboard entry in the dashboard response.
type TopDriver struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Status     string  `json:"status"`
	Rating     float64 `json:"rating"`
	OrderCount int     `json:"order_count"`
}

// ActiveOrder is one in-flight order in the dashboard response.
type ActiveOrder struct {
	ID         string  `json:"id"`
	CustomerID string  `json:"customer_id"`
	Item       string  `json:"item"`
	Quantity   int     `json:"quantity"`
	Weight     float64 `json:"weight"`
	Status     string  `json:"status"`
	DriverID   *string `json:"driver_id,omitempty"`
}
