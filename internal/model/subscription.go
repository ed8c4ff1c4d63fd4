package model

type CreateTypeRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	EntityType  string `json:"entityType"`
}

type TypeRecord struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	EntityType  string `json:"entityType"`
}

type CreateSubscriptionRequest struct {
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Price         float64 `json:"price"`
	BillingPeriod string  `json:"billingPeriod"`
}

type Subscription struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Price         float64 `json:"price"`
	BillingPeriod string  `json:"billingPeriod"`
}
