package models

// CampaignProgress is the public summary polled by the frontend.
type CampaignProgress struct {
	TotalRaised float64 `json:"totalRaised"`
	DonorCount  int     `json:"donorCount"`
}
