package upstream

import "encoding/json"

// Campaign mirrors the upstream serializer. TargetAmount and donation amounts
// arrive as JSON decimal strings; totals and percentages are computed by the
// server and rendered verbatim, never recomputed here.
type Campaign struct {
	ID                 int         `json:"id"`
	Title              string      `json:"title"`
	Description        string      `json:"description"`
	TargetAmount       json.Number `json:"target_amount"`
	StartDate          string      `json:"start_date"`
	EndDate            string      `json:"end_date"`
	CreatedAt          string      `json:"created_at"`
	Owner              string      `json:"owner"`
	Donations          []Donation  `json:"donations"`
	TotalDonations     float64     `json:"total_donations"`
	ProgressPercentage int         `json:"progress_percentage"`
}

type Donation struct {
	ID            int         `json:"id"`
	Campaign      int         `json:"campaign"`
	Amount        json.Number `json:"amount"`
	DonationDate  string      `json:"donation_date"`
	Message       string      `json:"message"`
	Donor         string      `json:"donor"`
	CampaignTitle string      `json:"campaign_title"`
}

// TokenPair is the response from the JWT create endpoint.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// RegisterInput carries raw registration fields; the upstream re-validates
// everything regardless of the client-side checks.
type RegisterInput struct {
	Username   string `json:"username"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Password   string `json:"password"`
	RePassword string `json:"re_password"`
}

type CampaignInput struct {
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	TargetAmount float64 `json:"target_amount"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
}

type donationInput struct {
	Campaign int     `json:"campaign"`
	Amount   float64 `json:"amount"`
}
