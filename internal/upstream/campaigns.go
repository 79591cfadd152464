package upstream

import (
	"context"
	"fmt"
	"net/http"
)

// ListCampaigns fetches every campaign. The endpoint is public; donation and
// edit gating happen elsewhere.
func (c *Client) ListCampaigns(ctx context.Context) ([]Campaign, error) {
	var campaigns []Campaign
	if err := c.do(ctx, http.MethodGet, "/api/campaigns/", "", nil, &campaigns); err != nil {
		return nil, err
	}
	return campaigns, nil
}

// MyCampaigns fetches only the campaigns owned by the token's user.
func (c *Client) MyCampaigns(ctx context.Context, token string) ([]Campaign, error) {
	var campaigns []Campaign
	if err := c.do(ctx, http.MethodGet, "/api/campaigns/mine/", token, nil, &campaigns); err != nil {
		return nil, err
	}
	return campaigns, nil
}

// GetCampaign fetches a single campaign by ID.
func (c *Client) GetCampaign(ctx context.Context, token string, id int) (Campaign, error) {
	var campaign Campaign
	path := fmt.Sprintf("/api/campaigns/%d/", id)
	if err := c.do(ctx, http.MethodGet, path, token, nil, &campaign); err != nil {
		return Campaign{}, err
	}
	return campaign, nil
}

// CreateCampaign creates a campaign owned by the token's user.
func (c *Client) CreateCampaign(ctx context.Context, token string, input CampaignInput) (Campaign, error) {
	var campaign Campaign
	if err := c.do(ctx, http.MethodPost, "/api/campaigns/", token, input, &campaign); err != nil {
		return Campaign{}, err
	}
	return campaign, nil
}

// UpdateCampaign replaces a campaign's editable fields.
func (c *Client) UpdateCampaign(ctx context.Context, token string, id int, input CampaignInput) (Campaign, error) {
	var campaign Campaign
	path := fmt.Sprintf("/api/campaigns/%d/", id)
	if err := c.do(ctx, http.MethodPut, path, token, input, &campaign); err != nil {
		return Campaign{}, err
	}
	return campaign, nil
}

// DeleteCampaign deletes a campaign. Ownership is enforced upstream; a
// non-owner gets ErrForbidden.
func (c *Client) DeleteCampaign(ctx context.Context, token string, id int) error {
	path := fmt.Sprintf("/api/campaigns/%d/", id)
	return c.do(ctx, http.MethodDelete, path, token, nil, nil)
}

// CreateDonation records a donation against a campaign. Amount validation
// happens before this call; the upstream still re-checks.
func (c *Client) CreateDonation(ctx context.Context, token string, campaignID int, amount float64) (Donation, error) {
	var donation Donation
	body := donationInput{Campaign: campaignID, Amount: amount}
	if err := c.do(ctx, http.MethodPost, "/api/donations/", token, body, &donation); err != nil {
		return Donation{}, err
	}
	return donation, nil
}
