package campaigns

import (
	"github.com/FundSpring/FS-Web/internal/render"
	"github.com/FundSpring/FS-Web/internal/upstream"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var usd = message.NewPrinter(language.AmericanEnglish)

// FormatUSD renders an amount the way the campaign cards show money.
func FormatUSD(amount float64) string {
	return usd.Sprintf("$%.2f", amount)
}

// CampaignView is a Campaign prepared for the templates: money formatted,
// progress passed through verbatim, and the ownership display hint resolved.
type CampaignView struct {
	ID          int
	Title       string
	Description string
	Target      string
	Raised      string
	Progress    int
	StartDate   string
	EndDate     string
	Owner       string
	CanManage   bool
}

type DonationView struct {
	Donor  string
	Amount string
	Date   string
}

// viewOf builds the template model. currentUser is the decoded token's
// username ("" when anonymous); matching the owner only toggles whether
// edit/delete controls render, it grants nothing.
func viewOf(c upstream.Campaign, currentUser string) CampaignView {
	target, _ := c.TargetAmount.Float64()

	return CampaignView{
		ID:          c.ID,
		Title:       c.Title,
		Description: c.Description,
		Target:      FormatUSD(target),
		Raised:      FormatUSD(c.TotalDonations),
		Progress:    c.ProgressPercentage,
		StartDate:   c.StartDate,
		EndDate:     c.EndDate,
		Owner:       c.Owner,
		CanManage:   currentUser != "" && c.Owner == currentUser,
	}
}

func viewsOf(campaigns []upstream.Campaign, currentUser string) []CampaignView {
	views := make([]CampaignView, 0, len(campaigns))
	for _, c := range campaigns {
		views = append(views, viewOf(c, currentUser))
	}
	return views
}

func donationViewsOf(donations []upstream.Donation) []DonationView {
	views := make([]DonationView, 0, len(donations))
	for _, d := range donations {
		amount, _ := d.Amount.Float64()
		donor := d.Donor
		if donor == "" {
			donor = "Anonymous"
		}
		views = append(views, DonationView{
			Donor:  donor,
			Amount: FormatUSD(amount),
			Date:   d.DonationDate,
		})
	}
	return views
}

type homePage struct {
	render.BaseData
	Campaigns  []CampaignView
	SearchDate string
	Donated    bool
	Error      string
}

type detailPage struct {
	render.BaseData
	Campaign  CampaignView
	Donations []DonationView
	Error     string
}

type donatePage struct {
	render.BaseData
	Campaign CampaignView
	Amount   string
	Error    string
}

type formPage struct {
	render.BaseData
	Form    upstream.CampaignInput
	ID      int
	Error   string
	Success string
}

type myCampaignsPage struct {
	render.BaseData
	Campaigns []CampaignView
	Updated   bool
	Error     string
}

type deletePage struct {
	render.BaseData
	Campaign CampaignView
	Error    string
}
