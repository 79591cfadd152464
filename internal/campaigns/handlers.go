package campaigns

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/FundSpring/FS-Web/internal/cache"
	"github.com/FundSpring/FS-Web/internal/render"
	"github.com/FundSpring/FS-Web/internal/token"
	"github.com/FundSpring/FS-Web/internal/upstream"
	"github.com/FundSpring/FS-Web/internal/utils"
	"github.com/go-chi/chi/v5"
)

// Client and Cache are set in Init.
var (
	Client *upstream.Client
	Cache  *cache.Campaigns
)

// currentUser resolves the ownership display hint: the username decoded from
// the session's access token, falling back to the cached display name. Empty
// for anonymous visitors.
func currentUser(r *http.Request) string {
	sess, ok := utils.GetSessionFromContext(r.Context())
	if !ok {
		return ""
	}
	if claims, err := token.Decode(sess.AccessToken); err == nil && claims.Username != "" {
		return claims.Username
	}
	return sess.Username
}

func accessToken(r *http.Request) string {
	sess, ok := utils.GetSessionFromContext(r.Context())
	if !ok {
		return ""
	}
	return sess.AccessToken
}

// fetchList loads the campaign list through the cache.
func fetchList(ctx context.Context) ([]upstream.Campaign, error) {
	if cached, ok := Cache.Get(ctx); ok {
		return cached, nil
	}

	campaigns, err := Client.ListCampaigns(ctx)
	if err != nil {
		return nil, err
	}
	Cache.Set(ctx, campaigns)
	return campaigns, nil
}

func campaignID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	return id, err == nil && id > 0
}

// HomeHandler renders the public campaign list, optionally filtered to an
// exact start day.
func HomeHandler(w http.ResponseWriter, r *http.Request) {
	page := homePage{
		BaseData:   render.Base(r),
		SearchDate: strings.TrimSpace(r.URL.Query().Get("date")),
		Donated:    r.URL.Query().Get("donated") == "1",
	}

	list, err := fetchList(r.Context())
	if err != nil {
		log.Println("failed to fetch campaigns: ", err)
		page.Error = "Could not load campaigns. Please try again."
		render.Page(w, "home.html", page)
		return
	}

	list = FilterByStartDate(list, page.SearchDate)
	page.Campaigns = viewsOf(list, currentUser(r))
	render.Page(w, "home.html", page)
}

// CampaignDetailHandler shows one campaign with its donation history.
func CampaignDetailHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}

	page := detailPage{BaseData: render.Base(r)}

	campaign, err := Client.GetCampaign(r.Context(), accessToken(r), id)
	switch {
	case errors.Is(err, upstream.ErrUnauthenticated):
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	case errors.Is(err, upstream.ErrNotFound):
		page.Error = "Campaign not found."
	case err != nil:
		log.Println("failed to fetch campaign: ", err)
		page.Error = "Could not load this campaign. Please try again."
	default:
		page.Campaign = viewOf(campaign, currentUser(r))
		page.Donations = donationViewsOf(campaign.Donations)
	}

	render.Page(w, "campaign-detail.html", page)
}

// DonateFormHandler shows the amount-entry form.
func DonateFormHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}

	campaign, err := Client.GetCampaign(r.Context(), accessToken(r), id)
	if err != nil {
		if errors.Is(err, upstream.ErrUnauthenticated) {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		log.Println("failed to fetch campaign: ", err)
		render.Page(w, "donate.html", donatePage{
			BaseData: render.Base(r),
			Error:    "Could not load this campaign. Please try again.",
		})
		return
	}

	render.Page(w, "donate.html", donatePage{
		BaseData: render.Base(r),
		Campaign: viewOf(campaign, currentUser(r)),
	})
}

// DonateHandler validates the amount locally, submits the donation, and on
// success invalidates the cached list so the redirect refetches authoritative
// totals.
func DonateHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}

	rawAmount := strings.TrimSpace(r.FormValue("amount"))
	amount, valid := ParseDonationAmount(rawAmount)
	if !valid {
		campaign, err := Client.GetCampaign(r.Context(), accessToken(r), id)
		page := donatePage{
			BaseData: render.Base(r),
			Amount:   rawAmount,
			Error:    "Please enter a valid amount greater than 0.",
		}
		if err == nil {
			page.Campaign = viewOf(campaign, currentUser(r))
		}
		render.Page(w, "donate.html", page)
		return
	}

	_, err := Client.CreateDonation(r.Context(), accessToken(r), id, amount)
	if err != nil {
		if errors.Is(err, upstream.ErrUnauthenticated) {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		log.Println("failed to submit donation: ", err)
		render.Page(w, "donate.html", donatePage{
			BaseData: render.Base(r),
			Amount:   rawAmount,
			Error:    "Failed to process donation. Please try again.",
		})
		return
	}

	Cache.Invalidate(r.Context())
	http.Redirect(w, r, "/?donated=1", http.StatusSeeOther)
}

// CreateFormHandler shows the new-campaign form with the start date
// defaulting to tomorrow.
func CreateFormHandler(w http.ResponseWriter, r *http.Request) {
	render.Page(w, "create-campaign.html", formPage{
		BaseData: render.Base(r),
		Form: upstream.CampaignInput{
			StartDate: time.Now().AddDate(0, 0, 1).Format("2006-01-02"),
		},
	})
}

func campaignForm(r *http.Request) (upstream.CampaignInput, []string) {
	target, _ := strconv.ParseFloat(strings.TrimSpace(r.FormValue("target_amount")), 64)
	form := upstream.CampaignInput{
		Title:        strings.TrimSpace(r.FormValue("title")),
		Description:  strings.TrimSpace(r.FormValue("description")),
		TargetAmount: target,
		StartDate:    strings.TrimSpace(r.FormValue("start_date")),
		EndDate:      strings.TrimSpace(r.FormValue("end_date")),
	}
	errs := ValidateCampaignForm(form.Title, form.Description, form.TargetAmount,
		form.StartDate, form.EndDate, r.URL.Path == "/create-campaign")
	return form, errs
}

func CreateHandler(w http.ResponseWriter, r *http.Request) {
	form, errs := campaignForm(r)
	page := formPage{BaseData: render.Base(r), Form: form}

	if len(errs) > 0 {
		page.Error = strings.Join(errs, "; ")
		render.Page(w, "create-campaign.html", page)
		return
	}

	_, err := Client.CreateCampaign(r.Context(), accessToken(r), form)
	if err != nil {
		if errors.Is(err, upstream.ErrUnauthenticated) {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		var vErr *upstream.ValidationError
		if errors.As(err, &vErr) {
			page.Error = vErr.Message()
		} else {
			log.Println("failed to create campaign: ", err)
			page.Error = "Failed to create campaign. Please try again."
		}
		render.Page(w, "create-campaign.html", page)
		return
	}

	Cache.Invalidate(r.Context())

	// Success state redirects itself home after a short delay.
	page.Form = upstream.CampaignInput{}
	page.Success = "Campaign created successfully! Redirecting..."
	render.Page(w, "create-campaign.html", page)
}

// EditFormHandler prefills the edit form from the upstream copy.
func EditFormHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}

	page := formPage{BaseData: render.Base(r), ID: id}

	campaign, err := Client.GetCampaign(r.Context(), accessToken(r), id)
	switch {
	case errors.Is(err, upstream.ErrUnauthenticated):
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	case errors.Is(err, upstream.ErrNotFound):
		page.Error = "Campaign not found."
	case err != nil:
		log.Println("failed to fetch campaign: ", err)
		page.Error = "Could not load this campaign. Please try again."
	default:
		target, _ := campaign.TargetAmount.Float64()
		page.Form = upstream.CampaignInput{
			Title:        campaign.Title,
			Description:  campaign.Description,
			TargetAmount: target,
			StartDate:    campaign.StartDate,
			EndDate:      campaign.EndDate,
		}
	}

	render.Page(w, "edit-campaign.html", page)
}

func EditHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}

	form, errs := campaignForm(r)
	page := formPage{BaseData: render.Base(r), Form: form, ID: id}

	if len(errs) > 0 {
		page.Error = strings.Join(errs, "; ")
		render.Page(w, "edit-campaign.html", page)
		return
	}

	_, err := Client.UpdateCampaign(r.Context(), accessToken(r), id, form)
	if err != nil {
		switch {
		case errors.Is(err, upstream.ErrUnauthenticated):
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		case errors.Is(err, upstream.ErrForbidden):
			page.Error = "You don't have permission to edit this campaign."
		case errors.Is(err, upstream.ErrNotFound):
			page.Error = "Campaign not found."
		default:
			var vErr *upstream.ValidationError
			if errors.As(err, &vErr) {
				page.Error = vErr.Message()
			} else {
				log.Println("failed to update campaign: ", err)
				page.Error = "Failed to update campaign. Please try again."
			}
		}
		render.Page(w, "edit-campaign.html", page)
		return
	}

	Cache.Invalidate(r.Context())
	http.Redirect(w, r, "/my-campaigns?updated=1", http.StatusSeeOther)
}

// DeleteConfirmHandler asks before anything is deleted.
func DeleteConfirmHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}

	page := deletePage{BaseData: render.Base(r)}

	campaign, err := Client.GetCampaign(r.Context(), accessToken(r), id)
	switch {
	case errors.Is(err, upstream.ErrUnauthenticated):
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	case errors.Is(err, upstream.ErrNotFound):
		page.Error = "Campaign not found."
	case err != nil:
		log.Println("failed to fetch campaign: ", err)
		page.Error = "Could not load this campaign. Please try again."
	default:
		page.Campaign = viewOf(campaign, currentUser(r))
	}

	render.Page(w, "delete-campaign.html", page)
}

func DeleteHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}

	if err := Client.DeleteCampaign(r.Context(), accessToken(r), id); err != nil {
		switch {
		case errors.Is(err, upstream.ErrUnauthenticated):
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		case errors.Is(err, upstream.ErrForbidden):
			render.Page(w, "delete-campaign.html", deletePage{
				BaseData: render.Base(r),
				Error:    "You don't have permission to delete this campaign.",
			})
			return
		default:
			log.Println("failed to delete campaign: ", err)
			render.Page(w, "delete-campaign.html", deletePage{
				BaseData: render.Base(r),
				Error:    "Failed to delete campaign. Please try again.",
			})
			return
		}
	}

	Cache.Invalidate(r.Context())
	http.Redirect(w, r, "/my-campaigns", http.StatusSeeOther)
}

// MyCampaignsHandler lists only the signed-in user's campaigns.
func MyCampaignsHandler(w http.ResponseWriter, r *http.Request) {
	page := myCampaignsPage{
		BaseData: render.Base(r),
		Updated:  r.URL.Query().Get("updated") == "1",
	}

	list, err := Client.MyCampaigns(r.Context(), accessToken(r))
	if err != nil {
		if errors.Is(err, upstream.ErrUnauthenticated) {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		log.Println("failed to fetch my campaigns: ", err)
		page.Error = "Could not load your campaigns. Please try again."
		render.Page(w, "my-campaigns.html", page)
		return
	}

	page.Campaigns = viewsOf(list, currentUser(r))
	render.Page(w, "my-campaigns.html", page)
}
