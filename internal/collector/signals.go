package collector

import (
	"context"
	"regexp"
	"sort"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"resumi/pkg/models"
)

// SignalStatus describes whether a signal source can currently produce leads.
type SignalStatus string

const (
	// SignalDisabled means the source is turned off by configuration or policy
	SignalDisabled SignalStatus = "disabled"
	// SignalPending means the source exists but its scanner is not live yet
	SignalPending SignalStatus = "pending"
	// SignalActive means the source is live and producing signals
	SignalActive SignalStatus = "active"
)

// SignalSource is a social-media scanner that surfaces job leads rather than
// structured postings. Sources report their status explicitly; callers must
// not treat a pending source as a working collector.
type SignalSource interface {
	// Name returns the source identifier
	Name() string

	// Status reports whether the source can produce signals
	Status() SignalStatus

	// CollectSignals fetches up to maxSignals job leads. Sources that are
	// not active return an empty slice and no error.
	CollectSignals(ctx context.Context, maxSignals int) ([]models.JobSignal, error)
}

// knownCompanies are employers worth flagging in social chatter
var knownCompanies = []string{
	// India
	"razorpay", "swiggy", "zomato", "flipkart", "ola", "paytm", "cred", "meesho",
	"byju", "unacademy", "upgrad", "phonepe", "policybazaar", "sharechat",

	// UAE
	"careem", "noon", "talabat", "fetchr", "namshi",

	// Consulting
	"mckinsey", "bain", "bcg", "deloitte", "pwc", "ey", "kpmg", "accenture",

	// Tech
	"google", "microsoft", "amazon", "meta", "apple", "netflix", "uber", "airbnb",
}

// roleHintKeywords are title fragments that suggest a hiring post
var roleHintKeywords = []string{
	"strategy", "consultant", "operations", "marketing", "finance", "analyst",
	"manager", "associate", "director", "business development", "product manager",
	"hr", "human resources", "sales", "account manager",
}

var signalURLRegex = regexp.MustCompile(`https?://[^\s<>"{}|\\^` + "`" + `\[\]]+`)

// titleCase builds a fresh Caser per call; cases.Caser is stateful and must
// not be shared between goroutines.
func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}

var companyPatterns = buildBoundaryPatterns(knownCompanies)
var rolePatterns = buildBoundaryPatterns(roleHintKeywords)

func buildBoundaryPatterns(terms []string) map[string]*regexp.Regexp {
	patterns := make(map[string]*regexp.Regexp, len(terms))
	for _, term := range terms {
		patterns[term] = regexp.MustCompile(`\b` + regexp.QuoteMeta(term) + `\b`)
	}
	return patterns
}

// ExtractCompanyMentions returns known company names found in the text,
// title-cased, with word-boundary matching.
func ExtractCompanyMentions(text string) []string {
	textLower := strings.ToLower(text)

	var companies []string
	for _, company := range knownCompanies {
		if companyPatterns[company].MatchString(textLower) {
			companies = append(companies, titleCase(company))
		}
	}
	return companies
}

// ExtractRoleHints returns role keywords found in the text.
func ExtractRoleHints(text string) []string {
	textLower := strings.ToLower(text)

	var roles []string
	for _, role := range roleHintKeywords {
		if rolePatterns[role].MatchString(textLower) {
			roles = append(roles, role)
		}
	}
	return roles
}

// ExtractLocationHints returns city and country mentions from the text.
func ExtractLocationHints(text string) []string {
	indiaCities := []string{
		"mumbai", "bangalore", "bengaluru", "delhi", "gurgaon",
		"gurugram", "hyderabad", "pune", "chennai", "kolkata",
	}
	uaeCities := []string{"dubai", "abu dhabi", "sharjah"}
	countries := []string{"india", "uae", "united arab emirates"}

	textLower := strings.ToLower(text)
	found := mapset.NewThreadUnsafeSet[string]()

	for _, city := range append(indiaCities, uaeCities...) {
		if strings.Contains(textLower, city) {
			found.Add(titleCase(city))
		}
	}
	for _, country := range countries {
		if strings.Contains(textLower, country) {
			if country == "uae" {
				found.Add("UAE")
			} else {
				found.Add(titleCase(country))
			}
		}
	}

	hints := found.ToSlice()
	sort.Strings(hints)
	return hints
}

// ExtractURLs returns the URLs embedded in the text.
func ExtractURLs(text string) []string {
	return signalURLRegex.FindAllString(text, -1)
}

// SignalConfidence grades a signal by how many identifying attributes it
// carries: company and role are worth two points each, location and an
// external link one each.
func SignalConfidence(signal models.JobSignal) string {
	score := 0
	if len(signal.CompanyMentions) > 0 {
		score += 2
	}
	if len(signal.RoleHints) > 0 {
		score += 2
	}
	if len(signal.LocationHints) > 0 {
		score++
	}
	if signal.ExternalLink != "" {
		score++
	}

	switch {
	case score >= 5:
		return "high"
	case score >= 3:
		return "medium"
	default:
		return "low"
	}
}

// RedditScanner watches job-adjacent subreddits for hiring chatter. The
// scanner itself is not live; the source reports pending until the HTML
// parsing path ships.
type RedditScanner struct {
	subreddits []string
}

func NewRedditScanner() *RedditScanner {
	return &RedditScanner{
		subreddits: []string{"MBA", "consulting", "IndiaInvestments", "dubai", "bangalore", "mumbai", "india"},
	}
}

func (r *RedditScanner) Name() string {
	return "reddit_signal"
}

func (r *RedditScanner) Status() SignalStatus {
	return SignalPending
}

func (r *RedditScanner) CollectSignals(ctx context.Context, maxSignals int) ([]models.JobSignal, error) {
	return nil, nil
}

// XScanner watches public X posts for hiring chatter. Pending until an
// approved data access path exists.
type XScanner struct{}

func NewXScanner() *XScanner {
	return &XScanner{}
}

func (x *XScanner) Name() string {
	return "x_signal"
}

func (x *XScanner) Status() SignalStatus {
	return SignalPending
}

func (x *XScanner) CollectSignals(ctx context.Context, maxSignals int) ([]models.JobSignal, error) {
	return nil, nil
}
