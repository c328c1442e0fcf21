package activity

import (
	"encoding/json"
	"fmt"

	"github.com/fchimpan/gh-kusa-map/internal/intensity"
)

// Day is a single day entry from GitHub's Contribution Calendar.
// date is returned as "YYYY-MM-DD" (GitHub GraphQL).
type Day struct {
	Date              string `json:"date"`
	Weekday           int    `json:"weekday"`
	ContributionCount int    `json:"contributionCount"`
}

type Week struct {
	ContributionDays []Day `json:"contributionDays"`
}

type Calendar struct {
	Weeks []Week `json:"weeks"`
}

// Observations flattens the week-major calendar into day observations.
func (c Calendar) Observations() ([]Observation, error) {
	var out []Observation
	n := 0
	for _, w := range c.Weeks {
		for _, d := range w.ContributionDays {
			n++
			t, err := parseDate(d.Date)
			if err != nil {
				return nil, &ParseError{Format: FormatGitHub, Record: n, cause: err}
			}
			if d.ContributionCount < 0 {
				return nil, &ParseError{Format: FormatGitHub, Record: n, cause: &intensity.InvalidCountError{Count: d.ContributionCount}}
			}
			out = append(out, Observation{Date: t, Count: d.ContributionCount})
		}
	}
	return out, nil
}

// decodeGitHubCalendar accepts either a bare contributionCalendar object or the
// full response of the contributionsCollection GraphQL query, for the viewer
// or for a user, e.g. the output of:
//
//	gh api graphql -f query='query { viewer { contributionsCollection {
//	  contributionCalendar { weeks { contributionDays { date weekday contributionCount } } } } } }'
func decodeGitHubCalendar(raw []byte) (Calendar, error) {
	type collection struct {
		ContributionsCollection struct {
			ContributionCalendar *Calendar `json:"contributionCalendar"`
		} `json:"contributionsCollection"`
	}
	var resp struct {
		Data *struct {
			Viewer *collection `json:"viewer"`
			User   *collection `json:"user"`
		} `json:"data"`
		ContributionCalendar *Calendar `json:"contributionCalendar"`
		Weeks                []Week    `json:"weeks"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return Calendar{}, fmt.Errorf("failed to parse calendar: %w", err)
	}

	switch {
	case resp.Weeks != nil:
		return Calendar{Weeks: resp.Weeks}, nil
	case resp.ContributionCalendar != nil:
		return *resp.ContributionCalendar, nil
	case resp.Data != nil && resp.Data.Viewer != nil && resp.Data.Viewer.ContributionsCollection.ContributionCalendar != nil:
		return *resp.Data.Viewer.ContributionsCollection.ContributionCalendar, nil
	case resp.Data != nil && resp.Data.User != nil && resp.Data.User.ContributionsCollection.ContributionCalendar != nil:
		return *resp.Data.User.ContributionsCollection.ContributionCalendar, nil
	}
	return Calendar{}, fmt.Errorf("no contribution calendar found (expected weeks[].contributionDays[])")
}
