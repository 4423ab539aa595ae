// jooble/adapter.go

package jooble

import (
	"encoding/json"

	"github.com/skillplot/skillplot/match"
)

////////////////////////////////////////////////////////////////////////
// Provider Shape Adapter
////////////////////////////////////////////////////////////////////////

// providerJob covers the field variants Jooble has been observed returning.
// Different listings populate different subsets (snippet vs description,
// location vs city, a numeric or string id), so every canonical field has an
// explicit fallback chain.
type providerJob struct {
	ID          json.Number `json:"id"`
	Title       string      `json:"title"`
	Company     string      `json:"company"`
	Location    string      `json:"location"`
	City        string      `json:"city"`
	Salary      string      `json:"salary"`
	Snippet     string      `json:"snippet"`
	Description string      `json:"description"`
	Link        string      `json:"link"`
	Profession  string      `json:"profession"`
	Skills      []string    `json:"skills"`
}

// canonical translates a provider posting into the canonical shape:
// id falls back to the listing link, company and location fall back to
// "Unknown", salary to "N/A", and the snippet is preferred over the full
// description because Jooble's snippet is the field it reliably fills.
func (j providerJob) canonical() match.JobPosting {
	id := j.ID.String()
	if id == "" {
		id = j.Link
	}

	company := j.Company
	if company == "" {
		company = "Unknown"
	}

	location := j.Location
	if location == "" {
		location = j.City
	}
	if location == "" {
		location = "Unknown"
	}

	salary := j.Salary
	if salary == "" {
		salary = "N/A"
	}

	description := j.Snippet
	if description == "" {
		description = j.Description
	}

	return match.JobPosting{
		ID:          id,
		Title:       j.Title,
		Company:     company,
		Location:    location,
		Salary:      salary,
		Description: description,
		Link:        j.Link,
		Profession:  j.Profession,
		Tags:        j.Skills,
	}
}
