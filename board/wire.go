package board

import "time"

// The server speaks the storage schema's field names; the client speaks the
// UI's. The mapping is exact and total in both directions:
//
//	_id         ↔ ID
//	companyName ↔ Company
//	role        ↔ Role
//	status      ↔ Status
//	jobLink     ↔ Link
//	dateApplied ↔ Date
//	salary      ↔ Salary
//	location    ↔ Location
//	notes       ↔ Description
//	priority    ↔ Priority

// wireApplication is a record as it crosses the HTTP surface.
type wireApplication struct {
	ID          string    `json:"_id,omitempty"`
	CompanyName string    `json:"companyName"`
	Role        string    `json:"role"`
	Status      string    `json:"status,omitempty"`
	JobLink     string    `json:"jobLink"`
	DateApplied time.Time `json:"dateApplied,omitempty"`
	Salary      string    `json:"salary,omitempty"`
	Location    string    `json:"location,omitempty"`
	Notes       string    `json:"notes"`
	Priority    string    `json:"priority,omitempty"`
}

// wirePatch is a partial update as it crosses the HTTP surface.
type wirePatch struct {
	CompanyName *string    `json:"companyName,omitempty"`
	Role        *string    `json:"role,omitempty"`
	Status      *string    `json:"status,omitempty"`
	JobLink     *string    `json:"jobLink,omitempty"`
	DateApplied *time.Time `json:"dateApplied,omitempty"`
	Salary      *string    `json:"salary,omitempty"`
	Location    *string    `json:"location,omitempty"`
	Notes       *string    `json:"notes,omitempty"`
	Priority    *string    `json:"priority,omitempty"`
}

func toWire(j Job) wireApplication {
	return wireApplication{
		ID:          j.ID,
		CompanyName: j.Company,
		Role:        j.Role,
		Status:      j.Status,
		JobLink:     j.Link,
		DateApplied: j.Date,
		Salary:      j.Salary,
		Location:    j.Location,
		Notes:       j.Description,
		Priority:    j.Priority,
	}
}

func fromWire(w wireApplication) Job {
	return Job{
		ID:          w.ID,
		Company:     w.CompanyName,
		Role:        w.Role,
		Status:      w.Status,
		Link:        w.JobLink,
		Date:        w.DateApplied,
		Salary:      w.Salary,
		Location:    w.Location,
		Description: w.Notes,
		Priority:    w.Priority,
	}
}

func toWirePatch(p Patch) wirePatch {
	return wirePatch{
		CompanyName: p.Company,
		Role:        p.Role,
		Status:      p.Status,
		JobLink:     p.Link,
		DateApplied: p.Date,
		Salary:      p.Salary,
		Location:    p.Location,
		Notes:       p.Description,
		Priority:    p.Priority,
	}
}
