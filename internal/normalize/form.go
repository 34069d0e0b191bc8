// Package normalize maps the heterogeneous upstream inputs — form responses,
// AI-analysis JSON, and the legacy multi-value summary JSON — into the one
// canonical record shape.
package normalize

import (
	"strconv"
	"strings"
	"time"

	"github.com/kshoda-lgtm/8CUBE-promotion/constants"
	"github.com/kshoda-lgtm/8CUBE-promotion/internal/record"
)

// FormAnswer is one (question title, answer) pair from the registration form.
type FormAnswer struct {
	Title    string `json:"title"`
	Response string `json:"response"`
}

// FormResponse is the form collaborator's export: a timestamp, the respondent
// identifier, and the ordered answers.
type FormResponse struct {
	Timestamp       time.Time    `json:"timestamp"`
	RespondentEmail string       `json:"respondent_email"`
	Answers         []FormAnswer `json:"answers"`
}

// formFields maps question titles to record setters. Adding a form question
// is a data change here, not new control flow. Titles not in the table are
// ignored so the form can evolve ahead of this code.
var formFields = map[string]func(*record.Record, string){
	constants.QProjectName:       func(r *record.Record, v string) { r.ProjectName = v },
	constants.QClientName:        func(r *record.Record, v string) { r.ClientName = v },
	constants.QPersonInCharge:    func(r *record.Record, v string) { r.PersonInCharge = v },
	constants.QEventDate:         func(r *record.Record, v string) { r.EventDate = v },
	constants.QEventType:         func(r *record.Record, v string) { r.EventType = v },
	constants.QEventDescription:  func(r *record.Record, v string) { r.EventDescription = v },
	constants.QVenue:             func(r *record.Record, v string) { r.Venue = v },
	constants.QTargetCount:       func(r *record.Record, v string) { r.TargetCount = v },
	constants.QUnitPrice:         func(r *record.Record, v string) { r.UnitPrice = parseAmount(v) },
	constants.QTotalCost:         func(r *record.Record, v string) { r.TotalCost = parseAmount(v) },
	constants.QOrderQuantity:     func(r *record.Record, v string) { r.OrderQuantity = parseAmount(v) },
	constants.QPartnerCompanies:  func(r *record.Record, v string) { r.PartnerCompanies = splitLines(v) },
	constants.QPartnerEvaluation: func(r *record.Record, v string) { r.PartnerEvaluation = v },
	constants.QNoveltyItems:      func(r *record.Record, v string) { r.NoveltyItems = splitLines(v) },
	constants.QDeadline:          func(r *record.Record, v string) { r.Deadline = v },
	constants.QSuccessFactors:    func(r *record.Record, v string) { r.SuccessFactors = v },
	constants.QFailurePoints:     func(r *record.Record, v string) { r.FailurePoints = v },
	constants.QDocumentURL:       func(r *record.Record, v string) { r.DocumentURL = v },
	constants.QTags:              func(r *record.Record, v string) { r.Tags = splitTags(v) },
	constants.QNotes:             func(r *record.Record, v string) { r.Notes = v },
}

// FromForm builds a canonical record from a form response. Required-field
// enforcement happens on the form itself, never here.
func FromForm(fr FormResponse) *record.Record {
	r := &record.Record{
		RegisteredAt:    fr.Timestamp,
		RespondentEmail: fr.RespondentEmail,
	}
	for _, a := range fr.Answers {
		if set, ok := formFields[a.Title]; ok {
			set(r, a.Response)
		}
	}
	return r
}

// parseAmount parses a non-negative integer answer, tolerating thousands
// separators. Anything else is treated as absent.
func parseAmount(v string) *int {
	v = strings.ReplaceAll(strings.TrimSpace(v), ",", "")
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return nil
	}
	return &n
}

func splitLines(v string) []string {
	var out []string
	for _, line := range strings.Split(v, "\n") {
		if s := strings.TrimSpace(line); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func splitTags(v string) []string {
	var out []string
	for _, t := range strings.Split(v, ",") {
		if s := strings.TrimSpace(t); s != "" {
			out = append(out, s)
		}
	}
	return out
}
