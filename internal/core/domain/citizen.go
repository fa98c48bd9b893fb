package domain

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
)

// PassportNumberLength is enforced on create and update. Lookup accepts any
// length and simply finds nothing for malformed input.
const PassportNumberLength = 9

// swagger:model domain.Citizen
type Citizen struct {
	ID                uuid.UUID `json:"id"`
	FirstName         string    `json:"first_name"`
	LastName          string    `json:"last_name"`
	DateOfBirth       string    `json:"date_of_birth"`
	Nationality       string    `json:"nationality"`
	PassportNumber    string    `json:"passport_number"`
	PassportIssueDate string    `json:"passport_issue_date"`
	UniqueID          string    `json:"unique_id"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// CitizenProfile is the public projection returned by the passport lookup.
// It never carries the internal row ID.
type CitizenProfile struct {
	FirstName         string `json:"first_name"`
	LastName          string `json:"last_name"`
	DateOfBirth       string `json:"date_of_birth"`
	Nationality       string `json:"nationality"`
	PassportNumber    string `json:"passport_number"`
	PassportIssueDate string `json:"passport_issue_date"`
	UniqueID          string `json:"unique_id"`
}

func (c *Citizen) Profile() CitizenProfile {
	return CitizenProfile{
		FirstName:         c.FirstName,
		LastName:          c.LastName,
		DateOfBirth:       c.DateOfBirth,
		Nationality:       c.Nationality,
		PassportNumber:    c.PassportNumber,
		PassportIssueDate: c.PassportIssueDate,
		UniqueID:          c.UniqueID,
	}
}

// Nationalities are the EU member states accepted by the registry.
var Nationalities = []string{
	"Austria", "Belgium", "Bulgaria", "Croatia", "Cyprus",
	"Czech Republic", "Denmark", "Estonia", "Finland", "France",
	"Germany", "Greece", "Hungary", "Ireland", "Italy",
	"Latvia", "Lithuania", "Luxembourg", "Malta", "Netherlands",
	"Poland", "Portugal", "Romania", "Slovakia", "Slovenia",
	"Spain", "Sweden",
}

var nationalitySet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(Nationalities))
	for _, n := range Nationalities {
		set[n] = struct{}{}
	}
	return set
}()

func IsValidNationality(name string) bool {
	_, ok := nationalitySet[name]
	return ok
}

// NormalizePassport trims and lowercases a passport number. Every comparison
// and every stored value goes through this.
func NormalizePassport(passportNumber string) string {
	return strings.ToLower(strings.TrimSpace(passportNumber))
}

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

// NewCitizenUID builds the public identifier assigned once at first
// persistence: CIT-<millisecond timestamp>-<5 random base36 chars>, uppercased.
func NewCitizenUID(now time.Time) string {
	suffix := make([]byte, 5)
	for i := range suffix {
		suffix[i] = base36[rand.Intn(len(base36))]
	}
	return strings.ToUpper(fmt.Sprintf("CIT-%d-%s", now.UnixMilli(), suffix))
}
