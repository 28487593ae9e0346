package models

import (
	"crypto/sha256"
	"encoding/base64"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/pentestpro/dtos"
)

type User struct {
	Model
	OrganizationID uuid.UUID     `json:"organizationId" gorm:"not null;type:uuid;"`
	Organization   Org           `json:"-" gorm:"foreignKey:OrganizationID;references:ID;constraint:OnDelete:CASCADE;"`
	Name           string        `json:"name" gorm:"type:text;not null;"`
	Email          string        `json:"email" gorm:"type:text;unique;not null;index"`
	PasswordHash   string        `json:"-" gorm:"type:text;not null;"`
	Role           dtos.UserRole `json:"role" gorm:"type:text;not null;default:'tester';"`

	Suspended           bool `json:"suspended" gorm:"default:false;not null;"`
	PendingVerification bool `json:"pendingVerification" gorm:"default:true;not null;"`
}

func (u User) TableName() string {
	return "users"
}

// PAT is a personal access token. Only the sha256 fingerprint of the token is
// stored; the token itself is shown to the user exactly once.
type PAT struct {
	ID          uuid.UUID  `json:"id" gorm:"primarykey;type:uuid;default:gen_random_uuid()"`
	CreatedAt   time.Time  `json:"createdAt"`
	UserID      uuid.UUID  `json:"userId" gorm:"not null;type:uuid;"`
	User        User       `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE;"`
	Description string     `json:"description" gorm:"type:text"`
	Fingerprint string     `json:"fingerprint" gorm:"type:text;unique;not null;index"`
	LastUsedAt  *time.Time `json:"lastUsedAt" gorm:"default:null"`
	Scopes      string     `json:"scopes" gorm:"type:text"` // whitespace separated, e.g. "read manage"
}

func (p PAT) TableName() string {
	return "pat"
}

func (p PAT) HashToken(token string) string {
	hasher := sha256.New()
	hasher.Write([]byte(token))
	return base64.StdEncoding.EncodeToString(hasher.Sum(nil))
}

func (p PAT) GetUserID() string {
	return p.UserID.String()
}
