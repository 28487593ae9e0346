package models

type Org struct {
	Model
	Name        string    `json:"name" gorm:"type:text"`
	Slug        string    `json:"slug" gorm:"type:text;unique;not null;index"`
	Description string    `json:"description" gorm:"type:text"`
	Projects    []Project `json:"projects" gorm:"foreignKey:OrganizationID;"`
	Users       []User    `json:"users" gorm:"foreignKey:OrganizationID;"`

	IsPublic bool `json:"isPublic" gorm:"default:false;"`
}

func (m Org) TableName() string {
	return "organizations"
}

func (m *Org) GetSlug() string {
	return m.Slug
}

func (m *Org) SetSlug(slug string) {
	m.Slug = slug
}
