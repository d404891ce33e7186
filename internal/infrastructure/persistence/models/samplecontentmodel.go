package models

import (
	"time"

	"modcms/internal/shared/constants"
)

// The models below describe the sample backing tables shipped with a fresh
// install. The record store never uses them directly; they only feed
// AutoMigrate for sqlite and development databases.

// DepartmentModel is a department whose name is a language code.
type DepartmentModel struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	Name      string    `gorm:"column:name;size:191;not null"`
	Slug      string    `gorm:"column:slug;size:191;not null;uniqueIndex:uk_departments_slug"`
	CreatedBy *uint     `gorm:"column:created_by"`
	UpdatedBy *uint     `gorm:"column:updated_by"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (DepartmentModel) TableName() string {
	return constants.TableDepartments
}

// TeamMemberModel belongs to a department and may have a photo in media.
type TeamMemberModel struct {
	ID           uint      `gorm:"primaryKey;autoIncrement"`
	Name         string    `gorm:"column:name;size:191;not null"`
	DepartmentID *uint     `gorm:"column:department_id;index:idx_team_members_department"`
	PhotoID      *uint     `gorm:"column:photo_id"`
	Position     string    `gorm:"column:position;size:191"`
	Bio          string    `gorm:"column:bio;type:text"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (TeamMemberModel) TableName() string {
	return constants.TableTeamMembers
}

// ClientModel is a client logo entry.
type ClientModel struct {
	ID         uint      `gorm:"primaryKey;autoIncrement"`
	Name       string    `gorm:"column:name;size:191;not null"`
	LogoID     *uint     `gorm:"column:logo_id"`
	Website    string    `gorm:"column:website;size:500"`
	BrandColor string    `gorm:"column:brand_color;size:20"`
	Featured   bool      `gorm:"column:featured;not null;default:false"`
	CreatedAt  time.Time `gorm:"column:created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`
}

func (ClientModel) TableName() string {
	return constants.TableClients
}

// MediaModel is an uploaded asset referenced by *_id columns.
type MediaModel struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	URL       string    `gorm:"column:url;size:1000;not null"`
	Alt       string    `gorm:"column:alt;size:255"`
	MimeType  string    `gorm:"column:mime_type;size:100"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (MediaModel) TableName() string {
	return constants.TableMedia
}
