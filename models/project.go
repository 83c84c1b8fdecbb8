package models

import "gorm.io/gorm"

type Project struct {
	gorm.Model
	Name        string `gorm:"uniqueIndex;not null" json:"name"`
	ProjectType string `json:"projectType"`
	Location    string `json:"location"`
	Description string `json:"description"`
	CreatedBy   uint   `json:"createdBy"`
}
