package model

import (
	"time"

	"gorm.io/gorm"
)

type Classroom struct {
	ID        uint              `gorm:"primarykey" json:"id"`
	Name      string            `json:"name" gorm:"not null"`
	Subject   string            `json:"subject,omitempty"`
	OwnerID   uint              `json:"owner_id" gorm:"not null;index"`
	Members   []ClassroomMember `json:"members,omitempty" gorm:"foreignKey:ClassroomID"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
	DeletedAt gorm.DeletedAt    `gorm:"index" json:"-"`
}
