package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Workspace struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Name      string    `json:"name" gorm:"type:varchar(255);not null"`
	OwnerID   int       `json:"owner_id" gorm:"not null"`
	Owner     User      `json:"-" gorm:"foreignKey:OwnerID;references:ID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (Workspace) TableName() string {
	return "workspaces"
}

func (w *Workspace) BeforeCreate(tx *gorm.DB) (err error) {
	return tx.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`).Error
}

type WorkspaceMember struct {
	ID          int       `json:"id" gorm:"primaryKey;autoIncrement"`
	WorkspaceID uuid.UUID `json:"workspace_id" gorm:"type:uuid;not null;uniqueIndex:idx_workspace_user"`
	Workspace   Workspace `json:"-" gorm:"foreignKey:WorkspaceID;references:ID;constraint:OnDelete:CASCADE"`
	UserID      int       `json:"user_id" gorm:"not null;uniqueIndex:idx_workspace_user"`
	User        User      `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
	Role        string    `json:"role" gorm:"type:varchar(50);default:'member'"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (WorkspaceMember) TableName() string {
	return "workspace_members"
}
