package models

import "github.com/google/uuid"

type Tag struct {
	ID     uuid.UUID `json:"id" db:"id"`
	Name   string    `json:"name" db:"name"`
	Status string    `json:"status" db:"status"`
}

type CreateTagRequest struct {
	Name string `json:"name" binding:"required"`
}
