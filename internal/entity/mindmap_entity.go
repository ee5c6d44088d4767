package entity

import (
	"time"

	"github.com/google/uuid"
)

type MindMapPosition struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type MindMapNode struct {
	Id       string          `json:"id"`
	Label    string          `json:"label"`
	Type     string          `json:"type"`
	Position MindMapPosition `json:"position"`
}

type MindMapEdge struct {
	Id     string `json:"id"`
	Source string `json:"source"`
	Target string `json:"target"`
}

type MindMap struct {
	Id        uuid.UUID
	Title     string
	Nodes     []MindMapNode
	Edges     []MindMapEdge
	ContentId *uuid.UUID
	UserId    uuid.UUID
	CreatedAt time.Time
}
