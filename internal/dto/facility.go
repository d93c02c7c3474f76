package dto

type InventoryQuery struct {
	Search string `form:"search"`
}

type CreateInventoryDto struct {
	Item   string `json:"item" binding:"required"`
	Qty    int    `json:"qty" binding:"min=0"`
	Status string `json:"status"`
}

type CreateAbandonedDto struct {
	Item   string `json:"item" binding:"required"`
	Reason string `json:"reason"`
}
