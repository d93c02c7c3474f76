package model

type InventoryItem struct {
	Item   string `json:"item"`
	Qty    int    `json:"qty"`
	Status string `json:"status"`
}

type AbandonedItem struct {
	ID     int    `json:"id"`
	Item   string `json:"item"`
	Date   string `json:"date"`
	Reason string `json:"reason"`
}

type Department struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	Head          string `json:"head"`
	EmployeeCount int    `json:"employeeCount"`
	Icon          string `json:"icon"`
	Color         string `json:"color"`
	IsFacilities  bool   `json:"isFacilities,omitempty"`
}
